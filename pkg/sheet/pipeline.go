package sheet

import (
	"context"
	"io"
)

// Pipeline wires fetch, parse, normalisation and column inference.
type Pipeline struct {
	Fetcher    Fetcher
	Normalizer CellNormalizer
	Inferrer   ColumnInferrer
}

// NewPipeline uses the default strategies.
func NewPipeline(fetcher Fetcher) *Pipeline {
	return &Pipeline{
		Fetcher:    fetcher,
		Normalizer: SeparatorNormalizer{},
		Inferrer:   FirstTextInferrer{},
	}
}

// Load fetches rawURL (share link or export link) and returns normalised rows.
func (p *Pipeline) Load(ctx context.Context, rawURL string) (*Table, error) {
	exportURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, err := p.Fetcher.Fetch(ctx, exportURL)
	if err != nil {
		return nil, err
	}

	t, err := ParseCSVBytes(body)
	if err != nil {
		return nil, err
	}

	NormalizeTable(t, p.Normalizer)
	return t, nil
}

// LoadXLSX is Load for an uploaded workbook.
func (p *Pipeline) LoadXLSX(r io.Reader, sheetName string) (*Table, error) {
	t, err := ParseXLSX(r, sheetName)
	if err != nil {
		return nil, err
	}

	NormalizeTable(t, p.Normalizer)
	return t, nil
}

// Render loads rawURL and renders it with cfg, inferring missing columns.
func (p *Pipeline) Render(ctx context.Context, chartType ChartType, rawURL string, cfg AxisConfig) (*Definition, error) {
	t, err := p.Load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	xKey, yKeys := p.Inferrer.Infer(t, cfg)
	return Render(chartType, t, xKey, yKeys)
}
