package usecase

import (
	"context"
	"fmt"
	"testing"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/pkg/sheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

const sheetLink = "https://docs.google.com/spreadsheets/d/abc123/edit#gid=42"

func TestChartPreview_NormalisesCells(t *testing.T) {
	fetcher := &stubFetcher{body: []byte("Region,Sales\nWest,\"1.234,56\"\nEast,90\n")}
	svc := NewChartService(&fakeChartRepo{}, sheet.NewPipeline(fetcher), zap.NewNop())

	preview, err := svc.Preview(context.Background(), sheetLink)
	require.NoError(t, err)

	assert.Equal(t, []string{"Region", "Sales"}, preview.Headers)
	require.Len(t, preview.Data, 2)
	assert.Equal(t, 1234.56, preview.Data[0]["Sales"])
	assert.Equal(t, float64(90), preview.Data[1]["Sales"])
	assert.Equal(t, []string{"https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=42"}, fetcher.urls)
}

func TestChartPreview_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		url  string
		f    *stubFetcher
		want error
	}{
		{"empty url", "  ", &stubFetcher{}, ErrSheetURL},
		{"fetch failure", sheetLink, &stubFetcher{err: fmt.Errorf("%w: timeout", sheet.ErrFetch)}, ErrSheetFetch},
		{"header only", sheetLink, &stubFetcher{body: []byte("a,b\n")}, ErrSheetEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChartService(&fakeChartRepo{}, sheet.NewPipeline(tt.f), zap.NewNop())
			_, err := svc.Preview(context.Background(), tt.url)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRenderChart_InfersColumns(t *testing.T) {
	fetcher := &stubFetcher{body: []byte("Region,Sales\nWest,120\nEast,90\n")}
	repo := &fakeChartRepo{}
	svc := NewChartService(repo, sheet.NewPipeline(fetcher), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateChart(ctx, &request.ChartRequest{
		Title: "Penjualan", Type: "bar", SheetURL: sheetLink,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.ChartBar, created.Type)
	assert.NotNil(t, created.Config.DataKeys)

	out, err := svc.RenderChart(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Region", out.Definition.XKey)
	assert.Equal(t, []string{"Sales"}, out.Definition.YKeys)
	assert.Len(t, out.Definition.Points, 2)
}

func TestCreateChart_Validation(t *testing.T) {
	svc := NewChartService(&fakeChartRepo{}, sheet.NewPipeline(&stubFetcher{}), zap.NewNop())

	_, err := svc.CreateChart(context.Background(), &request.ChartRequest{Title: "X", Type: "radar", SheetURL: sheetLink}, uuid.Nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetChartByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
