package sheet

import (
	"fmt"
)

type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
	ChartPie  ChartType = "pie"
)

func (c ChartType) Valid() bool {
	switch c {
	case ChartBar, ChartLine, ChartArea, ChartPie:
		return true
	}
	return false
}

// Palette is cycled over series and pie slices.
var Palette = []string{"#0056b3", "#ff9900", "#10b981", "#8b5cf6", "#ef4444"}

type Series struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

type Point struct {
	X      any               `json:"x"`
	Values map[string]any    `json:"values"`
	Labels map[string]string `json:"labels"`
}

type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// Definition is everything a client needs to draw the chart.
type Definition struct {
	Type   ChartType `json:"type"`
	XKey   string    `json:"xKey"`
	YKeys  []string  `json:"yKeys"`
	Series []Series  `json:"series"`
	Points []Point   `json:"points,omitempty"`
	Slices []Slice   `json:"slices,omitempty"`
}

// Render maps rows onto chartType using the resolved columns.
func Render(chartType ChartType, t *Table, xKey string, yKeys []string) (*Definition, error) {
	if !chartType.Valid() {
		return nil, fmt.Errorf("unsupported chart type %q", chartType)
	}
	if t.Len() == 0 {
		return nil, ErrEmpty
	}
	if len(yKeys) == 0 {
		return nil, fmt.Errorf("no value column selected")
	}

	def := &Definition{
		Type:   chartType,
		XKey:   xKey,
		YKeys:  yKeys,
		Series: make([]Series, len(yKeys)),
	}
	for i, k := range yKeys {
		def.Series[i] = Series{Key: k, Color: Palette[i%len(Palette)]}
	}

	if chartType == ChartPie {
		// pie only shows the first value column
		valueKey := yKeys[0]
		def.Slices = make([]Slice, 0, len(t.Rows))
		for i, row := range t.Rows {
			v, _ := row[valueKey].(float64)
			def.Slices = append(def.Slices, Slice{
				Name:  fmt.Sprint(displayValue(row[xKey])),
				Value: v,
				Label: FormatNumber(v),
				Color: Palette[i%len(Palette)],
			})
		}
		return def, nil
	}

	def.Points = make([]Point, 0, len(t.Rows))
	for _, row := range t.Rows {
		p := Point{
			X:      row[xKey],
			Values: make(map[string]any, len(yKeys)),
			Labels: make(map[string]string, len(yKeys)),
		}
		for _, k := range yKeys {
			p.Values[k] = row[k]
			if label, ok := FormatValue(row[k]); ok {
				p.Labels[k] = label
			}
		}
		def.Points = append(def.Points, p)
	}

	return def, nil
}

func displayValue(v any) any {
	if v == nil {
		return ""
	}
	return v
}
