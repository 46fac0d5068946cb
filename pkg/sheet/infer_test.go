package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstTextInferrer(t *testing.T) {
	regionSales := &Table{
		Headers: []string{"Region", "Sales"},
		Rows: []Row{
			{"Region": "West", "Sales": 120.0},
			{"Region": "East", "Sales": 90.0},
		},
	}

	tests := []struct {
		name  string
		table *Table
		cfg   AxisConfig
		wantX string
		wantY []string
	}{
		{
			name:  "no config",
			table: regionSales,
			wantX: "Region",
			wantY: []string{"Sales"},
		},
		{
			name: "text column is not first",
			table: &Table{
				Headers: []string{"No", "Outlet", "Visit", "Treatment"},
				Rows:    []Row{{"No": 1.0, "Outlet": "A", "Visit": 3.0, "Treatment": 2.0}},
			},
			wantX: "Outlet",
			wantY: []string{"No", "Visit", "Treatment"},
		},
		{
			name: "no textual column falls back to first",
			table: &Table{
				Headers: []string{"Year", "Total"},
				Rows:    []Row{{"Year": 2024.0, "Total": 5.0}},
			},
			wantX: "Year",
			wantY: []string{"Total"},
		},
		{
			name: "no numeric column uses second",
			table: &Table{
				Headers: []string{"Name", "Note"},
				Rows:    []Row{{"Name": "a", "Note": "b"}},
			},
			wantX: "Name",
			wantY: []string{"Note"},
		},
		{
			name: "single column",
			table: &Table{
				Headers: []string{"Name"},
				Rows:    []Row{{"Name": "a"}},
			},
			wantX: "Name",
			wantY: []string{"Name"},
		},
		{
			name:  "valid explicit config wins",
			table: regionSales,
			cfg:   AxisConfig{XAxisKey: "Sales", DataKeys: []string{"Region"}},
			wantX: "Sales",
			wantY: []string{"Region"},
		},
		{
			name:  "stale config keys are ignored",
			table: regionSales,
			cfg:   AxisConfig{XAxisKey: "Wilayah", DataKeys: []string{"Penjualan"}},
			wantX: "Region",
			wantY: []string{"Sales"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := FirstTextInferrer{}.Infer(tt.table, tt.cfg)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
