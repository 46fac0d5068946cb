package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparatorNormalizer(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{"1,234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"Rp 1.234.567", 1234567.0},
		{"1,234,567", 1234567.0},
		{"12,5%", 12.5},
		{"3.75", 3.75},
		{"-1.250,5", -1250.5},
		{"West", "West"},
		{"2024-01-05", "2024-01-05"},
		{"Q1 - Q2", "Q1 - Q2"},
		{"", ""},
		{1234.56, 1234.56},
		{nil, nil},
		{true, true},
	}

	n := SeparatorNormalizer{}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.in), "input %v", tt.in)
	}
}

func TestSeparatorNormalizer_Idempotent(t *testing.T) {
	n := SeparatorNormalizer{}
	for _, in := range []string{"1,234.56", "1.234,56", "Rp 2.500.000", "abc", "7"} {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNormalizeTable(t *testing.T) {
	tbl := &Table{
		Headers: []string{"Bulan", "Omzet"},
		Rows: []Row{
			{"Bulan": "Jan", "Omzet": "Rp 1.500.000"},
			{"Bulan": "Feb", "Omzet": 900.0},
		},
	}

	NormalizeTable(tbl, SeparatorNormalizer{})

	assert.Equal(t, 1500000.0, tbl.Rows[0]["Omzet"])
	assert.Equal(t, 900.0, tbl.Rows[1]["Omzet"])
	assert.Equal(t, "Jan", tbl.Rows[0]["Bulan"])
}
