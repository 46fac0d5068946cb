package sheet

import (
	"strconv"
	"strings"
	"unicode"
)

// CellNormalizer converts a typed cell into its chart-ready value.
type CellNormalizer interface {
	Normalize(value any) any
}

// SeparatorNormalizer turns formatted numeric strings ("Rp 1.234.567",
// "1,234.56", "12,5%") into float64, guessing the decimal separator from the
// position of the last "." and ",". Cells it cannot read are kept verbatim.
type SeparatorNormalizer struct{}

func (SeparatorNormalizer) Normalize(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	if f, ok := ParseLocalizedNumber(s); ok {
		return f
	}
	return s
}

// ParseLocalizedNumber is the separator heuristic behind SeparatorNormalizer.
func ParseLocalizedNumber(s string) (float64, bool) {
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		return 0, false
	}

	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, s)

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56
		clean = strings.ReplaceAll(clean, ",", "")
	case lastDot >= 0 && strings.Count(clean, ".") > 1:
		// 1.234.567
		clean = strings.ReplaceAll(clean, ".", "")
	case lastComma >= 0 && strings.Count(clean, ",") > 1:
		// 1,234,567 is grouping, so all commas go; read as 1234567, not truncated to 1.234
		clean = strings.ReplaceAll(clean, ",", "")
	case lastComma >= 0:
		// 12,5
		clean = strings.Replace(clean, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NormalizeTable applies n to every cell in place.
func NormalizeTable(t *Table, n CellNormalizer) {
	if t == nil || n == nil {
		return
	}
	for _, row := range t.Rows {
		for k, v := range row {
			row[k] = n.Normalize(v)
		}
	}
}
