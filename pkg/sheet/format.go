package sheet

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatNumber abbreviates for axis labels: M (miliar), jt (juta), rb (ribu).
// Below a thousand it uses Indonesian grouping and decimal comma.
func FormatNumber(v float64) string {
	switch {
	case v >= 1e9:
		return strconv.FormatFloat(roundTo(v/1e9, 1), 'f', 1, 64) + "M"
	case v >= 1e6:
		return strconv.FormatFloat(roundTo(v/1e6, 1), 'f', 1, 64) + "jt"
	case v >= 1e3:
		return strconv.FormatFloat(math.Round(v/1e3), 'f', 0, 64) + "rb"
	}
	return idPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatValue formats numbers and leaves everything else alone.
func FormatValue(v any) (string, bool) {
	f, ok := v.(float64)
	if !ok {
		return "", false
	}
	return FormatNumber(f), true
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
