package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Row maps a header to its cell value: nil, bool, float64 or string.
type Row map[string]any

type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"data"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

var floatRegex = regexp.MustCompile(`^\s*-?(\d+\.?|\.\d+|\d+\.\d+)([eE][-+]?\d+)?\s*$`)

// typeCell applies dynamic typing to a raw cell.
func typeCell(raw string) any {
	switch raw {
	case "":
		return nil
	case "true", "TRUE":
		return true
	case "false", "FALSE":
		return false
	}

	if floatRegex.MatchString(raw) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return f
		}
	}

	return raw
}

// cleanHeaders trims, strips a leading BOM, and de-duplicates with _N suffixes.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	counts := make(map[string]int, len(raw))

	for i, h := range raw {
		h = strings.TrimSpace(strings.TrimLeft(h, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}

		name := h
		for used[name] {
			counts[h]++
			name = fmt.Sprintf("%s_%d", h, counts[h])
		}
		used[name] = true
		headers[i] = name
	}

	return headers
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// buildTable turns raw records (first record is the header) into a typed table.
func buildTable(records [][]string) (*Table, error) {
	// leading blank rows are not a header
	for len(records) > 0 && isBlankRecord(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	headers := cleanHeaders(records[0])
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = typeCell(record[i])
			} else {
				row[h] = nil
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
