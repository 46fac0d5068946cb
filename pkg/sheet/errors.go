// Package sheet turns a spreadsheet (Google Sheets CSV export or an uploaded
// XLSX workbook) into typed rows and chart definitions.
package sheet

import "errors"

var (
	ErrEmptyURL = errors.New("sheet url is empty")
	ErrFetch    = errors.New("failed to fetch sheet, make sure the link is shared as \"Anyone with the link\"")
	ErrParse    = errors.New("failed to parse sheet")
	ErrEmpty    = errors.New("sheet is empty")
)
