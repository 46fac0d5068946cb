package entity

import "github.com/google/uuid"

type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// ChartConfig is the persisted column choice. Empty fields are inferred
// from the sheet at render time.
type ChartConfig struct {
	XAxisKey string   `json:"xAxisKey"`
	DataKeys []string `json:"dataKeys"`
}

// Chart holds only the definition; rows are fetched live from SheetURL.
type Chart struct {
	Base
	Title       string      `db:"title"`
	Type        ChartType   `db:"type"`
	SheetURL    string      `db:"sheet_url"`
	Description string      `db:"description"`
	Config      ChartConfig `db:"config"`
	CreatedBy   *uuid.UUID  `db:"created_by"`
}
