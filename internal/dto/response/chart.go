package response

import (
	"time"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/pkg/sheet"
)

type ChartResponse struct {
	ID          string             `json:"_id"`
	Title       string             `json:"title"`
	Type        entity.ChartType   `json:"type"`
	SheetURL    string             `json:"sheetUrl"`
	Description string             `json:"description"`
	Config      entity.ChartConfig `json:"config"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// SheetPreview is the parsed table, before any chart mapping.
type SheetPreview struct {
	Headers []string    `json:"headers"`
	Data    []sheet.Row `json:"data"`
}

type ChartRenderResponse struct {
	Chart      ChartResponse     `json:"chart"`
	Definition *sheet.Definition `json:"definition"`
}

func ChartToResponse(c *entity.Chart) ChartResponse {
	cfg := c.Config
	if cfg.DataKeys == nil {
		cfg.DataKeys = []string{}
	}
	return ChartResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Type:        c.Type,
		SheetURL:    c.SheetURL,
		Description: c.Description,
		Config:      cfg,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func TableToPreview(t *sheet.Table) SheetPreview {
	return SheetPreview{Headers: t.Headers, Data: t.Rows}
}
