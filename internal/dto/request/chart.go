package request

import "insekta-dashboard/internal/data/entity"

type ChartListRequest struct {
	PaginatedRequest
	Search string
}

type ChartRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Type        string              `json:"type" validate:"required,oneof=bar line area pie"`
	SheetURL    string              `json:"sheetUrl" validate:"required"`
	Description string              `json:"description" validate:"omitempty,max=1000"`
	Config      *entity.ChartConfig `json:"config"`
}

type ChartUpdateRequest struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Type        *string             `json:"type" validate:"omitempty,oneof=bar line area pie"`
	SheetURL    *string             `json:"sheetUrl" validate:"omitempty,min=1"`
	Description *string             `json:"description" validate:"omitempty,max=1000"`
	Config      *entity.ChartConfig `json:"config"`
}

type PreviewRequest struct {
	URL string `json:"url" validate:"required"`
}
