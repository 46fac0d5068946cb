package response

import (
	"time"

	"insekta-dashboard/internal/data/entity"
)

type BannerResponse struct {
	ID        string            `json:"_id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Type      entity.BannerType `json:"type"`
	LinkURL   string            `json:"linkUrl"`
	IsActive  bool              `json:"isActive"`
	CreatedBy *string           `json:"createdBy,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func BannerToResponse(b *entity.Banner) BannerResponse {
	resp := BannerResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Content:   b.Content,
		Type:      b.Type,
		LinkURL:   b.LinkURL,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.CreatedBy != nil {
		id := b.CreatedBy.String()
		resp.CreatedBy = &id
	}
	return resp
}
