package entity

import "github.com/google/uuid"

type BannerType string

const (
	BannerInfo    BannerType = "info"
	BannerPromo   BannerType = "promo"
	BannerWarning BannerType = "warning"
)

type Banner struct {
	Base
	Title     string     `db:"title"`
	Content   string     `db:"content"`
	Type      BannerType `db:"type"`
	LinkURL   string     `db:"link_url"`
	IsActive  bool       `db:"is_active"`
	CreatedBy *uuid.UUID `db:"created_by"`
}
