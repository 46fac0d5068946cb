package request

type BannerListRequest struct {
	PaginatedRequest
	Search string
	Type   string // info | promo | warning | all
	Status string // active | inactive | all
}

type BannerRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=info promo warning"`
	LinkURL  string `json:"linkUrl" validate:"omitempty,url"`
	IsActive *bool  `json:"isActive"`
}

type BannerUpdateRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,oneof=info promo warning"`
	LinkURL  *string `json:"linkUrl" validate:"omitempty"`
	IsActive *bool   `json:"isActive"`
}
