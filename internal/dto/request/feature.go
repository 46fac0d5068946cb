package request

import "insekta-dashboard/internal/data/entity"

// FeatureRequest is decoded from a multipart form; the JSON-valued fields
// (defaultSubMenus, assignedTo) are unmarshalled by the handler.
type FeatureRequest struct {
	Title           string              `json:"title"`
	DefaultType     entity.LinkType     `json:"defaultType"`
	DefaultURL      string              `json:"defaultUrl"`
	DefaultSubMenus []entity.SubMenu    `json:"defaultSubMenus"`
	AssignedTo      []entity.Assignment `json:"assignedTo"`
	Icon            *FileUpload         `json:"-"`
}

// FeatureUpdateRequest: nil means "keep".
type FeatureUpdateRequest struct {
	Title           *string             `json:"title"`
	DefaultType     *entity.LinkType    `json:"defaultType"`
	DefaultURL      *string             `json:"defaultUrl"`
	DefaultSubMenus []entity.SubMenu    `json:"defaultSubMenus"`
	AssignedTo      []entity.Assignment `json:"assignedTo"`
	Icon            *FileUpload         `json:"-"`
}

type ToggleCustomRequest struct {
	IsCustom bool `json:"isCustom"`
}

type FeatureListRequest struct {
	PaginatedRequest
	Search string
}
