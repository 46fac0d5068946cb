package response

import (
	"time"

	"insekta-dashboard/internal/data/entity"
)

// ResolvedFeature is one menu entry as a client sees it. The assignment
// list is never exposed here.
type ResolvedFeature struct {
	ID       string           `json:"_id"`
	Title    string           `json:"title"`
	Icon     string           `json:"icon"`
	Type     entity.LinkType  `json:"type"`
	URL      string           `json:"url"`
	SubMenus []entity.SubMenu `json:"subMenus"`
}

// AssignedUser is the populated user of an assignment entry.
type AssignedUser struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	CompanyName string `json:"companyName"`
}

type AssignmentResponse struct {
	User        AssignedUser     `json:"user"`
	IsCustom    bool             `json:"isCustom"`
	Type        entity.LinkType  `json:"type"`
	URL         string           `json:"url"`
	SubMenus    []entity.SubMenu `json:"subMenus"`
	CompanyName string           `json:"companyName"`
}

// AdminFeature is the full document for the admin editor.
type AdminFeature struct {
	ID              string               `json:"_id"`
	Title           string               `json:"title"`
	Icon            string               `json:"icon"`
	DefaultType     entity.LinkType      `json:"defaultType"`
	DefaultURL      string               `json:"defaultUrl"`
	DefaultSubMenus []entity.SubMenu     `json:"defaultSubMenus"`
	AssignedTo      []AssignmentResponse `json:"assignedTo"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}
