package entity

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type LinkType string

const (
	LinkSingle LinkType = "single"
	LinkFolder LinkType = "folder"
)

func (t LinkType) Valid() bool {
	return t == LinkSingle || t == LinkFolder
}

type SubMenu struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinkConfig is what a menu entry opens: one url, or a folder of sub links.
type LinkConfig struct {
	Type     LinkType  `json:"type"`
	URL      string    `json:"url"`
	SubMenus []SubMenu `json:"subMenus"`
}

// EmptyLinkConfig is the blank override a client starts from when custom
// mode is switched on.
func EmptyLinkConfig() LinkConfig {
	return LinkConfig{Type: LinkSingle, URL: "", SubMenus: []SubMenu{}}
}

// Clone deep copies SubMenus.
func (c LinkConfig) Clone() LinkConfig {
	subs := make([]SubMenu, len(c.SubMenus))
	copy(subs, c.SubMenus)
	c.SubMenus = subs
	return c
}

// Assignment grants one user access to a feature. A nil Override means the
// user inherits the feature default.
type Assignment struct {
	UserID      uuid.UUID
	CompanyName string
	Override    *LinkConfig
}

func (a Assignment) IsCustom() bool {
	return a.Override != nil
}

// assignmentJSON is the stored and wire shape.
type assignmentJSON struct {
	User        uuid.UUID `json:"user"`
	IsCustom    bool      `json:"isCustom"`
	Type        LinkType  `json:"type"`
	URL         string    `json:"url"`
	SubMenus    []SubMenu `json:"subMenus"`
	CompanyName string    `json:"companyName"`
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	out := assignmentJSON{
		User:        a.UserID,
		IsCustom:    a.Override != nil,
		Type:        LinkSingle,
		SubMenus:    []SubMenu{},
		CompanyName: a.CompanyName,
	}
	if a.Override != nil {
		out.Type = a.Override.Type
		out.URL = a.Override.URL
		if a.Override.SubMenus != nil {
			out.SubMenus = a.Override.SubMenus
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON drops type/url/subMenus when isCustom is false.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var in assignmentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode assignment: %w", err)
	}

	a.UserID = in.User
	a.CompanyName = in.CompanyName
	a.Override = nil

	if in.IsCustom {
		cfg := LinkConfig{Type: in.Type, URL: in.URL, SubMenus: in.SubMenus}
		if cfg.Type == "" {
			cfg.Type = LinkSingle
		}
		if cfg.SubMenus == nil {
			cfg.SubMenus = []SubMenu{}
		}
		a.Override = &cfg
	}
	return nil
}

type Feature struct {
	Base
	Title      string       `db:"title"`
	Icon       string       `db:"icon"`
	Default    LinkConfig   `db:"-"`
	AssignedTo []Assignment `db:"assigned_to"`
}

// FindAssignment returns the entry for userID, if any.
func (f *Feature) FindAssignment(userID uuid.UUID) (Assignment, int, bool) {
	for i, a := range f.AssignedTo {
		if a.UserID == userID {
			return a, i, true
		}
	}
	return Assignment{}, -1, false
}
