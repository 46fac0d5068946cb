package usecase

import (
	"fmt"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/dto/response"

	"github.com/google/uuid"
)

// ==================== FEATURE RESOLUTION ====================

// Resolve computes the link a user sees for f. The second result is false
// when the user has no assignment on f, i.e. the feature is hidden from them.
func Resolve(f *entity.Feature, userID uuid.UUID) (response.ResolvedFeature, bool) {
	a, _, ok := f.FindAssignment(userID)
	if !ok {
		return response.ResolvedFeature{}, false
	}

	link := f.Default
	if a.Override != nil {
		link = *a.Override
	}
	link = link.Clone()

	return response.ResolvedFeature{
		ID:       f.ID.String(),
		Title:    f.Title,
		Icon:     f.Icon,
		Type:     link.Type,
		URL:      link.URL,
		SubMenus: link.SubMenus,
	}, true
}

// ResolveAll keeps the order of features and drops the invisible ones.
func ResolveAll(features []*entity.Feature, userID uuid.UUID) []response.ResolvedFeature {
	out := make([]response.ResolvedFeature, 0, len(features))
	for _, f := range features {
		if f == nil {
			continue
		}
		if rf, ok := Resolve(f, userID); ok {
			out = append(out, rf)
		}
	}
	return out
}

// ToggleCustom switches an assignment between inherit and custom. Switching
// on always starts from an empty override; previous custom values are never
// restored.
func ToggleCustom(a entity.Assignment, on bool) entity.Assignment {
	if on {
		empty := entity.EmptyLinkConfig()
		a.Override = &empty
	} else {
		a.Override = nil
	}
	return a
}

// ValidateFeature checks a feature document before it is saved.
func ValidateFeature(f *entity.Feature) error {
	fields := map[string]string{}

	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "This field is required"
	}
	if !f.Default.Type.Valid() {
		fields["defaultType"] = "Must be one of: single, folder"
	}
	validateSubMenus(fields, "defaultSubMenus", f.Default.SubMenus)

	if len(f.AssignedTo) == 0 {
		fields["assignedTo"] = "Assign at least one user"
	}

	seen := make(map[uuid.UUID]bool, len(f.AssignedTo))
	for i, a := range f.AssignedTo {
		key := fmt.Sprintf("assignedTo[%d]", i)

		if a.UserID == uuid.Nil {
			fields[key+".user"] = "This field is required"
			continue
		}
		if seen[a.UserID] {
			fields[key+".user"] = "User is assigned more than once"
		}
		seen[a.UserID] = true

		if a.Override == nil {
			continue
		}
		switch a.Override.Type {
		case entity.LinkSingle:
			if strings.TrimSpace(a.Override.URL) == "" {
				fields[key+".url"] = "Custom link needs a url"
			}
		case entity.LinkFolder:
			if len(a.Override.SubMenus) == 0 {
				fields[key+".subMenus"] = "Custom folder needs at least one sub link"
			}
		default:
			fields[key+".type"] = "Must be one of: single, folder"
		}
		validateSubMenus(fields, key+".subMenus", a.Override.SubMenus)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateSubMenus(fields map[string]string, prefix string, subs []entity.SubMenu) {
	for i, s := range subs {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.URL) == "" {
			fields[fmt.Sprintf("%s[%d]", prefix, i)] = "Sub link needs a title and url"
		}
	}
}
