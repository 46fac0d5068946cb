package response

import (
	"time"

	"insekta-dashboard/internal/data/entity"
)

type TeamResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Area      string    `json:"area"`
	Outlets   string    `json:"outlets"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func TeamToResponse(m *entity.TeamMember) TeamResponse {
	return TeamResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Role:      m.Role,
		Phone:     m.Phone,
		Area:      m.Area,
		Outlets:   m.Outlets,
		Photo:     m.Photo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
