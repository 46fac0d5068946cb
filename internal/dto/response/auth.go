package response

import (
	"time"

	"insekta-dashboard/internal/data/entity"
)

// AuthResponse is returned by login and register; the token itself travels
// in the cookie and is repeated here for non-browser clients.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type UserResponse struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         entity.UserRole `json:"role"`
	Avatar       string          `json:"avatar"`
	CompanyName  string          `json:"companyName"`
	IsActive     bool            `json:"isActive"`
	IsFirstLogin bool            `json:"isFirstLogin"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type CreateUserResponse struct {
	UserResponse
	EmailSent bool `json:"emailSent"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Avatar:       user.Avatar,
		CompanyName:  user.CompanyName,
		IsActive:     user.IsActive,
		IsFirstLogin: user.IsFirstLogin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
