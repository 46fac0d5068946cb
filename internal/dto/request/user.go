package request

type UserListRequest struct {
	PaginatedRequest
	Search string
	Role   string
	Status string // active | inactive | ""
}

// CreateUserRequest is the admin "invite" form. The password is generated.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"omitempty,oneof=client admin"`
	CompanyName string `json:"companyName" validate:"omitempty,max=150"`
}

type UpdateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Role        *string `json:"role" validate:"omitempty,oneof=client admin"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=150"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateProfileRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=2,max=100"`
	Email       *string     `json:"email" validate:"omitempty,email"`
	Password    string      `json:"password" validate:"omitempty,min=6"`
	OldPassword string      `json:"oldPassword"`
	Avatar      *FileUpload `json:"-"`
}
