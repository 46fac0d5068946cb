package request

type TeamListRequest struct {
	PaginatedRequest
	Search string
	Area   string
}

type TeamRequest struct {
	Name    string      `json:"name" validate:"required,max=100"`
	Role    string      `json:"role" validate:"required,max=100"`
	Phone   string      `json:"phone" validate:"required,idphone"`
	Area    string      `json:"area" validate:"required,max=100"`
	Outlets string      `json:"outlets"`
	Photo   *FileUpload `json:"-"`
}

type TeamUpdateRequest struct {
	Name    *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Role    *string     `json:"role" validate:"omitempty,min=1,max=100"`
	Phone   *string     `json:"phone" validate:"omitempty,idphone"`
	Area    *string     `json:"area" validate:"omitempty,min=1,max=100"`
	Outlets *string     `json:"outlets"`
	Photo   *FileUpload `json:"-"`
}
