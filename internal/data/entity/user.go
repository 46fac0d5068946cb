package entity

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Avatar       string   `db:"avatar"`
	CompanyName  string   `db:"company_name"`
	IsActive     bool     `db:"is_active"`
	IsFirstLogin bool     `db:"is_first_login"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
