package entity

import "github.com/google/uuid"

// TeamMember is a field technician or staff contact shown to clients.
type TeamMember struct {
	Base
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Phone     string     `db:"phone"`
	Area      string     `db:"area"`
	Outlets   string     `db:"outlets"`
	Photo     string     `db:"photo"`
	CreatedBy *uuid.UUID `db:"created_by"`
}
