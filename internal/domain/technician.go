package domain

import "time"

// TechnicianRole enumerates staff roles.
type TechnicianRole string

const (
	RoleAdmin      TechnicianRole = "admin"
	RoleManager    TechnicianRole = "manager"
	RoleTechnician TechnicianRole = "technician"
	RoleStaff      TechnicianRole = "staff"
)

// Valid reports whether the value is one of the enumerated roles.
func (r TechnicianRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleStaff:
		return true
	}
	return false
}

// Technician is a staff profile that can be assigned to repair tickets.
type Technician struct {
	ID        string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Role      *TechnicianRole
	CreatedAt time.Time
	UpdatedAt time.Time
}
