package entities

import "strings"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTecnico    Role = "tecnico"
	RoleSeguradora Role = "seguradora"
)

// ParseRole normalises the role claim issued by the identity provider.
// Unknown claims yield an empty role, which the policy treats as no access.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin", "administrador":
		return RoleAdmin
	case "tecnico", "técnico", "technician":
		return RoleTecnico
	case "seguradora", "insurer":
		return RoleSeguradora
	}
	return ""
}

// Actor is the authenticated identity credited with a change.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// Identity is the value written to audit records.
func (a Actor) Identity() string {
	if a.Email != "" {
		return a.Email
	}
	return a.ID
}
