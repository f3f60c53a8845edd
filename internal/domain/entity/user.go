package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperador = "OPERADOR"
	RoleViewer   = "VIEWER"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperador, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del dashboard.
type User struct {
	ID           string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
