package entity

import "time"

// Roles que puede tener un usuario. Un rol vacío es un usuario autenticado sin privilegios.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
	RoleNone     = ""
)

// ValidRole indica si r es uno de los roles asignables (incluido ninguno).
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleNone:
		return true
	}
	return false
}

// User es un actor del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca texto plano una vez guardado
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
