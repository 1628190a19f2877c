package dto

import (
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// RegisterRequest cuerpo de POST /api/auth/register. Los usuarios nuevos no tienen rol.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AssignRoleRequest cuerpo de PUT /api/users/:id/role. Un rol vacío quita los privilegios.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=Admin Manager Employee"`
}

// UserResponse salida de usuario (nunca el hash de la contraseña).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
