package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, id int64, role string) error
}
