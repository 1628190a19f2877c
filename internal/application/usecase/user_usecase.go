package usecase

import (
	"context"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// UserUseCase consulta usuarios y gestiona sus roles.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso sobre el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID devuelve el usuario o domain.ErrNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(user), nil
}

// AssignRole fija el único rol de un usuario. Un rol vacío revoca todos los privilegios.
// El registro de movimientos lo verifica con el rol guardado, incluso con tokens anteriores.
func (uc *UserUseCase) AssignRole(ctx context.Context, id int64, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	user.Role = role
	return dto.NewUserResponse(user), nil
}
