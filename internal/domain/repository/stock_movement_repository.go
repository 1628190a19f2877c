package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia del kardex de solo inserción.
// No tiene Update ni Delete.
type StockMovementRepository interface {
	// Create inserta el movimiento y asigna ID y CreatedAt.
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id int64) (*entity.StockMovementDetail, error)
	// List devuelve todos los movimientos, del más reciente, con producto y usuario.
	List(ctx context.Context) ([]*entity.StockMovementDetail, error)
	// Recent devuelve como máximo limit movimientos, del más reciente.
	Recent(ctx context.Context, limit int) ([]*entity.StockMovementDetail, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.StockMovementDetail, error)
	CountByProduct(ctx context.Context, productID int64) (int, error)
}
