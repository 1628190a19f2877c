package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	// List devuelve los proveedores ordenados por nombre.
	List(ctx context.Context) ([]*entity.Supplier, error)
	Delete(ctx context.Context, id int64) error
}
