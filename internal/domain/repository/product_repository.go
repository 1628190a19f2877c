package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
// Los getters devuelven (nil, nil) si la fila no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate lee el producto y bloquea su fila hasta que termine la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// Update escribe todos los campos salvo Quantity.
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id, quantity int64) error
	SetImage(ctx context.Context, id int64, image string) error
	List(ctx context.Context) ([]*entity.Product, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
