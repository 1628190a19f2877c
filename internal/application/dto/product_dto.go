package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// CreateProductRequest cuerpo de POST /api/products. Quantity es la existencia inicial.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity" validate:"gte=0"`
	SupplierID  *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
	CategoryID  *int64          `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. Quantity no se edita aquí;
// solo cambia mediante movimientos de stock.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
	CategoryID  *int64          `json:"category_id" validate:"omitempty,gt=0"`
}

// ProductResponse salida de producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Image       string          `json:"image,omitempty"`
	SupplierID  *int64          `json:"supplier_id"`
	CategoryID  *int64          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProductResponse convierte la entidad en respuesta; nil sigue siendo nil.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Image:       p.Image,
		SupplierID:  p.SupplierID,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProductResponses convierte una lista; nunca devuelve nil.
func NewProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *NewProductResponse(p))
	}
	return out
}
