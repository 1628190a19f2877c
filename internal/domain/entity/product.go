package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un ítem del catálogo. Quantity es la existencia; después de crearlo solo
// cambia mediante la aplicación de movimientos.
type Product struct {
	ID          int64
	Name        string // único, 1..255
	Description string
	Price       decimal.Decimal // >= 0
	Quantity    int64           // >= 0
	Image       string          // llave del objeto o URL, vacío si no hay
	SupplierID  *int64
	CategoryID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
