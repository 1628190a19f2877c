package repository

import (
	"context"
	"time"
)

// SalesTotal ventas agregadas de un producto.
type SalesTotal struct {
	ProductID   int64
	ProductName string
	TotalSales  int64
}

// MonthlyMovement unidades que entraron (purchase, return) y salieron (sale,
// adjustment) del stock en un mes calendario.
type MonthlyMovement struct {
	Month time.Time // primer día del mes, UTC
	In    int64
	Out   int64
}

// ReportRepository proyecciones de solo lectura sobre el kardex.
type ReportRepository interface {
	// SalesByProduct agrupa las ventas por producto y suma su cantidad.
	SalesByProduct(ctx context.Context) ([]SalesTotal, error)
	// MovementsByMonth totaliza el kardex por mes desde since, del mes más antiguo al más nuevo.
	// Los meses sin movimientos se omiten.
	MovementsByMonth(ctx context.Context, since time.Time) ([]MonthlyMovement, error)
}
