package inventory

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción y le entrega repositorios ligados a ella.
// Hace Commit si fn devuelve nil y Rollback en otro caso: el movimiento es todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// Recorder recibe el resultado de cada intento de movimiento (métricas). Opcional.
type Recorder interface {
	MovementApplied(t entity.MovementType, quantity int64)
	MovementRejected(t entity.MovementType, reason string)
}

type nopRecorder struct{}

func (nopRecorder) MovementApplied(entity.MovementType, int64)  {}
func (nopRecorder) MovementRejected(entity.MovementType, string) {}
