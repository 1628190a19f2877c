package inventory

import (
	"math"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// NextQuantity aplica la regla de signo de un movimiento sobre la existencia (servicio de dominio).
// purchase/return suman; sale/adjustment restan y exigen onHand >= quantity.
// Si la suma desborda int64 el movimiento es inválido. Ante un error devuelve onHand sin cambios.
func NextQuantity(onHand, quantity int64, t entity.MovementType) (int64, error) {
	if !t.Valid() || quantity < 1 {
		return onHand, domain.ErrInvalidInput
	}
	if t.Additive() {
		if quantity > math.MaxInt64-onHand {
			return onHand, domain.ErrInvalidInput
		}
		return onHand + quantity, nil
	}
	if onHand < quantity {
		return onHand, domain.ErrInsufficientStock
	}
	return onHand - quantity, nil
}
