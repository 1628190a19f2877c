package dto

import (
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// RecordMovementRequest cuerpo de POST /api/stock-movements.
type RecordMovementRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Type      string  `json:"type" validate:"required,oneof=purchase sale return adjustment"`
	Quantity  int64   `json:"quantity" validate:"required,min=1"`
	Note      *string `json:"note" validate:"omitempty,max=255"`
}

// MovementResponse movimiento del kardex con su producto y su usuario.
type MovementResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	UserID    int64            `json:"user_id"`
	Type      string           `json:"type"`
	Quantity  int64            `json:"quantity"`
	Note      *string          `json:"note"`
	CreatedAt time.Time        `json:"created_at"`
	Product   *ProductResponse `json:"product"`
	User      *UserResponse    `json:"user"`
}

func NewMovementResponse(m *entity.StockMovementDetail) *MovementResponse {
	if m == nil {
		return nil
	}
	var note *string
	if m.Note != "" {
		n := m.Note
		note = &n
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Note:      note,
		CreatedAt: m.CreatedAt,
		Product:   NewProductResponse(m.Product),
		User:      NewUserResponse(m.User),
	}
}

// NewMovementResponses convierte una lista; nunca devuelve nil.
func NewMovementResponses(list []*entity.StockMovementDetail) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *NewMovementResponse(m))
	}
	return out
}
