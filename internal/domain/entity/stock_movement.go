package entity

import "time"

// MovementType tipo de movimiento de stock.
type MovementType string

// Tipos de movimiento. purchase y return suman stock; sale y adjustment lo restan.
const (
	MovementPurchase   MovementType = "purchase"
	MovementSale       MovementType = "sale"
	MovementReturn     MovementType = "return"
	MovementAdjustment MovementType = "adjustment"
)

// MaxNoteLength límite de StockMovement.Note, contado en caracteres.
const MaxNoteLength = 255

// Valid indica si t es uno de los cuatro tipos de movimiento.
func (t MovementType) Valid() bool {
	switch t {
	case MovementPurchase, MovementSale, MovementReturn, MovementAdjustment:
		return true
	}
	return false
}

// Additive indica si el movimiento aumenta la existencia.
// adjustment siempre resta, igual que sale.
func (t MovementType) Additive() bool {
	return t == MovementPurchase || t == MovementReturn
}

// StockMovement es un movimiento inmutable del kardex. Los IDs crecen con el orden de inserción.
type StockMovement struct {
	ID        int64
	ProductID int64
	UserID    int64
	Type      MovementType
	Quantity  int64 // magnitud, siempre >= 1
	Note      string
	CreatedAt time.Time
}

// StockMovementDetail es un movimiento con su producto y su usuario, para mostrar.
type StockMovementDetail struct {
	StockMovement
	Product *Product
	User    *User
}
