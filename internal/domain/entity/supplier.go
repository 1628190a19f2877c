package entity

import "time"

// Supplier provee productos.
type Supplier struct {
	ID        int64
	Name      string // único
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
