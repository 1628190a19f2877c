package entity

import "time"

// Category agrupa productos.
type Category struct {
	ID          int64
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
