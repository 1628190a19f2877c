package ports

import (
	"context"
	"time"
)

// Cache puerto de salida para valores de vida corta (tablas de traducción).
// Adaptadores: Redis (go-redis) y un mapa con TTL en memoria.
type Cache interface {
	// Get devuelve (nil, false, nil) si no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
