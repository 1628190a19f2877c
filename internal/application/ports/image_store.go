package ports

import (
	"context"
	"io"
)

// ImageStore puerto de salida para imágenes de producto. Adaptador: S3 (aws-sdk-go-v2).
type ImageStore interface {
	// Put sube body bajo key y devuelve la referencia pública que se guarda en el producto.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
