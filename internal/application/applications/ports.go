package applications

import (
	"context"
	"io"
)

// ResumeStore guarda los CV subidos en un blob store (S3 o compatible).
// Devuelve la key bajo la que quedó almacenado el objeto.
type ResumeStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
