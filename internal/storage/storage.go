package storage

import (
	"context"
	"io"
)

// Store define o comportamento básico para guardar blobs de upload
// (imagens de perfil). O nome devolvido por Save é o que vai ao banco e
// o que o cliente móvel usa para montar a URL em /uploads.
type Store interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}
