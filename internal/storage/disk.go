package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk guarda uploads no sistema de arquivos local, sob um diretório fixo
// servido estaticamente em /uploads.
type Disk struct {
	dir string
}

// NewDisk cria o diretório de uploads se necessário.
func NewDisk(dir string) (*Disk, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: diretório de uploads obrigatório")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// Dir devolve o diretório servido em /uploads.
func (d *Disk) Dir() string {
	return d.dir
}

// Save persiste o conteúdo com nome prefixado por UUID, preservando apenas
// a extensão original. Nomes nunca colidem.
func (d *Disk) Save(_ context.Context, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	name := uuid.NewString() + ext

	file, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		_ = os.Remove(file.Name())
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", err
	}

	return name, nil
}

// Remove apaga um upload órfão. Nome fora do diretório é rejeitado.
func (d *Disk) Remove(_ context.Context, name string) error {
	if name == "" || name != filepath.Base(name) {
		return errors.New("storage: nome de arquivo inválido")
	}
	return os.Remove(filepath.Join(d.dir, name))
}
