// Package repository provides the product blob stores: one JSON document
// under a fixed namespace/key, loaded once at startup and rewritten after
// every catalog mutation.
package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pocketangadi/storefront/internal/domain"
)

const (
	// Namespace and ProductsKey identify the one blob the catalog lives
	// under, across every backend.
	Namespace   = "pocket-angadi"
	ProductsKey = "products"
)

// FileStore keeps the catalog blob on disk at <dir>/<namespace>/<key>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, Namespace, ProductsKey+".json")
}

// Load reads the catalog blob. A missing file means an empty catalog, not an
// error; the caller seeds defaults in that case.
func (s *FileStore) Load(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read product store")
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "decode product store")
	}
	return products, nil
}

// Save rewrites the catalog blob. The write goes to a temp file first and is
// renamed into place so a crash mid-write never leaves a torn blob.
func (s *FileStore) Save(_ context.Context, products []domain.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode product store")
	}

	path := s.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create product store directory")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write product store")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "replace product store")
	}
	return nil
}
