package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Source loads the product list once at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, []string, error)
}

// FileSource reads a JSON document of the form
// {"products": [...], "categories": [...]}.
type FileSource struct {
	Path string
}

type fileDocument struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]Product, []string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	var doc fileDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse catalog %s: %w", s.Path, err)
	}
	return doc.Products, doc.Categories, nil
}

// Load reads src and always returns a usable catalog. On failure the
// catalog is empty and the error is returned for the caller to log.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, categories, err := src.Load(ctx)
	if err != nil {
		return New(nil, nil), err
	}
	return New(products, categories), nil
}
