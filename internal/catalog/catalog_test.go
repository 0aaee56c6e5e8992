package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

func TestProductIDAcceptsStringsAndNumbers(t *testing.T) {
	var ps []Product
	if err := json.Unmarshal([]byte(`[{"id":"a-1","name":"A"},{"id":42,"name":"B"}]`), &ps); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ps[0].ID != "a-1" || ps[1].ID != "42" {
		t.Fatalf("unexpected ids %q %q", ps[0].ID, ps[1].ID)
	}

	var bad Product
	if err := json.Unmarshal([]byte(`{"id":true}`), &bad); err == nil {
		t.Fatalf("expected error for boolean id")
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	doc := `{"products":[
		{"id":1,"name":"Diaper Pack","description":"Soft","category":"Diapers","brand":"Huggies","price":499},
		{"id":2,"name":"Stroller","description":"Light","category":"Strollers","brand":"Chicco"}
	]}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := Load(context.Background(), NewFileSource(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", cat.Len())
	}
	if got := cat.Categories(); len(got) != 2 || got[0] != "Diapers" || got[1] != "Strollers" {
		t.Fatalf("categories should be derived in order, got %v", got)
	}
	if p := cat.Products()[0]; p.Price == nil || *p.Price != 499 {
		t.Fatalf("price not parsed: %+v", p)
	}
}

func TestLoadDegradesToEmptyCatalog(t *testing.T) {
	cat, err := Load(context.Background(), NewFileSource(filepath.Join(t.TempDir(), "missing.json")))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if cat.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d products", cat.Len())
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	_ = os.WriteFile(path, []byte("{not json"), 0o600)
	cat, err = Load(context.Background(), NewFileSource(path))
	if err == nil || cat.Len() != 0 {
		t.Fatalf("expected parse error and empty catalog, got err=%v len=%d", err, cat.Len())
	}
}

func TestCatalogIsCopied(t *testing.T) {
	src := []Product{{ID: "1", Name: "A"}}
	cat := New(src, nil)
	src[0].Name = "changed"
	out := cat.Products()
	out[0].Name = "also changed"
	if cat.Products()[0].Name != "A" {
		t.Fatalf("catalog must not share backing storage with callers")
	}
}
