package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":5001" {
		t.Fatalf("expected default addr :5001, got %q", cfg.Server.Addr)
	}
	if cfg.Image.Quality != 85 || cfg.Image.MaxWidth != 800 || cfg.Image.MaxHeight != 800 {
		t.Fatalf("unexpected image defaults %+v", cfg.Image)
	}
	if len(cfg.Server.CORSOrigins) != 4 {
		t.Fatalf("expected 4 default CORS origins, got %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yml := "server:\n  addr: \":9000\"\nimage:\n  quality: 70\ncatalog:\n  path: catalog.json\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("STOREFRONT_ADDR", ":9100")
	t.Setenv("CATALOG_CATEGORIES", "Diapers, Toys ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9100" {
		t.Fatalf("env must win over file, got %q", cfg.Server.Addr)
	}
	if cfg.Image.Quality != 70 {
		t.Fatalf("file value not applied, quality=%d", cfg.Image.Quality)
	}
	if cfg.Catalog.Path != "catalog.json" {
		t.Fatalf("unexpected catalog path %q", cfg.Catalog.Path)
	}
	if len(cfg.Catalog.Categories) != 2 || cfg.Catalog.Categories[1] != "Toys" {
		t.Fatalf("unexpected categories %v", cfg.Catalog.Categories)
	}
}

func TestLoadRejectsBadQuality(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("IMAGE_QUALITY", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for quality 0")
	}
}
