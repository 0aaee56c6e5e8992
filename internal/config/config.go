package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the service configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	Catalog CatalogConfig `koanf:"catalog"`
	FAQ     FAQConfig     `koanf:"faq"`
	Image   ImageConfig   `koanf:"image"`
	Auth    AuthConfig    `koanf:"auth"`
}

type ServerConfig struct {
	Addr        string   `koanf:"addr"`
	CORSOrigins []string `koanf:"cors_origins"`
	BodyLimitMB int      `koanf:"body_limit_mb"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CatalogConfig selects where products come from. A non-empty DatabaseURL
// takes precedence over Path.
type CatalogConfig struct {
	Path        string   `koanf:"path"`
	DatabaseURL string   `koanf:"database_url"`
	Categories  []string `koanf:"categories"`
}

type FAQConfig struct {
	ExtraPath string `koanf:"extra_path"`
}

type ImageConfig struct {
	Quality   int    `koanf:"quality"`
	MaxWidth  int    `koanf:"max_width"`
	MaxHeight int    `koanf:"max_height"`
	Bucket    string `koanf:"bucket"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

// PathEnvVar overrides the YAML config file location.
const PathEnvVar = "CONFIG_PATH"

var defaultPaths = []string{"config.yaml", "config.yml"}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":5001",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:5001",
				"http://127.0.0.1:5001",
			},
			BodyLimitMB: 16,
		},
		Log:     LogConfig{Level: "info", Format: "json"},
		Catalog: CatalogConfig{Path: "data/products.json"},
		Image: ImageConfig{
			Quality:   85,
			MaxWidth:  800,
			MaxHeight: 800,
			Region:    "us-east-1",
		},
	}
}

// envKeys maps environment variable names to config keys.
var envKeys = map[string]string{
	"STOREFRONT_ADDR":    "server.addr",
	"CORS_ORIGINS":       "server.cors_origins",
	"BODY_LIMIT_MB":      "server.body_limit_mb",
	"LOG_LEVEL":          "log.level",
	"LOG_FORMAT":         "log.format",
	"CATALOG_PATH":       "catalog.path",
	"DATABASE_URL":       "catalog.database_url",
	"CATALOG_CATEGORIES": "catalog.categories",
	"FAQ_EXTRA_PATH":     "faq.extra_path",
	"IMAGE_QUALITY":      "image.quality",
	"IMAGE_MAX_WIDTH":    "image.max_width",
	"IMAGE_MAX_HEIGHT":   "image.max_height",
	"IMAGE_BUCKET":       "image.bucket",
	"AWS_REGION":         "image.region",
	"AWS_ENDPOINT_URL":   "image.endpoint",
	"JWT_SECRET":         "auth.jwt_secret",
}

var sliceKeys = []string{"server.cors_origins", "catalog.categories"}

// Load reads configuration from defaults, an optional YAML file and the
// environment (highest priority). A .env file in the working directory is
// loaded into the environment first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string { return envKeys[s] }), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if err := splitSlices(k); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitSlices turns comma-separated env values into string slices.
func splitSlices(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		s, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		parts := make([]string, 0)
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(key, parts); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks value ranges that would otherwise fail per request.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Image.Quality < 1 || c.Image.Quality > 100 {
		errs = append(errs, fmt.Errorf("image.quality must be between 1 and 100, got %d", c.Image.Quality))
	}
	if c.Image.MaxWidth <= 0 || c.Image.MaxHeight <= 0 {
		errs = append(errs, fmt.Errorf("image max dimensions must be positive, got %dx%d", c.Image.MaxWidth, c.Image.MaxHeight))
	}
	if c.Server.BodyLimitMB <= 0 {
		errs = append(errs, fmt.Errorf("server.body_limit_mb must be positive, got %d", c.Server.BodyLimitMB))
	}
	return errors.Join(errs...)
}
