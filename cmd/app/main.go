package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/storefront-ai/internal/catalog"
	"github.com/wichananm65/storefront-ai/internal/config"
	"github.com/wichananm65/storefront-ai/internal/faq"
	"github.com/wichananm65/storefront-ai/internal/imageopt"
	"github.com/wichananm65/storefront-ai/internal/logging"
	"github.com/wichananm65/storefront-ai/internal/metrics"
	"github.com/wichananm65/storefront-ai/internal/recommend"
	"github.com/wichananm65/storefront-ai/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products := loadCatalog(ctx, cfg.Catalog)
	metrics.CatalogProducts.Set(float64(products.Len()))

	// a missing catalog disables recommendations but not the other endpoints
	rec, err := recommend.New(products.Products())
	if err != nil {
		logging.Warn().Err(err).Msg("recommender disabled")
		rec = nil
	}

	matcher := mustBuildFAQ(cfg.FAQ)

	var store imageopt.Store
	if cfg.Image.Bucket != "" {
		client, err := imageopt.NewS3Client(ctx, cfg.Image.Region, cfg.Image.Endpoint)
		if err != nil {
			logging.Warn().Err(err).Msg("image storage disabled")
		} else {
			store = imageopt.NewS3Store(client, cfg.Image.Bucket, cfg.Image.Region, cfg.Image.Endpoint)
		}
	}
	optimizer := imageopt.New(imageopt.Options{
		Quality:   cfg.Image.Quality,
		MaxWidth:  cfg.Image.MaxWidth,
		MaxHeight: cfg.Image.MaxHeight,
	}, store)

	app := server.New(server.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		BodyLimitMB: cfg.Server.BodyLimitMB,
		JWTSecret:   cfg.Auth.JWTSecret,
	}, server.Deps{
		Recommender:     rec,
		FAQ:             matcher,
		Optimizer:       optimizer,
		CatalogProducts: products.Len(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info().Str("addr", cfg.Server.Addr).Int("products", products.Len()).Msg("listening")
		return app.Listen(cfg.Server.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// loadCatalog prefers the database when configured and falls back to the
// JSON file. Failures leave the catalog empty.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig) *catalog.Catalog {
	var src catalog.Source = catalog.NewFileSource(cfg.Path)
	if cfg.DatabaseURL != "" {
		db, err := catalog.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Warn().Err(err).Msg("catalog database unavailable, using file")
		} else {
			defer closeDB(db)
			src = catalog.NewPostgresSource(db, cfg.Categories)
		}
	}

	c, err := catalog.Load(ctx, src)
	if err != nil {
		logging.Warn().Err(err).Msg("catalog not loaded")
	}
	return c
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("close catalog database")
	}
}

func mustBuildFAQ(cfg config.FAQConfig) *faq.Matcher {
	matcher, err := faq.NewMatcher(faq.DefaultEntries())
	if err != nil {
		logging.Error().Err(err).Msg("build faq table")
		os.Exit(1)
	}
	if cfg.ExtraPath == "" {
		return matcher
	}

	extra, err := faq.LoadExtra(cfg.ExtraPath)
	if err != nil {
		logging.Warn().Err(err).Msg("extra faq entries ignored")
		return matcher
	}
	for _, e := range extra {
		if err := matcher.Add(e); err != nil {
			logging.Warn().Err(err).Str("id", e.ID).Msg("skipping faq entry")
		}
	}
	return matcher
}
