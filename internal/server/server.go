// Package server exposes the query interpreter and the search engine over
// an HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/amaranand360/enterprise-search/config"
	"github.com/amaranand360/enterprise-search/internal/catalog"
	"github.com/amaranand360/enterprise-search/internal/demo"
	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/store"
)

// Run wires the service together and blocks serving HTTP. Postgres and
// Redis are optional: without Postgres there are no accounts and no
// history, without Redis the suggestion cache and scheduler locks are
// skipped.
func Run(cfg *appconfig.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Cookie", "Authorization"},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.Server.JWTSecret == "" {
		return fmt.Errorf("jwt secret not configured (server.jwt_secret)")
	}
	secret := []byte(cfg.Server.JWTSecret)

	ctx := context.Background()

	var st *store.Store
	if dsn := cfg.Databases.Postgres.DSN(); dsn != "" {
		if err := Migrate("file://migrations", dsn, "up", 0); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate: %w", err)
		}
		var err error
		st, err = store.NewWithDSN(ctx, dsn)
		if err != nil {
			return err
		}
	} else {
		baseLogger.Printf("postgres not configured; accounts and history disabled")
	}

	var rdb *redis.Client
	if addr := cfg.Databases.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Databases.Redis.Password, DB: cfg.Databases.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection failed (%s): %w", addr, err)
		}
	}

	reg := catalog.Default()

	eng, err := index.NewEngine()
	if err != nil {
		return err
	}
	if cfg.Index.DemoSize > 0 {
		if err := eng.Rebuild(demo.Corpus(cfg.Index.DemoSeed, cfg.Index.DemoSize)); err != nil {
			return err
		}
		baseLogger.Printf("seeded demo corpus: %d documents", eng.Size())
	}

	api := e.Group("/api")
	if st != nil {
		auth := &AuthHandler{Store: st, Secret: secret}
		auth.Register(api.Group("/auth"))
	}

	sh := &SearchHandler{
		Engine:        eng,
		Registry:      reg,
		Store:         st,
		Rdb:           rdb,
		Limit:         cfg.Index.ResultLimit,
		SuggestionTTL: cfg.Server.SuggestionTTL,
	}
	sh.Register(api.Group("/search"), secret)

	ih := &IngestHandler{Engine: eng, Registry: reg}
	ih.Register(api.Group("/ingest"), secret)

	if cfg.Scheduler.Enabled {
		r := &Reindexer{
			Engine:   eng,
			Rdb:      rdb,
			CronSpec: cfg.Scheduler.RefreshCron,
			Seed:     cfg.Index.DemoSeed,
			Size:     cfg.Index.DemoSize,
			Stop:     make(chan struct{}),
		}
		r.Start()
		defer close(r.Stop)
	}

	addr := cfg.Server.Address
	if addr == "" {
		addr = ":8080"
	}
	baseLogger.Printf("listening on %s", addr)
	return e.Start(addr)
}
