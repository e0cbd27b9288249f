package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/config"
	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/hydration"
	"github.com/nutricancer/nutricancer/internal/domain/mealplan"
	"github.com/nutricancer/nutricancer/internal/domain/nutritionlog"
	"github.com/nutricancer/nutricancer/internal/domain/recommendation"
	"github.com/nutricancer/nutricancer/internal/domain/report"
	"github.com/nutricancer/nutricancer/internal/platform/db"
	"github.com/nutricancer/nutricancer/internal/platform/middleware"
	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
	"github.com/nutricancer/nutricancer/migrations"
)

type server struct {
	echo    *echo.Echo
	pool    *pgxpool.Pool
	watcher *catalog.Watcher
}

func (s *server) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// openStore returns the key/value backend named by STORE_BACKEND. The pool is
// non-nil only for postgres, whose migrations are applied on startup.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.Store, *pgxpool.Pool, error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		fileStore, err := store.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("dir", cfg.DataDir).Msg("using file store")
		return fileStore, nil, nil
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, err
		}
		n, err := db.NewMigrator(pool, migrations.FS).Up(ctx)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info().Int("applied", n).Msg("connected to database")
		return store.NewPostgres(pool), pool, nil
	default:
		logger.Warn().Msg("using in-memory store, data is lost on restart")
		return store.NewMemory(), nil, nil
	}
}

func newServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*server, error) {
	kv, pool, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	srv := &server{pool: pool}

	var recipes catalog.Source = catalog.Builtin()
	if cfg.CatalogFile != "" {
		w, err := catalog.NewWatcher(cfg.CatalogFile, logger)
		if err != nil {
			srv.Close()
			return nil, err
		}
		go w.Run(ctx)
		srv.watcher = w
		recipes = w
	}

	hub := websocket.NewHub(logger)

	assessmentSvc := assessment.NewService(kv, hub, logger)
	recommendationSvc := recommendation.NewService(assessmentSvc, recipes)
	nutritionSvc := nutritionlog.NewService(kv, assessmentSvc, hub, logger)
	mealPlanSvc := mealplan.NewService(kv, assessmentSvc, recipes, nutritionSvc, hub, logger)
	hydrationSvc := hydration.NewService(kv, hub, cfg.WaterDefaultGoal, logger)
	reportSvc := report.NewService(assessmentSvc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders(cfg.TLSEnabled))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit, cfg.ImportBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		n, m := recipes.Current().Len()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"store":   cfg.StoreBackend,
			"recipes": n,
			"advice":  m,
			"clients": hub.ClientCount(),
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	rl := middleware.DefaultRateLimitConfig()
	rl.RequestsPerSecond = cfg.RateLimitRPS
	rl.BurstSize = cfg.RateLimitBurst
	api := e.Group("/api/v1", middleware.RateLimit(rl))

	assessment.NewHandler(assessmentSvc).RegisterRoutes(api)
	recommendation.NewHandler(recommendationSvc).RegisterRoutes(api)
	catalog.NewHandler(recipes).RegisterRoutes(api)
	mealplan.NewHandler(mealPlanSvc).RegisterRoutes(api)
	nutritionlog.NewHandler(nutritionSvc).RegisterRoutes(api)
	hydration.NewHandler(hydrationSvc).RegisterRoutes(api)
	report.NewHandler(reportSvc).RegisterRoutes(api)
	websocket.NewHandler(hub).RegisterRoutes(api)

	srv.echo = e
	return srv, nil
}
