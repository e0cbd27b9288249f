package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const pingTimeout = 5 * time.Second

type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
	Healthy         bool   `json:"healthy"`
}

func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
		Healthy:         stat.TotalConns() > 0,
	}
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /health/db for the postgres store backend.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return checkHandler(pool, func() *PoolStats { return GetPoolStats(pool) })
}

func checkHandler(p Pinger, stats func() *PoolStats) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()

		err := p.Ping(ctx)
		st := stats()
		if err != nil {
			st.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "unhealthy",
				"backend": "postgres",
				"error":   err.Error(),
				"pool":    st,
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"backend": "postgres",
			"pool":    st,
		})
	}
}
