package store

import (
	"context"
	"net/url"
	"strings"

	"github.com/JonMunkholm/bookshelf/internal/config"
	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig parses cfg.URL and applies the pool bounds from cfg.
func PoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, &core.FatalStartupError{Stage: "parse database url", Err: err}
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	return poolConfig, nil
}

// NewPool builds the bounded connection pool and verifies it with a ping.
// Any failure is a *core.FatalStartupError; the caller must not start
// serving without a working pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, &core.FatalStartupError{Stage: "create pool", Err: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &core.FatalStartupError{Stage: "ping database", Err: err}
	}

	return pool, nil
}

// Stats is a snapshot of pool usage.
type Stats struct {
	MaxConns      int32 `json:"max_conns"`
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	AcquireCount  int64 `json:"acquire_count"`
}

// PoolStats reports the current usage of pool.
func PoolStats(pool *pgxpool.Pool) Stats {
	st := pool.Stat()
	return Stats{
		MaxConns:      st.MaxConns(),
		TotalConns:    st.TotalConns(),
		IdleConns:     st.IdleConns(),
		AcquiredConns: st.AcquiredConns(),
		AcquireCount:  st.AcquireCount(),
	}
}

// DatabaseName returns the database named in a connection URL, for logging.
// It returns "" for keyword/value connection strings.
func DatabaseName(connString string) string {
	u, err := url.Parse(connString)
	if err != nil || u.Scheme == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
