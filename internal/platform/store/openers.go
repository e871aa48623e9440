package store

import (
	"context"
	"fmt"
	"time"

	"fiscaliza/internal/core/version"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/platform/store/ch"
	"fiscaliza/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// openPG opens the pool and pings it with backoff before handing out the adapter
func openPG(ctx context.Context, app string, cfg PGConfig, log logger.Logger) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{URL: cfg.URL, AppName: app, MaxConns: cfg.MaxConns, SlowMs: cfg.SlowQueryMs}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := max(cfg.ConnectRetries, 1)
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = p.Pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}

		log.Warn().Err(lastErr).Int("attempt", i+1).Int("of", attempts).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config, log logger.Logger) (Clickhouse, error) {
	chLog := log.With().Str("component", "ch").Logger()
	c, err := ch.Open(ctx, ch.Config{
		URL:    cfg.CH.URL,
		Role:   cfg.AppName,
		Tag:    version.Info(cfg.AppName).Version,
		LogSQL: cfg.CH.LogSQL,
		Debugf: func(format string, v ...any) { chLog.Debug().Msgf(format, v...) },
	})
	if err != nil {
		return nil, err
	}
	return &chAdapter{c: c}, nil
}
