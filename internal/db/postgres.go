package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"profranchising/internal/logger"
)

// Connect opens the pool, checks it and makes sure every table exists.
func Connect(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	log = logger.OrNop(log)

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}
	log.Info("connected to postgres", zap.String("host", config.ConnConfig.Host))

	if err := InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	log.Info("schema initialized")

	return pool, nil
}

var schema = []string{
	// -------------------------------
	// USERS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS logins (
		id UUID PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		logged_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// -------------------------------
	// CATALOG
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS ingredients (
		id UUID PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		unity VARCHAR(8) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		quantity INTEGER NOT NULL,
		ingredients JSONB NOT NULL DEFAULT '[]'::jsonb,
		image TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS products_ingredients_idx
		ON products USING GIN (ingredients jsonb_path_ops)`,

	// -------------------------------
	// COST LEDGER
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS costs (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS costs_name_idx ON costs (name)`,
}

// InitSchema is idempotent.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
