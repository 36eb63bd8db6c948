package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"skillsync/internal/logger"
)

// Connect opens a pgx pool and verifies the connection. Startup is the only
// sensible place to fail on an unreachable database.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
