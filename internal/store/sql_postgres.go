package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// NewConnectPostgres connects to PostgreSQL through the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return open(ctx, dialect{
		driver:       config.DriverPostgres,
		placeholder:  sq.Dollar,
		classifier:   PostgresErrorClassifier{},
		maxOpenConns: 10,
		maxIdleConns: 4,
	}, cfg.DSN, log)
}
