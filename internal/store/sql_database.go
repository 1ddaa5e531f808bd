package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
)

// DB wraps *sql.DB with the driver name, a squirrel statement builder using
// the driver's placeholder format and the driver's error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dialect is what differs between the supported drivers.
type dialect struct {
	driver       string
	placeholder  sq.PlaceholderFormat
	classifier   ErrorClassificator
	maxOpenConns int
	maxIdleConns int
}

// NewConnect opens and pings a database for cfg.Driver ("pgx" or "sqlite3").
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func open(ctx context.Context, d dialect, dsn string, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "store.open").Str("driver", d.driver).Logger()

	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		l.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}

	conn.SetMaxOpenConns(d.maxOpenConns)
	conn.SetMaxIdleConns(d.maxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}
	l.Info().Msg("connected to database")

	return &DB{
		DB:                 conn,
		driver:             d.driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		errorClassificator: d.classifier,
		logger:             log,
	}, nil
}

// Migrate applies the embedded schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the name of the database/sql driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// classify returns the retry classification of err, NonRetryable when the
// DB has no classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
