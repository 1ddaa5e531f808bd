package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// NewConnectSQLite opens a sqlite database, creating the file for plain path
// DSNs. Writers are serialized on a single connection so concurrent
// compare-and-swap updates do not hit SQLITE_BUSY.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := touchDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("cannot create database file")
		return nil, err
	}

	return open(ctx, dialect{
		driver:       config.DriverSQLite,
		placeholder:  sq.Question,
		classifier:   SQLiteErrorClassifier{},
		maxOpenConns: 1,
		maxIdleConns: 1,
	}, cfg.DSN, log)
}

// touchDBFile creates path if it is a plain file path that does not exist.
// URI DSNs ("file:...") and in-memory databases are left to the driver.
func touchDBFile(path string) error {
	if path == "" || strings.HasPrefix(path, "file:") || strings.HasPrefix(path, ":memory:") {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create sqlite file: %w", err)
	}
	return f.Close()
}
