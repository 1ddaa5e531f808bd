package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages bundles every storage backend the server runs on.
type Storages struct {
	CredentialStore       CredentialStore
	ExpiredSessionCleaner ExpiredSessionCleaner
	// Redis is set only for the multi-session policy.
	Redis *redis.Client

	db *DB
}

// NewStorages connects the credential store for cfg.Storage.DB, applies
// migrations and, for the multi-session policy, connects redis.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.Storage.DB.Driver {
	case config.DriverMemory:
		mem := NewMemoryUserStore()
		s.CredentialStore = mem
		s.ExpiredSessionCleaner = mem
		log.Warn().Msg("using in-memory credential store, data is lost on restart")
	default:
		db, err := NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		repo := NewUserRepository(db, log)
		s.CredentialStore = repo
		s.ExpiredSessionCleaner = repo
		s.db = db
	}

	if cfg.App.SessionPolicy == config.SessionPolicyMulti {
		client, err := NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Redis = client
	}

	return s, nil
}

// NewRedisClient creates a go-redis client for cfg and verifies it with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// Ping checks that every backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.PingContext(ctx))
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Ping(ctx).Err())
	}
	return errors.Join(errs...)
}

// Close releases every open connection.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	return errors.Join(errs...)
}
