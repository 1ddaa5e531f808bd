package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.AccessTokenSecret = "access"
	cfg.App.RefreshTokenSecret = "refresh"
	cfg.Storage.DB.DSN = "postgres://localhost/auth"
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing access secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing refresh secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RefreshTokenSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "shared secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RefreshTokenSecret = cfg.App.AccessTokenSecret },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero access duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "refresh shorter than access",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.AccessTokenDuration = time.Hour
				cfg.App.RefreshTokenDuration = time.Minute
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown password hasher",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHasher = "md5" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 99 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown session policy",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionPolicy = "sticky" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "sql driver without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "memory driver without dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverMemory
				cfg.Storage.DB.DSN = ""
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "multi policy without redis",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionPolicy = SessionPolicyMulti },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "grpc only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:    "no listener",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SweepInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero health interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.HealthInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigFrom(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Adapter.HTTPAddress = "http://localhost:8080"

		clientCfg, err := clientConfigFrom(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", clientCfg.Adapter.HTTPAddress)
		assert.Equal(t, 10*time.Second, clientCfg.Adapter.RequestTimeout)
	})

	t.Run("missing address", func(t *testing.T) {
		_, err := clientConfigFrom(defaultConfig())
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
