package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress(t *testing.T) {
	valid := []struct {
		in   string
		want NetAddress
		out  string
	}{
		{"localhost:8080", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"127.0.0.1:9090", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{":7070", NetAddress{Port: 7070}, ":7070"},
		{"[::1]:65535", NetAddress{Host: "::1", Port: 65535}, "[::1]:65535"},
	}
	for _, tc := range valid {
		t.Run(tc.in, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tc.in))
			assert.Equal(t, tc.want, a)
			assert.Equal(t, tc.out, a.String())
		})
	}

	invalid := []string{
		"localhost8080",
		"localhost:",
		"localhost:0",
		"localhost:65536",
		"localhost:http",
		"example.com:80",
		"999.1.1.1:80",
		"::1:80",
	}
	for _, in := range invalid {
		t.Run("reject "+in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(in)
			require.ErrorIs(t, err, ErrInvalidNetAddress)
			assert.Equal(t, NetAddress{}, a)
		})
	}

	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-db-driver", "pgx",
		"-d", "postgres://auth@localhost/auth",
		"-redis-address", "localhost:6379",
		"-config", "/etc/auth/config.json",
		"-access-token-secret", "acc",
		"-refresh-token-secret", "ref",
		"-access-token-duration", "10m",
		"-refresh-token-duration", "48h",
		"-token-issuer", "auth-test",
		"-session-policy", "multi",
		"-password-hasher", "argon2id",
		"-request-timeout", "5s",
		"-sweep-interval", "30m",
		"-health-interval", "20s",
		"-otlp-endpoint", "localhost:4318",
		"-server", "http://localhost:8080",
	})
	require.NoError(t, err)

	assert.Equal(t, App{
		AccessTokenSecret:    "acc",
		AccessTokenDuration:  10 * time.Minute,
		RefreshTokenSecret:   "ref",
		RefreshTokenDuration: 48 * time.Hour,
		TokenIssuer:          "auth-test",
		SessionPolicy:        "multi",
		PasswordHasher:       "argon2id",
	}, cfg.App)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://auth@localhost/auth", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second}, cfg.Adapter)
	assert.Equal(t, Workers{SweepInterval: 30 * time.Minute, HealthInterval: 20 * time.Second}, cfg.Workers)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "/etc/auth/config.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "local.json"})
	require.NoError(t, err)
	assert.Equal(t, "local.json", cfg.JSONFilePath)
}

func TestParseFlags_Invalid(t *testing.T) {
	cases := map[string][]string{
		"bad address":   {"-a", "nohost"},
		"bad grpc port": {"-grpc-address", "localhost:0"},
		"bad duration":  {"-access-token-duration", "soon"},
		"unknown flag":  {"-no-such-flag"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseFlags(args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
