package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// defaultConfig returns the lowest-priority configuration layer.
// Secrets and addresses have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 10 * 24 * time.Hour,
			TokenIssuer:          "go-auth-keeper",
			PasswordHasher:       PasswordHasherBcrypt,
			PasswordHashCost:     bcrypt.DefaultCost,
			SessionPolicy:        SessionPolicySingle,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SweepInterval:  time.Hour,
			HealthInterval: 15 * time.Second,
		},
		Telemetry: Telemetry{
			ServiceName: "go-auth-keeper",
		},
	}
}
