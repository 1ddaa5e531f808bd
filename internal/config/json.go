package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		AccessTokenSecret      string   `json:"access_token_secret"`
		AccessTokenDuration    Duration `json:"access_token_duration"`
		RefreshTokenSecret     string   `json:"refresh_token_secret"`
		RefreshTokenDuration   Duration `json:"refresh_token_duration"`
		TokenIssuer            string   `json:"token_issuer"`
		PasswordHasher         string   `json:"password_hasher"`
		PasswordHashCost       int      `json:"password_hash_cost"`
		SessionPolicy          string   `json:"session_policy"`
		DistinguishUnknownUser bool     `json:"distinguish_unknown_user"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		InsecureCookies bool     `json:"insecure_cookies"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval  Duration `json:"sweep_interval"`
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
		ServiceName  string `json:"service_name"`
	} `json:"telemetry,omitempty"`
}

// parseJSON reads the config file at path. Unknown keys are rejected so
// that a misspelt option does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err = dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccessTokenSecret:      jsonCfg.App.AccessTokenSecret,
			AccessTokenDuration:    time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenSecret:     jsonCfg.App.RefreshTokenSecret,
			RefreshTokenDuration:   time.Duration(jsonCfg.App.RefreshTokenDuration),
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			PasswordHasher:         jsonCfg.App.PasswordHasher,
			PasswordHashCost:       jsonCfg.App.PasswordHashCost,
			SessionPolicy:          jsonCfg.App.SessionPolicy,
			DistinguishUnknownUser: jsonCfg.App.DistinguishUnknownUser,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			InsecureCookies: jsonCfg.Server.InsecureCookies,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval:  time.Duration(jsonCfg.Workers.SweepInterval),
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
			ServiceName:  jsonCfg.Telemetry.ServiceName,
		},
	}

	return cfg, nil
}

// Duration accepts either a Go duration string ("15m") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return json.Unmarshal(b, (*time.Duration)(d))
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
