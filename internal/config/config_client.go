package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the transport settings of cmd/client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the part of [StructuredConfig] the client needs. Token
// secrets and storage settings are not required to run it.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig loads the same layered sources as the server and
// validates only the client view of them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	return clientConfigFrom(cfg)
}

func clientConfigFrom(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	return clientCfg, clientCfg.validate()
}
