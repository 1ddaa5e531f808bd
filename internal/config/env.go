package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the env and
// envPrefix tags of [StructuredConfig]. Unset variables leave fields zero so
// that lower layers survive the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}
	return nil
}
