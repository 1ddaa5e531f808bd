package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// HealthProbe pings the storage backends and reports SERVING only while all
// of them answer.
type HealthProbe struct {
	pinger   Pinger
	reporter HealthReporter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthProbe(pinger Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then on every tick.
func (p *HealthProbe) Run(ctx context.Context) {
	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe pings the backends once, bounded by the probe interval, and
// publishes the result.
func (p *HealthProbe) Probe(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("storage health check failed")
	}

	p.reporter.SetServing(err == nil)
	return err == nil
}
