package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the session sweeper and, when health is non-nil, the
// storage health probe.
func NewWorkers(storages *store.Storages, health HealthReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	w.workers = append(w.workers, NewSessionSweeper(storages.ExpiredSessionCleaner, cfg.SweepInterval, logger))
	if health != nil {
		w.workers = append(w.workers, NewHealthProbe(storages, health, cfg.HealthInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
