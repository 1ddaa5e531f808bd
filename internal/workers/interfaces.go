// Package workers provides the background jobs of the auth server and a
// Workers aggregate that runs them until the server stops.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger checks that the storage backends are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter publishes the readiness of the server.
type HealthReporter interface {
	SetServing(serving bool)
}
