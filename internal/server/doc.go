// Package server wires and runs the application's transport servers.
//
// It binds the HTTP API and the gRPC health endpoint, runs them until the
// process receives a stop signal and shuts both down gracefully.
package server
