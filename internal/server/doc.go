// Package server wires and runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown with a bounded drain period.
package server
