// Package server runs the notes-board HTTP server: startup, signal
// handling and graceful shutdown.
package server
