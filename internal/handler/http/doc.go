// Package http implements the HTTP transport of the notes-board backend.
//
// It wires the chi router, the JSON handlers for accounts and notes, the
// websocket feed of recent notes and the middleware chain: panic recovery,
// trace ids, access logging, response compression and bearer
// authentication.
package http
