// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client SDK of the notes-board backend.
//
// [BoardClient] talks REST (resty) to the auth and notes endpoints and
// consumes the recent-notes feed over a websocket. It keeps the bearer token
// and the current identity, and implements both board.AuthService and
// board.NoteStore.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter
