// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

//go:generate mockgen -source=interfaces.go -destination=../mock/board_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/notes-board/models"
)

// AuthService is the identity provider the session signs users in with.
type AuthService interface {
	// SignIn authenticates with email and password. On success the new
	// identity is announced to every OnAuthStateChanged listener.
	SignIn(ctx context.Context, email, password string) error
	// SignUp creates an account. It does not sign the user in.
	SignUp(ctx context.Context, email, password string) error
	// SignOut drops the current identity and announces nil to listeners.
	SignOut(ctx context.Context) error
	// OnAuthStateChanged registers listener. The listener is called once with
	// the current identity (nil when anonymous) and then on every change.
	OnAuthStateChanged(listener func(*models.Identity))
}

// NoteStore is the shared notes collection.
type NoteStore interface {
	// Append stores a new note. The store assigns its key.
	Append(ctx context.Context, note models.Note) error
	// SubscribeRecent delivers the limit most recent notes oldest first and
	// then every note appended afterwards, until ctx is cancelled.
	SubscribeRecent(ctx context.Context, limit int, listener func(models.Note))
}

// Presenter is the display surface driven by the session.
type Presenter interface {
	// SetAuthenticated switches between the login form and the post form.
	SetAuthenticated(authenticated bool)
	ClearNotes()
	ShowNotes(markup string)
	// Alert shows a blocking message to the user.
	Alert(message string)
}

// Renderer turns a template and the model's render view into markup.
type Renderer interface {
	Render(template string, data any) (string, error)
}

// Form is a submitted set of named input values. url.Values satisfies it.
type Form interface {
	Get(key string) string
}

// Form field names read by the command handlers.
const (
	FormNote     = "note"
	FormEmail    = "email"
	FormPassword = "password"
)
