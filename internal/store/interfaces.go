package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/notes-board/models"
)

// AccountRepository stores user accounts.
type AccountRepository interface {
	// CreateAccount stores account. It returns [ErrEmailAlreadyExists] when
	// the email is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByEmail returns [ErrAccountNotFound] when nothing matches.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	// FindAccountByUID returns [ErrAccountNotFound] when nothing matches.
	FindAccountByUID(ctx context.Context, uid string) (models.Account, error)
}

// NoteRepository stores notes. Keys are assigned by the database and grow
// with every insert.
type NoteRepository interface {
	// AppendNote stores note and returns it with its key set.
	AppendNote(ctx context.Context, note models.Note) (models.Note, error)
	// RecentNotes returns up to limit notes with the highest keys in
	// ascending key order.
	RecentNotes(ctx context.Context, limit int) ([]models.Note, error)
}
