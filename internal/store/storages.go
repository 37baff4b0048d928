package store

import "github.com/MKhiriev/notes-board/internal/logger"

// Storages groups the repositories backed by one database.
type Storages struct {
	AccountRepository AccountRepository
	NoteRepository    NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		NoteRepository:    NewNoteRepository(db, logger),
	}
}
