// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
)

var noteColumns = []string{"id", "uid", "author", "text", "created_at"}

type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// AppendNote inserts note and reads back the key the database assigned.
func (r *noteRepository) AppendNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("notes").
		Columns("uid", "author", "text", "created_at").
		Values(note.UID, note.Author, note.Text, note.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.Key); err != nil {
		log.Err(err).Str("func", "*noteRepository.AppendNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// RecentNotes selects the newest limit notes and returns them oldest first.
func (r *noteRepository) RecentNotes(ctx context.Context, limit int) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.Note{}, nil
	}

	query, args, err := r.db.builder.
		Select(noteColumns...).
		From("notes").
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.RecentNotes").Msg("error querying notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, limit)
	for rows.Next() {
		var n models.Note
		if err = rows.Scan(&n.Key, &n.UID, &n.Author, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Reverse(notes)
	return notes, nil
}
