// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/store"
	"github.com/MKhiriev/notes-board/internal/validators"
	"github.com/MKhiriev/notes-board/models"
	"github.com/imkira/go-observer"
)

type noteService struct {
	noteRepository store.NoteRepository

	// appended holds the last stored note; every live feed observes it.
	appended observer.Property
	// publishMu keeps inserts and publishes in the same order.
	publishMu sync.Mutex

	validator validators.Validator
	logger    *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		appended:       observer.NewProperty(models.Note{}),
		validator:      validators.NewBoardValidator(),
		logger:         logger,
	}
}

// AppendNote fills author and uid from account, so clients cannot post on
// behalf of somebody else.
func (s *noteService) AppendNote(ctx context.Context, account models.Account, text string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		UID:       account.UID,
		Author:    account.Email,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.validator.Validate(ctx, note, validators.FieldText); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrEmptyNote, err)
	}

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	note, err := s.noteRepository.AppendNote(ctx, note)
	if err != nil {
		log.Err(err).Str("uid", account.UID).Msg("error storing note")
		return models.Note{}, fmt.Errorf("error storing note: %w", err)
	}

	s.appended.Update(note)
	log.Debug().Int64("key", note.Key).Str("uid", note.UID).Msg("note appended")

	return note, nil
}

func (s *noteService) RecentNotes(ctx context.Context, limit int) ([]models.Note, error) {
	notes, err := s.noteRepository.RecentNotes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error loading recent notes: %w", err)
	}

	return notes, nil
}

func (s *noteService) Feed(ctx context.Context, limit int, send func(models.Note) error) error {
	// observe before reading the backlog so nothing appended in between is lost
	stream := s.appended.Observe()

	backlog, err := s.RecentNotes(ctx, limit)
	if err != nil {
		return err
	}

	// live notes up to the newest backlog key were already replayed
	var backlogKey int64
	for _, note := range backlog {
		if err = send(note); err != nil {
			return fmt.Errorf("error sending backlog note: %w", err)
		}
		backlogKey = max(backlogKey, note.Key)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stream.Changes():
			note, ok := stream.Next().(models.Note)
			if !ok || note.Key <= backlogKey {
				continue
			}
			if err = send(note); err != nil {
				return fmt.Errorf("error sending note: %w", err)
			}
		}
	}
}
