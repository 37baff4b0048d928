// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"context"
	"sync"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
)

// DefaultRecentLimit is the size of the recent notes window.
const DefaultRecentLimit = 20

// Options tune a [Session].
type Options struct {
	// Template is the notes list template handed to the renderer.
	Template string
	// RecentLimit is the number of notes replayed on subscription.
	// Zero means DefaultRecentLimit.
	RecentLimit int
}

// Session keeps one [Model] and its presentation in sync.
type Session struct {
	auth      AuthService
	store     NoteStore
	presenter Presenter
	renderer  Renderer
	opts      Options

	model *Model
	loop  *Loop

	ctx context.Context
	wg  sync.WaitGroup

	logger *logger.Logger
}

// NewSession wires a session to its collaborators. Nothing is subscribed
// until Start is called.
func NewSession(auth AuthService, store NoteStore, presenter Presenter, renderer Renderer, opts Options, log *logger.Logger) *Session {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultRecentLimit
	}

	return &Session{
		auth:      auth,
		store:     store,
		presenter: presenter,
		renderer:  renderer,
		opts:      opts,
		model:     NewModel(),
		loop:      NewLoop(),
		ctx:       context.Background(),
		logger:    log,
	}
}

// Start registers the auth-state and recent-notes subscriptions. Both stay
// active until ctx is cancelled. Start must be called before any command and
// before Run.
func (s *Session) Start(ctx context.Context) {
	s.ctx = ctx

	s.auth.OnAuthStateChanged(func(identity *models.Identity) {
		s.loop.Post(func() { s.updateUser(identity) })
	})

	s.store.SubscribeRecent(ctx, s.opts.RecentLimit, func(note models.Note) {
		s.loop.Post(func() { s.addLocalNote(note) })
	})

	s.logger.Info().Int("recent_limit", s.opts.RecentLimit).Msg("board session started")
}

// Run drives the session's event loop until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	return s.loop.Run(ctx)
}

// Wait blocks until every service call issued by a command has returned.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Post runs task on the session loop. Code outside the loop reaches the
// model through it, for example s.Post(func() { s.SetModel(k, v) }).
func (s *Session) Post(task func()) {
	s.loop.Post(task)
}

// SetModel is the only way to replace a model field. When value differs from
// the current one by identity, or key was never set, the model is updated and
// the views are refreshed once. Otherwise nothing happens.
//
// The model is not locked: SetModel must be called from a task running on the
// session loop (see Post).
func (s *Session) SetModel(key Field, value any) {
	if !s.model.set(key, value) {
		return
	}

	s.UpdateViews()
}

// UpdateViews re-derives the whole presentation from the model. Like
// SetModel it must run on the session loop.
func (s *Session) UpdateViews() {
	s.presenter.SetAuthenticated(s.model.User() != nil)
	s.showNotes()
}

func (s *Session) showNotes() {
	s.presenter.ClearNotes()

	markup, err := s.renderer.Render(s.opts.Template, s.model.Data())
	if err != nil {
		s.logger.Err(err).Msg("rendering notes failed")
		return
	}

	s.presenter.ShowNotes(markup)
}

// updateUser maps an auth-state event onto the user field. Only password
// identities produce a user.
func (s *Session) updateUser(identity *models.Identity) {
	if identity != nil && identity.Provider == models.ProviderPassword {
		s.SetModel(FieldUser, &models.User{UID: identity.UID, DisplayName: identity.Email})
		return
	}

	s.SetModel(FieldUser, nil)
}

// addLocalNote puts a note delivered by the store at the front of the list
// and re-renders the notes.
func (s *Session) addLocalNote(note models.Note) {
	s.model.prependNote(note)
	s.showNotes()
}

// goCall runs fn on its own goroutine and tracks it for Wait.
func (s *Session) goCall(fn func(ctx context.Context)) {
	ctx := s.ctx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(ctx)
	}()
}
