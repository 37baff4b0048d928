package board

import (
	"context"
	"errors"
	"net/url"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
)

// recordingPresenter keeps every presenter call in order.
type recordingPresenter struct {
	calls  []string
	auth   []bool
	shown  []string
	alerts []string
}

func (p *recordingPresenter) SetAuthenticated(authenticated bool) {
	p.calls = append(p.calls, "auth")
	p.auth = append(p.auth, authenticated)
}

func (p *recordingPresenter) ClearNotes() {
	p.calls = append(p.calls, "clear")
}

func (p *recordingPresenter) ShowNotes(markup string) {
	p.calls = append(p.calls, "show")
	p.shown = append(p.shown, markup)
}

func (p *recordingPresenter) Alert(message string) {
	p.calls = append(p.calls, "alert")
	p.alerts = append(p.alerts, message)
}

// refreshes counts completed view updates.
func (p *recordingPresenter) refreshes() int {
	return len(p.auth)
}

// countingRenderer renders the note texts joined by "|" and counts calls.
type countingRenderer struct {
	calls int
	err   error
}

func (r *countingRenderer) Render(_ string, data any) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}

	out := ""
	m := data.(map[string]any)
	for _, n := range m["notes"].([]map[string]any) {
		out += n["text"].(string) + "|"
	}
	return out, nil
}

// funcAuth is an AuthService built from function fields.
type funcAuth struct {
	signIn   func(email, password string) error
	signUp   func(email, password string) error
	signOut  func() error
	onChange func(listener func(*models.Identity))
}

var errNotConfigured = errors.New("not configured")

func (a *funcAuth) SignIn(_ context.Context, email, password string) error {
	if a.signIn == nil {
		return errNotConfigured
	}
	return a.signIn(email, password)
}

func (a *funcAuth) SignUp(_ context.Context, email, password string) error {
	if a.signUp == nil {
		return errNotConfigured
	}
	return a.signUp(email, password)
}

func (a *funcAuth) SignOut(_ context.Context) error {
	if a.signOut == nil {
		return nil
	}
	return a.signOut()
}

func (a *funcAuth) OnAuthStateChanged(listener func(*models.Identity)) {
	if a.onChange != nil {
		a.onChange(listener)
	}
}

// memStore records appended notes and replays a fixed backlog.
type memStore struct {
	backlog  []models.Note
	appended []models.Note
	listener func(models.Note)
}

func (s *memStore) Append(_ context.Context, note models.Note) error {
	s.appended = append(s.appended, note)
	return nil
}

func (s *memStore) SubscribeRecent(_ context.Context, limit int, listener func(models.Note)) {
	s.listener = listener
	from := 0
	if len(s.backlog) > limit {
		from = len(s.backlog) - limit
	}
	for _, n := range s.backlog[from:] {
		listener(n)
	}
}

func newTestSession(auth AuthService, store NoteStore, p Presenter, r Renderer) *Session {
	return NewSession(auth, store, p, r, Options{Template: "{{#notes}}{{text}}{{/notes}}"}, logger.Nop())
}

// settle runs queued loop tasks, waits for in-flight service calls and runs
// whatever they posted back.
func settle(s *Session) {
	s.loop.drain()
	s.Wait()
	s.loop.drain()
}

func form(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}
