package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// presenterBuffer is the number of presenter calls queued before the caller
// waits for the UI to catch up.
const presenterBuffer = 64

// Presenter implements board.Presenter on top of a Bubble Tea program. Calls
// are queued in order and delivered to [Model] as messages.
type Presenter struct {
	events chan tea.Msg

	done      chan struct{}
	closeOnce sync.Once
}

func NewPresenter() *Presenter {
	return &Presenter{
		events: make(chan tea.Msg, presenterBuffer),
		done:   make(chan struct{}),
	}
}

func (p *Presenter) SetAuthenticated(authenticated bool) {
	p.send(authModeMsg{authenticated: authenticated})
}

func (p *Presenter) ClearNotes() {
	p.send(notesClearedMsg{})
}

func (p *Presenter) ShowNotes(markup string) {
	p.send(notesMsg{markup: markup})
}

func (p *Presenter) Alert(message string) {
	p.send(alertMsg{message: message})
}

// Close stops delivery. Later calls are dropped instead of blocking, so the
// session can drain after the UI has exited.
func (p *Presenter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

func (p *Presenter) send(msg tea.Msg) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.events <- msg:
	case <-p.done:
	}
}

// next returns a command that waits for the next presenter call.
func (p *Presenter) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-p.events:
			return msg
		case <-p.done:
			return presenterClosedMsg{}
		}
	}
}
