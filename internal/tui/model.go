package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/notes-board/internal/board"
	"github.com/MKhiriev/notes-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 2 * time.Second

// Model is the Bubble Tea model of the board screen. It only displays what
// the presenter delivers; all model changes go through the [Controller].
type Model struct {
	controller Controller
	presenter  *Presenter
	buildInfo  models.AppBuildInfo

	// copyToClipboard is clipboard.WriteAll outside tests.
	copyToClipboard func(string) error

	authenticated bool
	markup        string

	loginInputs []textinput.Model
	focus       int
	noteInput   textinput.Model

	showAlert     bool
	alert         alertOverlayModel
	showBuildInfo bool
	status        string
}

func NewModel(controller Controller, presenter *Presenter, buildInfo models.AppBuildInfo) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	note := textinput.New()
	note.Placeholder = "write a note"
	note.Width = 60

	return Model{
		controller:      controller,
		presenter:       presenter,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
		loginInputs:     []textinput.Model{email, password},
		noteInput:       note,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.presenter.next())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authModeMsg:
		m.setAuthenticated(msg.authenticated)
		return m, m.presenter.next()
	case notesClearedMsg:
		m.markup = ""
		return m, m.presenter.next()
	case notesMsg:
		m.markup = msg.markup
		return m, m.presenter.next()
	case alertMsg:
		m.showAlert = true
		m.alert = alertOverlayModel{message: msg.message}
		return m, m.presenter.next()
	case presenterClosedMsg:
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	// an alert blocks everything until it is dismissed
	if m.showAlert {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showAlert = false
			m.alert = alertOverlayModel{}
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	}

	if m.authenticated {
		return m.updatePostForm(msg)
	}
	return m.updateLoginForm(msg)
}

func (m Model) updateLoginForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.focusLoginInput((m.focus + 1) % len(m.loginInputs))
		return m, nil
	case key.Matches(msg, keys.enter):
		m.controller.LoginUser(m.loginForm())
		return m, nil
	case key.Matches(msg, keys.signUp):
		m.controller.SignUpUser(m.loginForm())
		return m, nil
	}

	var cmd tea.Cmd
	m.loginInputs[m.focus], cmd = m.loginInputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updatePostForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.controller.PostNote(url.Values{board.FormNote: {m.noteInput.Value()}})
		m.noteInput.Reset()
		return m, nil
	case key.Matches(msg, keys.logout):
		m.controller.LogoutUser()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.authenticated {
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}
	m.loginInputs[m.focus], cmd = m.loginInputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setAuthenticated(authenticated bool) {
	m.authenticated = authenticated
	if authenticated {
		m.loginInputs[m.focus].Blur()
		m.noteInput.Focus()
		return
	}
	m.noteInput.Blur()
	m.loginInputs[loginPassword].Reset()
	m.focusLoginInput(loginEmail)
}

func (m *Model) focusLoginInput(i int) {
	m.loginInputs[m.focus].Blur()
	m.focus = i
	m.loginInputs[m.focus].Focus()
}

func (m Model) loginForm() url.Values {
	return url.Values{
		board.FormEmail:    {strings.TrimSpace(m.loginInputs[loginEmail].Value())},
		board.FormPassword: {m.loginInputs[loginPassword].Value()},
	}
}

func (m Model) cmdCopy() tea.Cmd {
	text := m.markup
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) View() string {
	if m.showAlert {
		return appStyle.Render(m.alert.View())
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	var help string

	if m.authenticated {
		b.WriteString("Note │ [")
		b.WriteString(m.noteInput.View())
		b.WriteString("]\n")
		help = helpLine(keys.enter, keys.logout, keys.copy, keys.buildInfo, keys.quit)
	} else {
		b.WriteString("Email    │ [")
		b.WriteString(m.loginInputs[loginEmail].View())
		b.WriteString("]\n")
		b.WriteString("Password │ [")
		b.WriteString(m.loginInputs[loginPassword].View())
		b.WriteString("]\n")
		help = helpLine(keys.tab, keys.enter, keys.signUp, keys.copy, keys.buildInfo, keys.quit)
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.markup)

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return appStyle.Render(renderPage("NOTES BOARD", b.String(), help))
}
