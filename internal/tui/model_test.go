package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/notes-board/internal/board"
	"github.com/MKhiriev/notes-board/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	form board.Form
}

type fakeController struct {
	calls []call
}

func (c *fakeController) PostNote(form board.Form)   { c.calls = append(c.calls, call{"post", form}) }
func (c *fakeController) LoginUser(form board.Form)  { c.calls = append(c.calls, call{"login", form}) }
func (c *fakeController) LogoutUser()                { c.calls = append(c.calls, call{"logout", nil}) }
func (c *fakeController) SignUpUser(form board.Form) { c.calls = append(c.calls, call{"signup", form}) }

func newTestModel(t *testing.T) (Model, *fakeController, *Presenter) {
	t.Helper()

	ctrl := &fakeController{}
	p := NewPresenter()
	t.Cleanup(p.Close)

	return NewModel(ctrl, p, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123")), ctrl, p
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestModel_Init(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestModel_PresenterMessages(t *testing.T) {
	m, _, p := newTestModel(t)

	m, cmd := update(t, m, notesMsg{markup: "<li>a: hi</li>"})
	assert.Equal(t, "<li>a: hi</li>", m.markup)
	require.NotNil(t, cmd)

	// the returned command keeps listening to the presenter
	p.Alert("Login Failed!")
	msg := cmd()
	assert.Equal(t, alertMsg{message: "Login Failed!"}, msg)

	m, _ = update(t, m, msg)
	assert.True(t, m.showAlert)
	assert.Contains(t, m.View(), "Login Failed!")

	m, _ = update(t, m, notesClearedMsg{})
	assert.Empty(t, m.markup)

	m, _ = update(t, m, authModeMsg{authenticated: true})
	assert.True(t, m.authenticated)

	_, cmd = update(t, m, presenterClosedMsg{})
	assert.Nil(t, cmd)
}

func TestModel_LoginForm(t *testing.T) {
	tests := []struct {
		name     string
		submit   tea.KeyType
		wantCall string
	}{
		{name: "enter logs in", submit: tea.KeyEnter, wantCall: "login"},
		{name: "ctrl+n signs up", submit: tea.KeyCtrlN, wantCall: "signup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl, _ := newTestModel(t)

			m = typeText(t, m, "ann@example.com")
			m, _ = update(t, m, keyPress(tea.KeyTab))
			m = typeText(t, m, "secret")
			_, _ = update(t, m, keyPress(tt.submit))

			require.Len(t, ctrl.calls, 1)
			assert.Equal(t, tt.wantCall, ctrl.calls[0].name)
			assert.Equal(t, "ann@example.com", ctrl.calls[0].form.Get(board.FormEmail))
			assert.Equal(t, "secret", ctrl.calls[0].form.Get(board.FormPassword))
		})
	}
}

func TestModel_PostForm(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m, _ = update(t, m, authModeMsg{authenticated: true})

	m = typeText(t, m, "hello board")
	m, _ = update(t, m, keyPress(tea.KeyEnter))

	require.Len(t, ctrl.calls, 1)
	assert.Equal(t, "post", ctrl.calls[0].name)
	assert.Equal(t, "hello board", ctrl.calls[0].form.Get(board.FormNote))
	assert.Empty(t, m.noteInput.Value())

	_, _ = update(t, m, keyPress(tea.KeyCtrlO))
	require.Len(t, ctrl.calls, 2)
	assert.Equal(t, "logout", ctrl.calls[1].name)
}

func TestModel_LogoutClearsPassword(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeText(t, m, "ann@example.com")
	m, _ = update(t, m, keyPress(tea.KeyTab))
	m = typeText(t, m, "secret")

	m, _ = update(t, m, authModeMsg{authenticated: true})
	m, _ = update(t, m, authModeMsg{authenticated: false})

	assert.Empty(t, m.loginInputs[loginPassword].Value())
	assert.Equal(t, "ann@example.com", m.loginInputs[loginEmail].Value())
	assert.Equal(t, loginEmail, m.focus)
}

func TestModel_AlertBlocksInput(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m, _ = update(t, m, alertMsg{message: "Login Failed!"})

	m, _ = update(t, m, keyPress(tea.KeyEnter))
	assert.False(t, m.showAlert)
	assert.Empty(t, ctrl.calls)

	m, _ = update(t, m, alertMsg{message: "again"})
	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.False(t, m.showAlert)
}

func TestModel_Copy(t *testing.T) {
	m, _, _ := newTestModel(t)

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	m, _ = update(t, m, notesMsg{markup: "<li>a: hi</li>"})

	m, cmd := update(t, m, keyPress(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "<li>a: hi</li>", copied)

	m, cmd = update(t, m, msg)
	assert.Equal(t, "Copied!", m.status)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.status, "no clipboard")

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestModel_BuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, keyPress(tea.KeyCtrlV))
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "v1.0.0")

	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Email")
	assert.Contains(t, m.View(), "sign up")

	m, _ = update(t, m, authModeMsg{authenticated: true})
	m, _ = update(t, m, notesMsg{markup: "ann: hello"})
	view := m.View()
	assert.Contains(t, view, "Note")
	assert.Contains(t, view, "ann: hello")
	assert.Contains(t, view, "log out")
}
