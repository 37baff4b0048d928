package tui

// authModeMsg switches between the login form and the post form.
type authModeMsg struct {
	authenticated bool
}

type notesClearedMsg struct{}

type notesMsg struct {
	markup string
}

type alertMsg struct {
	message string
}

// presenterClosedMsg is delivered once the presenter stops forwarding.
type presenterClosedMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
