package tui

import "github.com/MKhiriev/notes-board/internal/board"

// Controller receives the user's commands. *board.Session implements it.
type Controller interface {
	PostNote(form board.Form)
	LoginUser(form board.Form)
	LogoutUser()
	SignUpUser(form board.Form)
}
