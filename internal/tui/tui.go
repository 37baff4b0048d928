package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/notes-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the board until the user quits or ctx is cancelled. The presenter
// is closed on return. Cancellation of ctx is not reported as an error.
func Run(ctx context.Context, controller Controller, presenter *Presenter, buildInfo models.AppBuildInfo, opts ...tea.ProgramOption) error {
	defer presenter.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(controller, presenter, buildInfo), opts...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err
}
