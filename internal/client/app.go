package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/notes-board/internal/adapter"
	"github.com/MKhiriev/notes-board/internal/board"
	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/render"
	"github.com/MKhiriev/notes-board/internal/tui"
	"github.com/MKhiriev/notes-board/models"
)

// App is the terminal board client: one board session shown through the TUI.
type App struct {
	session   *board.Session
	presenter *tui.Presenter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewApp connects the board session to the backend adapter, the Mustache
// renderer and a fresh TUI presenter.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	boardClient, err := adapter.NewBoardClient(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("error creating board client: %w", err)
	}

	template, err := render.LoadTemplate(cfg.Board.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("error loading notes template: %w", err)
	}

	presenter := tui.NewPresenter()
	session := board.NewSession(boardClient, boardClient, presenter, render.NewMustacheRenderer(), board.Options{
		Template:    template,
		RecentLimit: cfg.Board.RecentLimit,
	}, log)

	return &App{
		session:   session,
		presenter: presenter,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the board until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx, func(ctx context.Context) error {
		return tui.Run(ctx, a.session, a.presenter, a.buildInfo)
	})
}

// run starts the session, blocks in ui and then stops the session loop and
// waits for outstanding backend calls.
func (a *App) run(ctx context.Context, ui func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.Start(ctx)

	loopDone := make(chan error, 1)
	go func() { loopDone <- a.session.Run(ctx) }()

	uiErr := ui(ctx)
	a.presenter.Close()
	cancel()

	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Msg("board loop stopped")
	}
	a.session.Wait()

	a.logger.Info().Msg("board client stopped")

	if uiErr != nil {
		return fmt.Errorf("error running ui: %w", uiErr)
	}
	return nil
}
