package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClientConfig(address, templatePath string) *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: address, RequestTimeout: time.Second},
		Board:   config.ClientBoard{RecentLimit: 5, TemplatePath: templatePath},
	}
}

func TestNewApp(t *testing.T) {
	t.Run("default template", func(t *testing.T) {
		app, err := NewApp(testClientConfig("localhost:8080", ""), models.NewAppBuildInfo("", "", ""), logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, app.session)
		assert.NotNil(t, app.presenter)
	})

	t.Run("template file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.mustache")
		require.NoError(t, os.WriteFile(path, []byte("{{#notes}}{{text}}{{/notes}}"), 0o600))

		_, err := NewApp(testClientConfig("localhost:8080", path), models.AppBuildInfo{}, logger.Nop())
		require.NoError(t, err)
	})

	t.Run("missing template file", func(t *testing.T) {
		_, err := NewApp(testClientConfig("localhost:8080", filepath.Join(t.TempDir(), "nope")), models.AppBuildInfo{}, logger.Nop())
		require.Error(t, err)
	})
}

func TestApp_run(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	t.Run("ui exits cleanly", func(t *testing.T) {
		app, err := NewApp(testClientConfig(backend.URL, ""), models.AppBuildInfo{}, logger.Nop())
		require.NoError(t, err)

		var uiCtx context.Context
		err = app.run(context.Background(), func(ctx context.Context) error {
			uiCtx = ctx
			return nil
		})
		require.NoError(t, err)

		// the session context is released once the ui returns
		select {
		case <-uiCtx.Done():
		case <-time.After(time.Second):
			require.Fail(t, "session context not cancelled")
		}
	})

	t.Run("ui error is returned", func(t *testing.T) {
		app, err := NewApp(testClientConfig(backend.URL, ""), models.AppBuildInfo{}, logger.Nop())
		require.NoError(t, err)

		uiErr := errors.New("terminal gone")
		err = app.run(context.Background(), func(context.Context) error { return uiErr })
		require.ErrorIs(t, err, uiErr)
	})
}
