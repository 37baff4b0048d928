package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/notes-board/internal/adapter"
	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/handler"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/service"
	"github.com/MKhiriev/notes-board/internal/store"
	"github.com/MKhiriev/notes-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// startTestServer runs the full backend over a temporary SQLite database and
// returns its address.
func startTestServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnect(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "board.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	services := service.NewServices(store.NewStorages(db, logger.Nop()), config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "notes-board-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second, FeedMaxLimit: 100}
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- srv.(*server).serve(runCtx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(15 * time.Second):
			t.Error("server did not shut down")
		}
		_ = db.Close()
	})

	return ln.Addr().String()
}

func newClient(t *testing.T, addr string) *adapter.BoardClient {
	t.Helper()
	c, err := adapter.NewBoardClient(config.ClientAdapter{HTTPAddress: addr, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func waitNote(t *testing.T, ch <-chan models.Note) models.Note {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for feed note")
		return models.Note{}
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestServer_AccountsFlow(t *testing.T) {
	addr := startTestServer(t)
	ctx := context.Background()
	ann := newClient(t, addr)

	require.NoError(t, ann.SignUp(ctx, "ann@example.com", "secret"))
	assert.ErrorIs(t, ann.SignUp(ctx, "ann@example.com", "other"), adapter.ErrConflict)

	assert.ErrorIs(t, ann.SignIn(ctx, "ann@example.com", "wrong"), adapter.ErrUnauthorized)
	assert.ErrorIs(t, ann.SignIn(ctx, "nobody@example.com", "secret"), adapter.ErrUnauthorized)
	assert.Nil(t, ann.Identity())

	require.NoError(t, ann.SignIn(ctx, "ann@example.com", "secret"))
	identity := ann.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, models.ProviderPassword, identity.Provider)
	assert.Equal(t, "ann@example.com", identity.Email)
	assert.NotEmpty(t, identity.UID)

	version, err := ann.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version.Version)

	require.NoError(t, ann.SignOut(ctx))
	assert.Nil(t, ann.Identity())
	assert.ErrorIs(t, ann.Append(ctx, models.Note{Text: "late"}), adapter.ErrNotSignedIn)
}

func TestServer_FeedBacklogAndLiveNotes(t *testing.T) {
	addr := startTestServer(t)
	ctx := context.Background()

	ann := newClient(t, addr)
	require.NoError(t, ann.SignUp(ctx, "ann@example.com", "secret"))
	require.NoError(t, ann.SignIn(ctx, "ann@example.com", "secret"))

	for _, text := range []string{"A", "B", "C"} {
		require.NoError(t, ann.Append(ctx, models.Note{Text: text}))
	}

	reader := newClient(t, addr)
	feedCtx, cancelFeed := context.WithCancel(ctx)
	defer cancelFeed()

	notes := make(chan models.Note, 16)
	reader.SubscribeRecent(feedCtx, 2, func(n models.Note) { notes <- n })

	b := waitNote(t, notes)
	c := waitNote(t, notes)
	assert.Equal(t, "B", b.Text)
	assert.Equal(t, "C", c.Text)
	assert.Less(t, b.Key, c.Key)
	assert.Equal(t, "ann@example.com", c.Author)
	assert.Equal(t, ann.Identity().UID, c.UID)

	require.NoError(t, ann.Append(ctx, models.Note{UID: "forged", Author: "mallory", Text: "D"}))
	d := waitNote(t, notes)
	assert.Equal(t, "D", d.Text)
	assert.Equal(t, "ann@example.com", d.Author)
	assert.Greater(t, d.Key, c.Key)
}
