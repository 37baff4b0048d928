// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiJ1MSJ9.signature"

func newTestClient(t *testing.T, serverURL string) *BoardClient {
	t.Helper()
	c, err := NewBoardClient(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

// identityRecorder collects auth-state notifications.
type identityRecorder struct {
	mu   sync.Mutex
	seen []*models.Identity
}

func (r *identityRecorder) listen(identity *models.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, identity)
}

func (r *identityRecorder) all() []*models.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Identity(nil), r.seen...)
}

func loginServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ann@example.com", creds.Email)

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("invalid credentials"))
			return
		}

		w.Header().Set("Authorization", "Bearer "+testToken)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Identity{Provider: models.ProviderPassword, UID: "u1", Email: creds.Email})
	}))
}

// ── NewBoardClient ──────────────────────────────────────────────────────────

func TestNewBoardClient_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "ftp://host", "http://"} {
		_, err := NewBoardClient(config.ClientAdapter{HTTPAddress: addr}, logger.Nop())
		assert.Error(t, err, "address %q", addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: " https://board.example.com ", want: "https://board.example.com"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	srv := loginServer(t, http.StatusOK)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rec := &identityRecorder{}
	c.OnAuthStateChanged(rec.listen)

	err := c.SignIn(context.Background(), "ann@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, testToken, c.Token())
	want := &models.Identity{Provider: models.ProviderPassword, UID: "u1", Email: "ann@example.com"}
	assert.Equal(t, want, c.Identity())
	assert.Equal(t, []*models.Identity{nil, want}, rec.all())
}

func TestSignIn_Unauthorized(t *testing.T) {
	srv := loginServer(t, http.StatusUnauthorized)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rec := &identityRecorder{}
	c.OnAuthStateChanged(rec.listen)

	err := c.SignIn(context.Background(), "ann@example.com", "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())
	assert.Nil(t, c.Identity())
	assert.Len(t, rec.all(), 1, "only the registration call")
}

func TestSignIn_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uid":"u1","email":"ann@example.com","provider":"password"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SignIn(context.Background(), "ann@example.com", "secret")

	assert.Error(t, err)
	assert.Nil(t, c.Identity())
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp_CreatedDoesNotSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uid":"u1","email":"new@example.com","provider":"password"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rec := &identityRecorder{}
	c.OnAuthStateChanged(rec.listen)

	err := c.SignUp(context.Background(), "new@example.com", "pw")

	require.NoError(t, err)
	assert.Empty(t, c.Token())
	assert.Len(t, rec.all(), 1)
}

func TestSignUp_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already exists"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SignUp(context.Background(), "taken@example.com", "pw")

	assert.ErrorIs(t, err, ErrConflict)
}

// ── SignOut ─────────────────────────────────────────────────────────────────

func TestSignOut_ClearsStateAndNotifies(t *testing.T) {
	logoutAuth := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Authorization", "Bearer "+testToken)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"uid":"u1","email":"ann@example.com","provider":"password"}`))
		case "/api/auth/logout":
			logoutAuth <- r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.SignIn(context.Background(), "ann@example.com", "secret"))
	rec := &identityRecorder{}
	c.OnAuthStateChanged(rec.listen)

	err := c.SignOut(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer "+testToken, <-logoutAuth)
	assert.Empty(t, c.Token())
	seen := rec.all()
	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0])
	assert.Nil(t, seen[1])
}

func TestSignOut_ServerErrorStillClearsLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.Header().Set("Authorization", "Bearer "+testToken)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"uid":"u1","email":"ann@example.com","provider":"password"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.SignIn(context.Background(), "ann@example.com", "secret"))

	err := c.SignOut(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, c.Token())
	assert.Nil(t, c.Identity())
}

func TestSignOut_Anonymous(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")

	assert.NoError(t, c.SignOut(context.Background()))
}

// ── Append ──────────────────────────────────────────────────────────────────

func TestAppend_SendsTextWithBearer(t *testing.T) {
	type received struct {
		auth string
		body models.NewNoteRequest
	}
	recv := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes", r.URL.Path)
		var body models.NewNoteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		recv <- received{auth: r.Header.Get("Authorization"), body: body}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAuthState(testToken, &models.Identity{Provider: models.ProviderPassword, UID: "u1"})

	err := c.Append(context.Background(), models.Note{UID: "u1", Author: "ann@example.com", Text: "hello"})

	require.NoError(t, err)
	got := <-recv
	assert.Equal(t, "Bearer "+testToken, got.auth)
	assert.Equal(t, "hello", got.body.Text)
}

func TestAppend_NotSignedIn(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")

	err := c.Append(context.Background(), models.Note{Text: "hello"})

	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestAppend_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setAuthState("expired", &models.Identity{UID: "u1"})

	err := c.Append(context.Background(), models.Note{Text: "hello"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.0.0","date":"N/A","commit":"abc"}`))
	}))
	defer srv.Close()

	v, err := newTestClient(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"}, v)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestClient(t, srv.URL).SignUp(context.Background(), "a@b.c", "pw")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).SignUp(context.Background(), "a@b.c", "pw")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestAuthState_OverlappingTransitionsReachListenersInOrder(t *testing.T) {
	c := newTestClient(t, "http://localhost:8080")
	rec := &identityRecorder{}

	entered := make(chan struct{})
	release := make(chan struct{})
	var gateOnce sync.Once
	c.OnAuthStateChanged(func(identity *models.Identity) {
		// hold back the sign-in notification until sign-out has started
		if identity != nil {
			gateOnce.Do(func() {
				close(entered)
				<-release
			})
		}
		rec.listen(identity)
	})

	signedIn := make(chan struct{})
	go func() {
		defer close(signedIn)
		c.setAuthState(testToken, &models.Identity{Provider: models.ProviderPassword, UID: "u1"})
	}()
	<-entered

	signedOut := make(chan struct{})
	go func() {
		defer close(signedOut)
		c.setAuthState("", nil)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	for _, done := range []chan struct{}{signedIn, signedOut} {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			require.Fail(t, "auth state change did not finish")
		}
	}

	seen := rec.all()
	require.Len(t, seen, 3)
	assert.Nil(t, seen[0])
	assert.Equal(t, "u1", seen[1].UID)
	assert.Nil(t, seen[2], "last notification must match the final state")
	assert.Nil(t, c.Identity())
	assert.Empty(t, c.Token())
}

func TestOnAuthStateChanged_RegistrationSeesCurrentState(t *testing.T) {
	c := newTestClient(t, "http://localhost:8080")
	c.setAuthState(testToken, &models.Identity{Provider: models.ProviderPassword, UID: "u1"})

	rec := &identityRecorder{}
	c.OnAuthStateChanged(rec.listen)
	c.setAuthState("", nil)

	seen := rec.all()
	require.Len(t, seen, 2)
	assert.Equal(t, "u1", seen[0].UID)
	assert.Nil(t, seen[1])
}
