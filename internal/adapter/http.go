package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/utils"
	"github.com/MKhiriev/notes-board/models"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
)

// BoardClient is the HTTP and websocket client of the notes-board backend.
type BoardClient struct {
	client  *resty.Client
	baseURL string
	dialer  *websocket.Dialer

	mu        sync.Mutex
	token     string
	identity  *models.Identity
	listeners []func(*models.Identity)

	// notifyMu is held across a state change and its listener calls, so
	// listeners see transitions in the order they happened. Listeners must
	// not change the auth state themselves.
	notifyMu sync.Mutex

	logger *logger.Logger
}

// NewBoardClient constructs a [BoardClient]. It normalises and validates the
// base URL from adapterCfg.HTTPAddress and configures the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewBoardClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (*BoardClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = adapterCfg.RequestTimeout

	return &BoardClient{
		client:  client,
		baseURL: baseURL,
		dialer:  &dialer,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Token returns the bearer token of the signed-in account, or "".
func (c *BoardClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Identity returns a copy of the signed-in identity, or nil.
func (c *BoardClient) Identity() *models.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyIdentity(c.identity)
}

// SignUp creates an account with POST /api/auth/signup. It does not sign in.
func (c *BoardClient) SignUp(ctx context.Context, email, password string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.Credentials{Email: email, Password: password}).
		Post("/api/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// SignIn authenticates with POST /api/auth/login. On success the bearer token
// from the Authorization header is stored and every auth-state listener is
// notified with the new identity.
func (c *BoardClient) SignIn(ctx context.Context, email, password string) error {
	var identity models.Identity

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.Credentials{Email: email, Password: password}).
		SetResult(&identity).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	c.setAuthState(token, &identity)
	return nil
}

// SignOut drops the local token and identity, notifies listeners and tells
// the backend. The local state is cleared even when the request fails.
func (c *BoardClient) SignOut(ctx context.Context) error {
	token := c.Token()
	c.setAuthState("", nil)

	if token == "" {
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// OnAuthStateChanged registers listener and calls it at once with the current
// identity. Listeners are called from the goroutine that changed the state,
// one transition at a time.
func (c *BoardClient) OnAuthStateChanged(listener func(*models.Identity)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.listeners = append(c.listeners, listener)
	current := copyIdentity(c.identity)
	c.mu.Unlock()

	listener(current)
}

func (c *BoardClient) setAuthState(token string, identity *models.Identity) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.token = token
	c.identity = copyIdentity(identity)
	listeners := make([]func(*models.Identity), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(copyIdentity(identity))
	}
}

// Append posts a note with POST /api/notes. The backend takes the author
// from the bearer token, so only the text is sent.
func (c *BoardClient) Append(ctx context.Context, note models.Note) error {
	token := c.Token()
	if token == "" {
		return ErrNotSignedIn
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.NewNoteRequest{Text: note.Text}).
		Post("/api/notes")
	if err != nil {
		return fmt.Errorf("append note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version fetches the backend build info.
func (c *BoardClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func copyIdentity(identity *models.Identity) *models.Identity {
	if identity == nil {
		return nil
	}
	cp := *identity
	return &cp
}
