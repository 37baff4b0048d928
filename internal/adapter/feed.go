package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/notes-board/models"
	"github.com/gorilla/websocket"
)

// SubscribeRecent opens the notes feed and delivers the limit most recent
// notes oldest first, then every new note, until ctx is cancelled or the
// connection drops. It returns immediately; delivery happens on a background
// goroutine.
func (c *BoardClient) SubscribeRecent(ctx context.Context, limit int, listener func(models.Note)) {
	go func() {
		if err := c.consumeFeed(ctx, limit, listener); err != nil && ctx.Err() == nil {
			c.logger.Err(err).Msg("notes feed stopped")
		}
	}()
}

func (c *BoardClient) consumeFeed(ctx context.Context, limit int, listener func(models.Note)) error {
	feedURL, err := c.feedURL(limit)
	if err != nil {
		return err
	}

	conn, _, err := c.dialer.DialContext(ctx, feedURL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial feed: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c.logger.Debug().Str("url", feedURL).Msg("notes feed connected")

	for {
		var note models.Note
		if err = conn.ReadJSON(&note); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read feed: %w", err)
		}

		listener(note)
	}
}

func (c *BoardClient) feedURL(limit int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u = u.JoinPath("api", "notes", "feed")
	u.RawQuery = url.Values{"limit": {strconv.Itoa(limit)}}.Encode()

	return u.String(), nil
}
