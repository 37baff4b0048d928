package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/service"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every non-streaming request.
	requestTimeout time.Duration
	// feedMaxLimit caps the backlog a feed subscriber may request.
	feedMaxLimit int

	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxLimit := cfg.FeedMaxLimit
	if maxLimit <= 0 {
		maxLimit = config.DefaultFeedMaxLimit
	}

	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		feedMaxLimit:   maxLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the terminal client sends no Origin header
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}
