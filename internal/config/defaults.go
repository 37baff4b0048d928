package config

import "time"

// Built-in values used when no source sets a field.
const (
	DefaultServerAddress    = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenDuration    = 24 * time.Hour
	DefaultTokenIssuer      = "notes-board"
	DefaultPasswordHashCost = 10
	DefaultFeedMaxLimit     = 100
	DefaultRecentLimit      = 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			FeedMaxLimit:   DefaultFeedMaxLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Board: Board{
			RecentLimit: DefaultRecentLimit,
		},
	}
}
