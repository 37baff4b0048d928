// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// notes-board application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings of the backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeouts and feed limits of the backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend location as seen by the terminal client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Board holds settings of the client-side board session.
	Board Board `envPrefix:"BOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new accounts.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" URLs open
	// PostgreSQL, anything else is treated as a SQLite file DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FeedMaxLimit caps the backlog size a feed subscriber may ask for.
	// Env: SERVER_FEED_MAX_LIMIT
	FeedMaxLimit int `env:"FEED_MAX_LIMIT"`
}

// Adapter holds the location of the backend for the client SDK.
type Adapter struct {
	// HTTPAddress is the backend base address, either "host:port" or a
	// full "http://host:port" URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Board holds settings of the client board session.
type Board struct {
	// RecentLimit is the size of the recent-notes window.
	// Env: BOARD_RECENT_LIMIT
	RecentLimit int `env:"RECENT_LIMIT"`

	// TemplatePath optionally replaces the embedded notes template.
	// Env: BOARD_TEMPLATE_PATH
	TemplatePath string `env:"TEMPLATE_PATH"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
