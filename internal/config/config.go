// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// careersphere application.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the generative API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment parsing.
	// Populated via ENV_FILE or the -env-file flag, defaults to ".env".
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values that control
// session tokens and password hashing.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token
	// and checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used for new password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// Supported database drivers, derived from the DSN scheme.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	DriverMongo    = "mongo"
)

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects the backend by its scheme:
	// postgres:// or postgresql:// for PostgreSQL, mongodb:// or
	// mongodb+srv:// for MongoDB, sqlite:// or file: for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. SQL backends take it from the DSN.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Driver returns the backend driver for the DSN or "" when the scheme
// is not supported.
func (d DB) Driver() string {
	dsn := strings.ToLower(strings.TrimSpace(d.DSN))
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return DriverSQLite
	default:
		return ""
	}
}

// SQLiteDSN strips the sqlite:// scheme so the value can be handed to
// the go-sqlite3 driver. file: URIs are passed through.
func (d DB) SQLiteDSN() string {
	dsn := strings.TrimSpace(d.DSN)
	if len(dsn) >= len("sqlite://") && strings.EqualFold(dsn[:len("sqlite://")], "sqlite://") {
		return dsn[len("sqlite://"):]
	}
	return dsn
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CookieSecure marks the session cookie Secure. Enable behind TLS.
	// Env: SERVER_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// AllowedOrigins enables CORS for the listed origins when non-empty.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds configuration for the Gemini generateContent client.
type Adapter struct {
	// GeminiAPIKey is sent in the x-goog-api-key header.
	// Env: ADAPTER_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the model name used in the request path.
	// Env: ADAPTER_GEMINI_MODEL
	GeminiModel string `env:"GEMINI_MODEL"`

	// GeminiBaseURL is the scheme and host of the API.
	// Env: ADAPTER_GEMINI_BASE_URL
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	// RequestTimeout bounds one outbound call. Zero keeps the client default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. args are the command-line arguments without the program
// name, usually os.Args[1:].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDotEnv().
		withLegacyEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
