// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// helper-market backend. It is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Backend holds the connection settings of the hosted backend that owns
	// identity, document collections and file buckets.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage selects and configures the marketplace data and file stores.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate-limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Guard lists the route prefixes checked by the session-cookie guard.
	Guard Guard `envPrefix:"GUARD_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// PublicOrigin is the externally visible origin (scheme://host[:port])
	// used to build links sent by e-mail. When empty the origin of the
	// incoming request is used.
	// Env: APP_PUBLIC_ORIGIN
	PublicOrigin string `env:"PUBLIC_ORIGIN"`

	// LogLevel is the minimal zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// CookieSecure marks the session cookie as Secure.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// Backend describes the hosted backend project.
type Backend struct {
	// Endpoint is the REST API root, e.g. "https://cloud.appwrite.io/v1".
	// Env: BACKEND_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// ProjectID identifies the project; it also names the session cookie.
	// Env: BACKEND_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// APIKey is the server key used for privileged calls (session secrets,
	// label updates). Must be kept confidential.
	// Env: BACKEND_API_KEY
	APIKey string `env:"API_KEY"`

	// DatabaseID is the document database holding marketplace collections.
	// Env: BACKEND_DATABASE_ID
	DatabaseID string `env:"DATABASE_ID"`

	// JobsCollectionID is the collection of job postings.
	// Env: BACKEND_JOBS_COLLECTION_ID
	JobsCollectionID string `env:"JOBS_COLLECTION_ID"`

	// ReviewsCollectionID is the collection of worker reviews.
	// Env: BACKEND_REVIEWS_COLLECTION_ID
	ReviewsCollectionID string `env:"REVIEWS_COLLECTION_ID"`

	// BucketID is the file bucket for photos.
	// Env: BACKEND_BUCKET_ID
	BucketID string `env:"BUCKET_ID"`

	// RequestTimeout bounds every outbound backend request.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the marketplace stores.
type Storage struct {
	// Driver selects the job posting and review store:
	// "backend", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files selects and configures the photo storage.
type Files struct {
	// Driver is "backend" or "s3".
	// Env: STORAGE_FILES_DRIVER
	Driver string `env:"DRIVER"`

	// S3 is used when Driver is "s3".
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds S3-compatible object storage settings.
type S3 struct {
	Region       string        `env:"REGION"`
	BaseEndpoint string        `env:"BASE_ENDPOINT"`
	AccessKey    string        `env:"ACCESS_KEY"`
	SecretKey    string        `env:"SECRET_KEY"`
	Bucket       string        `env:"BUCKET"`
	PresignTTL   time.Duration `env:"PRESIGN_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS and RateLimitBurst bound auth form posts per client IP.
	// Env: SERVER_RATE_LIMIT_RPS, SERVER_RATE_LIMIT_BURST
	RateLimitRPS   int `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`

	// TrustedProxies lists the peers (IPs or CIDRs) whose X-Forwarded-For,
	// X-Real-IP and True-Client-IP headers are believed. Headers from any
	// other peer are ignored.
	// Env: SERVER_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Guard lists the path prefixes evaluated by the session-cookie guard.
type Guard struct {
	// ProtectedPrefixes require a session cookie.
	// Env: GUARD_PROTECTED (comma separated)
	ProtectedPrefixes []string `env:"PROTECTED" envSeparator:","`

	// AuthOnlyPrefixes are hidden from users that already have a session.
	// Env: GUARD_AUTH_ONLY (comma separated)
	AuthOnlyPrefixes []string `env:"AUTH_ONLY" envSeparator:","`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ExpiryInterval is how often expired job postings are closed.
	// Env: WORKERS_EXPIRY_INTERVAL
	ExpiryInterval time.Duration `env:"EXPIRY_INTERVAL"`
}

// Storage drivers.
const (
	DriverBackend  = "backend"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverS3       = "s3"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "debug",
		},
		Backend: Backend{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Driver: DriverBackend,
			Files: Files{
				Driver: DriverBackend,
				S3:     S3{PresignTTL: 15 * time.Minute},
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimitRPS:   5,
			RateLimitBurst: 10,
		},
		Guard: Guard{
			ProtectedPrefixes: []string{"/dashboard"},
			AuthOnlyPrefixes:  []string{"/login", "/signup"},
		},
		Workers: Workers{
			ExpiryInterval: time.Hour,
		},
	}
}
