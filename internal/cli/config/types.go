// Package config provides configuration management for the pgxcube CLI.
//
// Configuration is layered with koanf. Precedence, highest to lowest:
// flags > PGXCUBE_* environment variables > pgxcube.yaml > defaults.
package config

// DefaultOutput is the default rendering format for commands that produce
// results.
const DefaultOutput = "table"

// Config holds the resolved CLI configuration.
type Config struct {
	// DSN is the PostgreSQL connection string used by commands that talk
	// to a database, in any form pgx accepts (keyword/value or URL).
	DSN string `koanf:"dsn"`

	// Output selects the rendering format: table or json.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
