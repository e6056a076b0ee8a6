// Package config centralizes the application configuration. Values come
// from environment variables, with a .env file loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every configurable value the application uses.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Content  ContentConfig
	// SecretKey signs the flash cookie used by the form pages.
	SecretKey string
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string // SQLite file path, e.g. ./data/zta.db
}

// ContentConfig holds the content-source settings.
type ContentConfig struct {
	EventsFile string // optional JSON events file; defaults apply if absent
	StaticDir  string // root of the /static/ file tree (gallery images live under images/)
}

// Load builds a Config from environment variables. A .env file, when
// present, is loaded first; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/zta.db"),
		},
		Content: ContentConfig{
			EventsFile: getEnv("EVENTS_FILE", "./data/events.json"),
			StaticDir:  getEnv("STATIC_DIR", "./static"),
		},
		// Unlike a credential, the secret only signs the one-shot flash
		// cookie, so shipping a default keeps first runs working.
		SecretKey: getEnv("SECRET_KEY", "zta-secret-key"),
	}

	return cfg, nil
}

// Addr returns the address the HTTP server listens on, e.g. "0.0.0.0:8080".
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv reads an environment variable, falling back when unset.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
