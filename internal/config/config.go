// Package config resolves the database connection descriptor from the
// process environment, mirroring the DATABASE_* convention used across the
// feed services.
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

// Config holds the connection descriptor for the feed database.
//
// Port is kept as the raw string from the environment. No validation happens
// here; a malformed value only surfaces once a connection is attempted.
type Config struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

// FromEnv builds a Config from the DATABASE_* environment variables,
// applying the fixed defaults for any that are unset:
//
//	DATABASE_HOST      127.0.0.1
//	DATABASE_PORT      5432
//	DATABASE_NAME      apen
//	DATABASE_USERNAME  postgres
//	DATABASE_PASSWORD  (empty)
func FromEnv() *Config {
	return &Config{
		Host:     getenv("DATABASE_HOST", coldstart.DefaultHost),
		Port:     getenv("DATABASE_PORT", coldstart.DefaultPort),
		Database: getenv("DATABASE_NAME", coldstart.DefaultDatabase),
		Username: getenv("DATABASE_USERNAME", coldstart.DefaultUsername),
		Password: os.Getenv("DATABASE_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnString renders the config as a PostgreSQL connection URI.
// Credentials are URL-escaped, so passwords may contain any character.
func (c *Config) ConnString() string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   "/" + c.Database,
	}

	if c.Username != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.Username, c.Password)
		} else {
			u.User = url.User(c.Username)
		}
	}

	return u.String()
}

// Addr returns the host:port pair for error messages.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
