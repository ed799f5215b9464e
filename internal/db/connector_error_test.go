package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/A-pen-app/coldstart/internal/config"
	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

func TestWrapConnectionError(t *testing.T) {
	tests := []struct {
		name         string
		errMsg       string
		cfg          config.Config
		wantContains string
	}{
		{
			name:         "connection refused",
			errMsg:       "dial tcp 127.0.0.1:5432: connection refused",
			cfg:          config.Config{Host: "127.0.0.1", Port: "5432", Database: "apen"},
			wantContains: "connection refused to 127.0.0.1:5432",
		},
		{
			name:         "actively refused (Windows)",
			errMsg:       "dial tcp 127.0.0.1:5432: connectex: No connection could be made because the target machine actively refused it",
			cfg:          config.Config{Host: "127.0.0.1", Port: "5432", Database: "apen"},
			wantContains: "connection refused to 127.0.0.1:5432",
		},
		{
			name:         "no such host",
			errMsg:       "dial tcp: lookup badhost.example.com: no such host",
			cfg:          config.Config{Host: "badhost.example.com", Port: "5432", Database: "apen"},
			wantContains: `cannot resolve host "badhost.example.com"`,
		},
		{
			name:         "password auth failed",
			errMsg:       `password authentication failed for user "postgres"`,
			cfg:          config.Config{Host: "localhost", Port: "5432", Database: "apen"},
			wantContains: `password authentication failed for database "apen"`,
		},
		{
			name:         "database does not exist",
			errMsg:       `database "nope" does not exist`,
			cfg:          config.Config{Host: "localhost", Port: "5432", Database: "nope"},
			wantContains: `database "nope" does not exist`,
		},
		{
			name:         "timeout",
			errMsg:       "dial tcp 10.0.0.1:5432: i/o timeout",
			cfg:          config.Config{Host: "10.0.0.1", Port: "5432", Database: "apen"},
			wantContains: "connection timed out to 10.0.0.1:5432",
		},
		{
			name:         "unclassified",
			errMsg:       "something unexpected",
			cfg:          config.Config{Host: "localhost", Port: "5432", Database: "apen"},
			wantContains: "something unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapConnectionError(errors.New(tt.errMsg), &tt.cfg)

			if !strings.Contains(wrapped.Error(), tt.wantContains) {
				t.Errorf("wrapConnectionError() = %q, want substring %q", wrapped.Error(), tt.wantContains)
			}
			if !errors.Is(wrapped, coldstart.ErrConnectionFailed) {
				t.Errorf("wrapConnectionError() should wrap ErrConnectionFailed, got %v", wrapped)
			}
		})
	}
}
