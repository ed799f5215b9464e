// Package db establishes the PostgreSQL connection for the coldstart tool.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/A-pen-app/coldstart/internal/config"
	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

// Connect opens a single connection to the database described by cfg.
//
// There is deliberately no retry: each command performs exactly one unit of
// work and a failed connection is surfaced immediately to the operator.
// The caller owns the connection and must Close it.
func Connect(ctx context.Context, cfg *config.Config) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, cfg.ConnString())
	if err != nil {
		return nil, wrapConnectionError(err, cfg)
	}
	return conn, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable
// guidance and the ErrConnectionFailed sentinel.
func wrapConnectionError(err error, cfg *config.Config) error {
	errStr := strings.ToLower(err.Error())
	addr := cfg.Addr()

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %s)
  - Wrong host or port ($DATABASE_HOST, $DATABASE_PORT)
  - Firewall blocking the connection

Original error: %v`, coldstart.ErrConnectionFailed, addr, cfg.Host, cfg.Port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`%w: cannot resolve host "%s"

Possible causes:
  - $DATABASE_HOST is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %v`, coldstart.ErrConnectionFailed, cfg.Host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $DATABASE_PASSWORD)
  - Wrong username (check $DATABASE_USERNAME)
  - User does not have access to the database

Original error: %v`, coldstart.ErrConnectionFailed, cfg.Database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

To create it:
  createdb %s

Original error: %v`, coldstart.ErrConnectionFailed, cfg.Database, cfg.Database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Wrong host/port (server not listening)

Original error: %v`, coldstart.ErrConnectionFailed, addr, err)

	default:
		return fmt.Errorf("%w: %v", coldstart.ErrConnectionFailed, err)
	}
}
