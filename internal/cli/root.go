// Package cli wires the coldstart subcommands. Commands take no arguments
// and no connection flags: configuration is environment-only, matching the
// rest of the feed tooling.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/A-pen-app/coldstart/internal/config"
	"github.com/A-pen-app/coldstart/internal/db"
	"github.com/A-pen-app/coldstart/internal/logging"
	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

var rootCmd = &cobra.Command{
	Use:   "coldstart",
	Short: "feed_coldstart table utilities",
	Long: `coldstart manages the feed_coldstart table that seeds the feed with an
initial ranked list of items before personalization data exists.

Configuration is environment-only (a .env file in the working directory is
honored):

  DATABASE_HOST      (default 127.0.0.1)
  DATABASE_PORT      (default 5432)
  DATABASE_NAME      (default apen)
  DATABASE_USERNAME  (default postgres)
  DATABASE_PASSWORD  (default empty)

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (unexpected arguments or flags)
  3  - Panic or unexpected system error
  11 - Database connection failed
  13 - SQL execution failed
  14 - coldstart.csv not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// newLogger builds the command logger from the persistent verbose flag.
func newLogger(cmd *cobra.Command) coldstart.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		verbose = false
	}
	return logging.NewConsoleLogger(verbose)
}

// connect loads .env (best effort), resolves the connection descriptor from
// the environment, and opens the single database connection a command uses.
func connect(ctx context.Context, log coldstart.Logger) (*pgx.Conn, error) {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log.Verbose("Connecting to %s, database %q, user %q", cfg.Addr(), cfg.Database, cfg.Username)

	return db.Connect(ctx, cfg)
}
