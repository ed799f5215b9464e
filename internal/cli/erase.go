package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-pen-app/coldstart/internal/store"
)

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Delete all rows from feed_coldstart",
	Long: `Erase deletes every row from the feed_coldstart table in a single
transaction and reports the number of rows removed.

On any failure the transaction is rolled back and nothing is deleted.

Example:
  coldstart erase`,
	Args: cobra.NoArgs,
	RunE: runErase,
}

func init() {
	rootCmd.AddCommand(eraseCmd)
}

func runErase(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	log := newLogger(cmd)

	conn, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	deleted, err := store.New(conn, log).Erase(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d records from feed_coldstart\n", deleted)
	return nil
}
