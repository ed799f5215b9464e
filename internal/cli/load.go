package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-pen-app/coldstart/internal/store"
	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load coldstart.csv into feed_coldstart",
	Long: `Load streams coldstart.csv from the working directory into the
feed_coldstart table in a single transaction.

The first row is discarded as a header. Every following non-blank row is
inserted as (feed_id, "post", position), where position is the row's
zero-based index in the file. Rows whose feed_id already exists are skipped
silently; existing entries are never overwritten.

The reported count is the number of attempted inserts, including rows skipped
because their feed_id already existed. On any failure the whole file is
rolled back.

Example:
  coldstart load`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	log := newLogger(cmd)

	conn, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	loaded, err := store.New(conn, log).Load(ctx, coldstart.CSVFileName)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d records into feed_coldstart\n", loaded)
	return nil
}
