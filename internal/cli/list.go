package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-pen-app/coldstart/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print current feed_coldstart entries",
	Long: `List prints the current feed_coldstart entries ordered by position,
one per line as "position<TAB>feed_id<TAB>feed_type".

Example:
  coldstart list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	log := newLogger(cmd)

	conn, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	entries, err := store.New(conn, log).List(ctx)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%d\t%s\t%s\n", e.Position, e.FeedID, e.FeedType)
	}
	log.Verbose("%d entries in feed_coldstart", len(entries))
	return nil
}
