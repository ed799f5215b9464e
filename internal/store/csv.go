package store

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

// readEntries folds fn over the data rows of a coldstart CSV stream, one row
// at a time, so memory use stays constant for arbitrarily large files.
//
// The first line is discarded unconditionally as a header; an empty stream is
// an error. Each following line is enumerated from zero and that index
// becomes the entry's position. Blank lines and lines whose first field trims
// to empty are skipped without calling fn, but the index is still consumed,
// so positions may be non-contiguous. Every entry handed to fn carries
// FeedType "post".
//
// Returns the number of entries fn was called with. On error the count of
// entries processed so far is returned alongside it.
func readEntries(r io.Reader, fn func(coldstart.Entry) error) (int, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("read csv header: %w", err)
		}
		return 0, errors.New("read csv header: file is empty")
	}

	count := 0
	for position := 0; scanner.Scan(); position++ {
		line := scanner.Text()

		// A blank line still consumes a position index.
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Lines are parsed individually so that blank lines keep their
		// index; encoding/csv over the whole stream would drop them.
		record, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			return count, fmt.Errorf("parse csv row at index %d: %w", position, err)
		}

		feedID := strings.TrimSpace(record[0])
		if feedID == "" {
			continue
		}

		err = fn(coldstart.Entry{
			FeedID:   feedID,
			FeedType: coldstart.TypePost,
			Position: position,
		})
		if err != nil {
			return count, err
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read csv: %w", err)
	}

	return count, nil
}
