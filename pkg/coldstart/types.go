package coldstart

// FeedType classifies a feed entry. The loader only ever writes TypePost;
// the remaining values exist because the serving side shares the column.
type FeedType string

const (
	TypePost    FeedType = "post"
	TypeBanners FeedType = "banners"
	TypeChat    FeedType = "chat"
)

func (t FeedType) String() string {
	return string(t)
}

// Entry is one row of the feed_coldstart table. Position is the zero-based
// enumeration index of the source CSV row, not a compacted rank: rows skipped
// for being blank still consume an index, so positions may be non-contiguous.
type Entry struct {
	FeedID   string   `db:"feed_id"`
	FeedType FeedType `db:"feed_type"`
	Position int      `db:"position"`
}

// Logger is the minimal logging contract used across the tool.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// May be a no-op depending on configuration.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
