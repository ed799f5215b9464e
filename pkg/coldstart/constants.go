package coldstart

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (unexpected args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConnectionError = 11 // Failed to connect to database
	ExitExecutionFailed = 13 // SQL execution failed and the transaction rolled back
	ExitCSVMissing      = 14 // coldstart.csv not found or unreadable
)

const (
	// TableName is the coldstart table every operation targets.
	TableName = "feed_coldstart"

	// CSVFileName is the fixed source file the load command reads,
	// resolved relative to the working directory.
	CSVFileName = "coldstart.csv"
)

// Connection defaults applied when the corresponding DATABASE_* environment
// variable is unset. Values surface unvalidated; a malformed port only fails
// once a connection is attempted.
const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = "5432"
	DefaultDatabase = "apen"
	DefaultUsername = "postgres"
)
