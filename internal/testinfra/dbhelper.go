package testinfra

import (
	"context"
	"os"
	"sync"
	"testing"
)

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func getOrStartContainer() (string, error) {
	containerOnce.Do(func() {
		container, err := StartPostgres(context.Background())
		if err != nil {
			containerErr = err
			return
		}
		containerConn = container.ConnString
	})
	return containerConn, containerErr
}

// GetTestConnectionString returns the test database connection string.
// Priority: COLDSTART_TEST_CONN env var > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv("COLDSTART_TEST_CONN"); connString != "" {
		return connString
	}

	connString, err := getOrStartContainer()
	if err != nil {
		t.Skipf("COLDSTART_TEST_CONN not set and Docker unavailable: %v", err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString.
// Returns the test connection string if available, otherwise skips the test.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}
