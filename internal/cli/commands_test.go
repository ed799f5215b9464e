package cli

import (
	"testing"

	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"erase":   false,
		"load":    false,
		"list":    false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestOperationCommands_RejectArgs(t *testing.T) {
	// Operations take no arguments: the CSV path and all connection
	// parameters come from the environment.
	for _, cmd := range []struct {
		name string
		args func(*testing.T) error
	}{
		{"erase", func(t *testing.T) error { return eraseCmd.Args(eraseCmd, []string{"extra"}) }},
		{"load", func(t *testing.T) error { return loadCmd.Args(loadCmd, []string{"other.csv"}) }},
		{"list", func(t *testing.T) error { return listCmd.Args(listCmd, []string{"extra"}) }},
	} {
		t.Run(cmd.name, func(t *testing.T) {
			err := cmd.args(t)
			if err == nil {
				t.Fatal("Expected error for unexpected args")
			}
			if got := coldstart.ExitCodeForError(err); got != coldstart.ExitUsageError {
				t.Errorf("Expected exit code %d (usage), got %d for: %v",
					coldstart.ExitUsageError, got, err)
			}
		})
	}
}

func TestRunErase_UnreachableDatabase(t *testing.T) {
	t.Setenv("DATABASE_HOST", "127.0.0.1")
	t.Setenv("DATABASE_PORT", "1") // nothing listens here

	err := runErase(eraseCmd, nil)
	if err == nil {
		t.Fatal("Expected connection error")
	}
	if got := coldstart.ExitCodeForError(err); got != coldstart.ExitConnectionError {
		t.Errorf("Expected exit code %d (connection), got %d for: %v",
			coldstart.ExitConnectionError, got, err)
	}
}

func TestRunLoad_UnreachableDatabase(t *testing.T) {
	// Connection is attempted before the CSV is touched: no CSV in the
	// working directory must not change the reported failure.
	t.Setenv("DATABASE_HOST", "127.0.0.1")
	t.Setenv("DATABASE_PORT", "1")

	err := runLoad(loadCmd, nil)
	if err == nil {
		t.Fatal("Expected connection error")
	}
	if got := coldstart.ExitCodeForError(err); got != coldstart.ExitConnectionError {
		t.Errorf("Expected exit code %d (connection), got %d for: %v",
			coldstart.ExitConnectionError, got, err)
	}
}

func TestVerboseFlagRegistered(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Fatal("persistent --verbose flag not registered")
	}
}
