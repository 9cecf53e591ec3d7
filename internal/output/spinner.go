package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInputTTY reports whether stdin is a terminal.
func IsInputTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunWithSpinner executes action behind a spinner titled title.
// Off a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)

	s := spinner.New().Title(title).Context(ctx)
	spinnerErr := s.Action(func() {
		errCh <- action()
	}).Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
