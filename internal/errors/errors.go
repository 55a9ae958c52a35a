// Package errors formats errors at the command boundary. Commands return
// plain wrapped errors; this package decides how they read on stderr and
// attaches a next-step hint for the sentinels a user can act on.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/capture"
	"github.com/revisit-app/revisit/internal/keyring"
	"github.com/revisit-app/revisit/internal/logger"
)

// Format renders an error with the "Error: " prefix used across the CLI.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Hint returns a one-line next step for errors the user can resolve
// themselves, or "" when there is nothing actionable to add.
func Hint(err error) string {
	switch {
	case stderrors.Is(err, app.ErrProfileLocked):
		return "Run 'revisit pro activate <license>' to unlock the work profile."
	case stderrors.Is(err, keyring.ErrKeyringUnavailable):
		return "No OS keyring was found. Install a keyring service (for example gnome-keyring) and retry."
	case stderrors.Is(err, capture.ErrCameraPermission):
		return "Pass a readable jpg or png file as the photo source."
	default:
		return ""
	}
}

// Fatal logs the error, prints it (with a hint when one applies) and exits 1.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(os.Stderr, "%s\n", hint)
	}
	os.Exit(1)
}
