package ui

import (
	"errors"
	"fmt"

	"github.com/faizmokh/jam/internal/ledger"
)

const (
	msgEmptyName = "Enter a task name."
	msgNoData    = "No completed tasks."
)

// Describe turns a ledger failure into the sentence shown to the user.
func Describe(err error, name string) string {
	switch {
	case errors.Is(err, ledger.ErrEmptyName):
		return msgEmptyName
	case errors.Is(err, ledger.ErrAlreadyRunning):
		return fmt.Sprintf("Task '%s' is already running.", name)
	case errors.Is(err, ledger.ErrNotRunning):
		return fmt.Sprintf("Task '%s' was not started.", name)
	case errors.Is(err, ledger.ErrNoData):
		return msgNoData
	default:
		return err.Error()
	}
}

func startedMessage(name string) string {
	return fmt.Sprintf("Task '%s' started.", name)
}

func stoppedMessage(name string, elapsedSeconds float64) string {
	return fmt.Sprintf("Task '%s' stopped. Elapsed: %.2f seconds.", name, elapsedSeconds)
}
