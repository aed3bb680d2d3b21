// Package logging routes the standard logger away from the terminal the TUI
// draws on.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnv enables the debug log when set to a non-empty value.
const DebugEnv = "JAM_DEBUG"

// Setup sends log output to path when JAM_DEBUG is set and discards it
// otherwise. The returned closer is always safe to call.
func Setup(path string) (io.Closer, error) {
	if strings.TrimSpace(os.Getenv(DebugEnv)) == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := tea.LogToFile(path, "jam")
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
