package ledger

import "errors"

// ErrEmptyName is returned when a task name is blank after trimming.
var ErrEmptyName = errors.New("task name is empty")

// ErrAlreadyRunning indicates the task was started and not yet stopped.
var ErrAlreadyRunning = errors.New("task already running")

// ErrNotRunning indicates a stop for a task that was never started.
var ErrNotRunning = errors.New("task not running")

// ErrNoData is returned by Report when no task has been stopped yet.
var ErrNoData = errors.New("no completed tasks")
