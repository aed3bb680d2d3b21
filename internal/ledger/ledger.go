package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Ledger tracks running tasks and the time accumulated by stopped ones.
// It is not safe for concurrent use; the TUI drives it from a single loop.
type Ledger struct {
	clock      Clock
	window     time.Duration
	otherLabel string

	running map[string]time.Time
	totals  map[string]time.Duration
	order   []string
}

// Option customizes a Ledger at construction.
type Option func(*Ledger)

// WithClock swaps the time source.
func WithClock(clock Clock) Option {
	return func(l *Ledger) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// WithWindow sets the reference period for reports. Non-positive values are ignored.
func WithWindow(window time.Duration) Option {
	return func(l *Ledger) {
		if window > 0 {
			l.window = window
		}
	}
}

// WithOtherLabel renames the synthetic slice.
func WithOtherLabel(label string) Option {
	return func(l *Ledger) {
		if label = strings.TrimSpace(label); label != "" {
			l.otherLabel = label
		}
	}
}

// New constructs an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		clock:      SystemClock{},
		window:     DefaultWindow,
		otherLabel: DefaultOtherLabel,
		running:    make(map[string]time.Time),
		totals:     make(map[string]time.Duration),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NormalizeName trims raw input into a task key.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Start records the current instant for name.
func (l *Ledger) Start(name string) (time.Time, error) {
	if name == "" {
		return time.Time{}, ErrEmptyName
	}
	if _, ok := l.running[name]; ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrAlreadyRunning, name)
	}

	now := l.clock.Now()
	l.running[name] = now
	return now, nil
}

// Stop ends the running task and adds its elapsed time to the total. The
// returned duration covers this stop only.
func (l *Ledger) Stop(name string) (time.Duration, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	startedAt, ok := l.running[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotRunning, name)
	}

	// Not clamped: a clock that moves backwards yields a negative elapsed.
	elapsed := l.clock.Now().Sub(startedAt)
	delete(l.running, name)

	if _, seen := l.totals[name]; !seen {
		l.order = append(l.order, name)
	}
	l.totals[name] += elapsed
	return elapsed, nil
}

// Report builds the dataset for the chart renderers.
func (l *Ledger) Report() (Report, error) {
	if len(l.order) == 0 {
		return Report{}, ErrNoData
	}

	slices := l.Totals()
	var sum time.Duration
	for _, s := range slices {
		sum += s.Duration
	}

	// Tracked time beyond the window simply drops the Other slice.
	if other := l.window - sum; other > 0 {
		slices = append(slices, Slice{Label: l.otherLabel, Duration: other, Synthetic: true})
	}

	return Report{Window: l.window, Slices: slices}, nil
}

// Totals returns the accumulated time per task in first-stop order.
func (l *Ledger) Totals() []Slice {
	slices := make([]Slice, 0, len(l.order)+1)
	for _, name := range l.order {
		slices = append(slices, Slice{Label: name, Duration: l.totals[name]})
	}
	return slices
}

// Total reports the accumulated time for name.
func (l *Ledger) Total(name string) (time.Duration, bool) {
	total, ok := l.totals[name]
	return total, ok
}

// IsRunning reports whether name has been started and not stopped.
func (l *Ledger) IsRunning(name string) bool {
	_, ok := l.running[name]
	return ok
}

// Running lists active tasks ordered by start instant, then name.
func (l *Ledger) Running() []RunningTask {
	now := l.clock.Now()
	tasks := make([]RunningTask, 0, len(l.running))
	for name, startedAt := range l.running {
		tasks = append(tasks, RunningTask{
			Name:      name,
			StartedAt: startedAt,
			Elapsed:   now.Sub(startedAt),
		})
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].Name < tasks[j].Name
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// Window returns the reference period used by Report.
func (l *Ledger) Window() time.Duration {
	return l.window
}
