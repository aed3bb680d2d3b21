package ledger

import (
	"fmt"
	"time"
)

// DefaultWindow is the reference period a report is measured against.
const DefaultWindow = 24 * time.Hour

// DefaultOtherLabel names the synthetic slice for untracked time.
const DefaultOtherLabel = "Other"

// DefaultHourUnit is the suffix used in slice labels.
const DefaultHourUnit = "ч"

// RunningTask describes a task between its start and its stop.
type RunningTask struct {
	Name      string
	StartedAt time.Time
	Elapsed   time.Duration
}

// Slice is one (label, duration) pair of a report dataset.
type Slice struct {
	Label     string
	Duration  time.Duration
	Synthetic bool
}

// Report is the ordered dataset handed to chart renderers.
type Report struct {
	Window time.Duration
	Slices []Slice
}

// Total sums every slice in the dataset, including the synthetic one.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Slices {
		total += s.Duration
	}
	return total
}

// Tracked sums only the slices that belong to real tasks.
func (r Report) Tracked() time.Duration {
	var total time.Duration
	for _, s := range r.Slices {
		if !s.Synthetic {
			total += s.Duration
		}
	}
	return total
}

// Percent returns slice i as a share of the dataset's own total. The
// denominator equals the window only when an Other slice was appended.
func (r Report) Percent(i int) float64 {
	total := r.Total()
	if total <= 0 || i < 0 || i >= len(r.Slices) {
		return 0
	}
	return r.Slices[i].Duration.Seconds() / total.Seconds() * 100
}

// Hours derives slice i's absolute hours from its percentage of the dataset.
func (r Report) Hours(i int) float64 {
	return r.Percent(i) / 100 * r.Total().Seconds() / 3600
}

// Label renders the percentage and hour annotation for slice i.
func (r Report) Label(i int, unit string) string {
	return FormatLabel(r.Percent(i), r.Hours(i), unit)
}

// FormatLabel produces "12.5%\n(3.0 ч)".
func FormatLabel(pct, hours float64, unit string) string {
	if unit == "" {
		unit = DefaultHourUnit
	}
	return fmt.Sprintf("%.1f%%\n(%.1f %s)", pct, hours, unit)
}
