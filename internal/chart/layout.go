// Package chart draws a report dataset as a pie, either on the terminal or
// into a PDF page.
package chart

import (
	"math"

	"github.com/faizmokh/jam/internal/ledger"
)

const (
	// DefaultTitle heads every chart.
	DefaultTitle = "Tasks completed over 24 hours"
	// DefaultStartAngle is where the first wedge begins, in degrees
	// counter-clockwise from the positive x axis.
	DefaultStartAngle = 140.0
	// DefaultRadius is the terminal disc radius in rows.
	DefaultRadius = 8
)

// Options controls how a chart is drawn.
type Options struct {
	Title      string
	HourUnit   string
	StartAngle float64
	Radius     int
}

// DefaultOptions returns the stock chart settings.
func DefaultOptions() Options {
	return Options{
		Title:      DefaultTitle,
		HourUnit:   ledger.DefaultHourUnit,
		StartAngle: DefaultStartAngle,
		Radius:     DefaultRadius,
	}
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.HourUnit == "" {
		o.HourUnit = ledger.DefaultHourUnit
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	return o
}

// Wedge is one slice of the pie in drawing terms.
type Wedge struct {
	Label     string
	Synthetic bool
	Fraction  float64
	// From and To are cumulative fractions of the full turn.
	From, To float64
	// StartDeg and EndDeg are absolute angles, counter-clockwise.
	StartDeg, EndDeg float64
	Percent          float64
	Hours            float64
}

// MidDeg is the bisecting angle of the wedge.
func (w Wedge) MidDeg() float64 {
	return (w.StartDeg + w.EndDeg) / 2
}

// Layout turns a report into wedges. Fractions are taken against the
// dataset's own total, matching the percentage labels.
func Layout(report ledger.Report, startAngle float64) []Wedge {
	total := report.Total().Seconds()
	wedges := make([]Wedge, 0, len(report.Slices))
	cumulative := 0.0
	for i, slice := range report.Slices {
		fraction := 0.0
		if total > 0 {
			fraction = slice.Duration.Seconds() / total
		}
		w := Wedge{
			Label:     slice.Label,
			Synthetic: slice.Synthetic,
			Fraction:  fraction,
			From:      cumulative,
			To:        cumulative + fraction,
			StartDeg:  startAngle + cumulative*360,
			EndDeg:    startAngle + (cumulative+fraction)*360,
			Percent:   report.Percent(i),
			Hours:     report.Hours(i),
		}
		cumulative += fraction
		wedges = append(wedges, w)
	}
	return wedges
}

// wedgeAt finds the wedge covering the absolute angle deg, or -1.
func wedgeAt(wedges []Wedge, startAngle, deg float64) int {
	rel := math.Mod(deg-startAngle, 360)
	if rel < 0 {
		rel += 360
	}
	pos := rel / 360
	for i, w := range wedges {
		if w.Fraction > 0 && pos >= w.From && pos < w.To {
			return i
		}
	}
	// Rounding can leave the last sliver of the turn uncovered.
	for i := len(wedges) - 1; i >= 0; i-- {
		if wedges[i].Fraction > 0 {
			return i
		}
	}
	return -1
}

func polar(cx, cy, radius, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + radius*math.Cos(rad), cy - radius*math.Sin(rad)
}
