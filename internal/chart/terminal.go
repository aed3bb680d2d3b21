package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jam/internal/ledger"
)

const cell = "█"

// Render draws the report as a terminal pie followed by a legend.
func Render(report ledger.Report, opts Options) string {
	opts = opts.withDefaults()
	s := newStyles()
	wedges := Layout(report, opts.StartAngle)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render(opts.Title),
		s.disc.Render(renderDisc(wedges, opts, s)),
		s.legend.Render(renderLegend(wedges, opts, s)),
	)
}

// renderDisc rasterizes the pie. Terminal cells are about twice as tall as
// they are wide, so each row spans 4r+1 columns to keep the disc round.
func renderDisc(wedges []Wedge, opts Options, s styles) string {
	r := opts.Radius
	limit := (float64(r) + 0.5) * (float64(r) + 0.5)
	rows := make([]string, 0, 2*r+1)

	for row := -r; row <= r; row++ {
		var b strings.Builder
		current, run := -1, 0
		flush := func() {
			if run == 0 {
				return
			}
			if current < 0 {
				b.WriteString(strings.Repeat(" ", run))
			} else {
				b.WriteString(s.wedge(current).Render(strings.Repeat(cell, run)))
			}
			run = 0
		}

		for col := -2 * r; col <= 2*r; col++ {
			x := float64(col) / 2
			y := float64(-row)
			idx := -1
			if x*x+y*y <= limit {
				deg := math.Atan2(y, x) * 180 / math.Pi
				idx = wedgeAt(wedges, opts.StartAngle, deg)
			}
			if idx != current {
				flush()
				current = idx
			}
			run++
		}
		flush()
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}

	return strings.Join(rows, "\n")
}

func renderLegend(wedges []Wedge, opts Options, s styles) string {
	width := 0
	for _, w := range wedges {
		if n := lipgloss.Width(w.Label); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(wedges))
	for i, w := range wedges {
		label := s.label
		if w.Synthetic {
			label = s.other
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(w.Label))
		annotation := strings.ReplaceAll(ledger.FormatLabel(w.Percent, w.Hours, opts.HourUnit), "\n", " ")
		lines = append(lines, fmt.Sprintf("%s %s%s  %s",
			s.wedge(i).Render(cell+cell),
			label.Render(w.Label),
			pad,
			s.meta.Render(annotation),
		))
	}
	return strings.Join(lines, "\n")
}
