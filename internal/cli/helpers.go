package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/faizmokh/jam/internal/config"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
)

type taskPair struct {
	name     string
	duration time.Duration
}

func loadConfig(manager *files.Manager) (config.Config, error) {
	cfg, err := config.Load(viper.New(), manager.BasePath())
	if err != nil {
		return config.Config{}, err
	}
	if err := manager.SetReportDir(cfg.ExportDir); err != nil {
		return config.Config{}, fmt.Errorf("resolve export dir: %w", err)
	}
	return cfg, nil
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseTaskPairs reads NAME=DURATION values. The last '=' splits, so names
// may contain one.
func parseTaskPairs(values []string) ([]taskPair, error) {
	pairs := make([]taskPair, 0, len(values))
	for _, value := range values {
		idx := strings.LastIndex(value, "=")
		if idx < 0 {
			return nil, fmt.Errorf("invalid task %q (expected NAME=DURATION)", value)
		}

		name, err := ledger.NormalizeName(value[:idx])
		if err != nil {
			return nil, fmt.Errorf("invalid task %q: %w", value, err)
		}

		d, err := time.ParseDuration(strings.TrimSpace(value[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("parse duration for %q: %w", name, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("duration for %q must not be negative", name)
		}

		pairs = append(pairs, taskPair{name: name, duration: d})
	}
	return pairs, nil
}

// replay drives one start/stop cycle per pair on a manual clock.
func replay(l *ledger.Ledger, clock *ledger.ManualClock, pairs []taskPair) error {
	for _, p := range pairs {
		if _, err := l.Start(p.name); err != nil {
			return fmt.Errorf("start %q: %w", p.name, err)
		}
		clock.Advance(p.duration)
		if _, err := l.Stop(p.name); err != nil {
			return fmt.Errorf("stop %q: %w", p.name, err)
		}
	}
	return nil
}

type sliceDTO struct {
	Label     string  `json:"label"`
	Seconds   float64 `json:"seconds"`
	Percent   float64 `json:"percent"`
	Hours     float64 `json:"hours"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

func printReportJSON(w io.Writer, report ledger.Report) error {
	list := make([]sliceDTO, 0, len(report.Slices))
	for i, s := range report.Slices {
		list = append(list, sliceDTO{
			Label:     s.Label,
			Seconds:   s.Duration.Seconds(),
			Percent:   report.Percent(i),
			Hours:     report.Hours(i),
			Synthetic: s.Synthetic,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// fitRadius shrinks the disc so title, disc and legend fit the terminal.
// Non-terminal writers keep the configured radius.
func fitRadius(cmd *cobra.Command, radius, legendRows int) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return radius
	}
	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return radius
	}

	// title + margin, legend margin, prompt line
	available := (height - legendRows - 4 - 1) / 2
	if available < 2 {
		return radius
	}
	if available < radius {
		return available
	}
	return radius
}
