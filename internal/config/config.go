// Package config loads jam's presentation settings from config.toml and
// JAM_* environment variables. Tracked time is never stored here.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/faizmokh/jam/internal/chart"
	"github.com/faizmokh/jam/internal/ledger"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "JAM"

	windowKey     = "report.window"
	otherLabelKey = "report.other_label"
	titleKey      = "chart.title"
	hourUnitKey   = "chart.hour_unit"
	startAngleKey = "chart.start_angle"
	radiusKey     = "chart.radius"
	exportDirKey  = "chart.export_dir"

	minRadius = 2
	maxRadius = 40
)

// ErrInvalid marks a setting that parsed but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config is the resolved set of settings.
type Config struct {
	Window     time.Duration
	OtherLabel string
	Title      string
	HourUnit   string
	StartAngle float64
	Radius     int
	ExportDir  string
}

// Default mirrors the values used when no file or env override exists.
func Default() Config {
	return Config{
		Window:     ledger.DefaultWindow,
		OtherLabel: ledger.DefaultOtherLabel,
		Title:      chart.DefaultTitle,
		HourUnit:   ledger.DefaultHourUnit,
		StartAngle: chart.DefaultStartAngle,
		Radius:     chart.DefaultRadius,
	}
}

// Load reads config.toml from dir. A missing file is not an error.
func Load(cfg *viper.Viper, dir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	def := Default()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if dir != "" {
		cfg.AddConfigPath(dir)
	}
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(windowKey, def.Window.String())
	cfg.SetDefault(otherLabelKey, def.OtherLabel)
	cfg.SetDefault(titleKey, def.Title)
	cfg.SetDefault(hourUnitKey, def.HourUnit)
	cfg.SetDefault(startAngleKey, def.StartAngle)
	cfg.SetDefault(radiusKey, def.Radius)
	cfg.SetDefault(exportDirKey, "")

	if dir != "" {
		if err := cfg.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	window, err := time.ParseDuration(strings.TrimSpace(cfg.GetString(windowKey)))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, windowKey, err)
	}

	out := Config{
		Window:     window,
		OtherLabel: strings.TrimSpace(cfg.GetString(otherLabelKey)),
		Title:      strings.TrimSpace(cfg.GetString(titleKey)),
		HourUnit:   strings.TrimSpace(cfg.GetString(hourUnitKey)),
		StartAngle: cfg.GetFloat64(startAngleKey),
		Radius:     cfg.GetInt(radiusKey),
		ExportDir:  strings.TrimSpace(cfg.GetString(exportDirKey)),
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

// Validate rejects settings the ledger or chart cannot honour.
func (c Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, windowKey, c.Window)
	}
	if c.OtherLabel == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, otherLabelKey)
	}
	if c.Radius < minRadius || c.Radius > maxRadius {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalid, radiusKey, minRadius, maxRadius, c.Radius)
	}
	return nil
}

// LedgerOptions returns the ledger settings carried by c.
func (c Config) LedgerOptions() []ledger.Option {
	return []ledger.Option{
		ledger.WithWindow(c.Window),
		ledger.WithOtherLabel(c.OtherLabel),
	}
}

// ChartOptions returns the chart settings carried by c.
func (c Config) ChartOptions() chart.Options {
	return chart.Options{
		Title:      c.Title,
		HourUnit:   c.HourUnit,
		StartAngle: c.StartAngle,
		Radius:     c.Radius,
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configName+"."+configType)
}
