package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode = 0o644
	configDirMode  = 0o755
)

// ErrExists is returned by Write when the file is already present.
var ErrExists = errors.New("config file already exists")

type fileSchema struct {
	Report reportSchema `toml:"report"`
	Chart  chartSchema  `toml:"chart"`
}

type reportSchema struct {
	Window     string `toml:"window"`
	OtherLabel string `toml:"other_label"`
}

type chartSchema struct {
	Title      string  `toml:"title"`
	HourUnit   string  `toml:"hour_unit"`
	StartAngle float64 `toml:"start_angle"`
	Radius     int     `toml:"radius"`
	ExportDir  string  `toml:"export_dir"`
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Report: reportSchema{
			Window:     c.Window.String(),
			OtherLabel: c.OtherLabel,
		},
		Chart: chartSchema{
			Title:      c.Title,
			HourUnit:   c.HourUnit,
			StartAngle: c.StartAngle,
			Radius:     c.Radius,
			ExportDir:  c.ExportDir,
		},
	}
}

// Encode renders c as TOML.
func Encode(c Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(c))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Write stores c at path. Existing files are kept unless force is set.
func Write(path string, c Config, force bool) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
