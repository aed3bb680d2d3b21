package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions = 0o755

	configFileName = "config.toml"
	debugFileName  = "debug.log"
	reportsDirName = "reports"
)

// Manager centralizes where jam's files live on disk and how exported
// charts are named. Tracked time itself is never written here.
type Manager struct {
	basePath  string
	reportDir string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.jam (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{
		basePath:  abs,
		reportDir: filepath.Join(abs, reportsDirName),
	}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath is the location of config.toml.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// DebugLogPath is where the TUI writes its log when debugging is enabled.
func (m *Manager) DebugLogPath() string {
	return filepath.Join(m.basePath, debugFileName)
}

// ReportDir returns the directory exported charts are written under.
func (m *Manager) ReportDir() string {
	return m.reportDir
}

// SetReportDir points exports at dir. Relative paths resolve against the base path.
func (m *Manager) SetReportDir(dir string) error {
	if dir == "" {
		m.reportDir = filepath.Join(m.basePath, reportsDirName)
		return nil
	}
	dir, err := NormalizePath(dir)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.basePath, dir)
	}
	m.reportDir = filepath.Clean(dir)
	return nil
}

// ReportPath resolves the PDF path for a chart exported at t.
// The file may not exist yet.
func (m *Manager) ReportPath(t time.Time) string {
	yearDir := filepath.Join(m.reportDir, fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, t.Format("2006-01-02-150405")+".pdf")
}

// EnsureReportPath creates the directory for ReportPath(t) and returns the path.
func (m *Manager) EnsureReportPath(t time.Time) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.ReportPath(t)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	return path, nil
}

// EnsureBase creates the base directory.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}
