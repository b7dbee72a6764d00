package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// ErrEmptyReport is returned for a report with no text.
var ErrEmptyReport = errors.New("bug report is empty")

// BugReport is one saved report.
type BugReport struct {
	Created     time.Time `json:"created"`
	Description string    `json:"description"`
}

// BugReporter saves bug reports as YAML files in a directory, to be sent
// with the next sync.
type BugReporter struct {
	dir string
	now func() time.Time
}

// NewBugReporter saves reports under dir.
func NewBugReporter(dir string) *BugReporter {
	return &BugReporter{dir: dir, now: time.Now}
}

// DefaultBugReportDir is where reports are kept unless configured.
func DefaultBugReportDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "bloop", "bug-reports"), nil
}

// Report writes description to a new file and returns its path.
func (r *BugReporter) Report(ctx context.Context, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyReport
	}

	report := BugReport{Created: r.now().UTC(), Description: description}
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode bug report: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create bug report dir: %w", err)
	}
	path := filepath.Join(r.dir, "bug-"+report.Created.Format("20060102-150405.000000000")+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write bug report: %w", err)
	}
	return path, nil
}
