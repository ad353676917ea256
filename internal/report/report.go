// Package report writes the run's artifacts. A failed write is fatal to the
// run: producing these files is the whole point of the tool.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"schemasync/internal/models"
)

var timestampReplacer = strings.NewReplacer(":", "-", ".", "-")

// Timestamp renders t as ISO-8601 UTC with filename-safe separators,
// e.g. 2026-08-30T14-03-07Z.
func Timestamp(t time.Time) string {
	return timestampReplacer.Replace(t.UTC().Format(time.RFC3339))
}

// Writer places all artifacts of one run in Dir, sharing one timestamp so
// the files of a run sort together.
type Writer struct {
	Dir   string
	Stamp string
}

func NewWriter(dir string, now time.Time) *Writer {
	return &Writer{Dir: dir, Stamp: Timestamp(now)}
}

// WriteEnvironment dumps one environment's probe report,
// e.g. development-schema-2026-08-30T14-03-07Z.json.
func (w *Writer) WriteEnvironment(report models.EnvironmentReport) (string, error) {
	name := fmt.Sprintf("%s-schema-%s.json", report.Environment, w.Stamp)
	return w.writeJSON(name, report)
}

// WriteComparison dumps the full comparison report.
func (w *Writer) WriteComparison(report models.ComparisonReport) (string, error) {
	name := fmt.Sprintf("schema-comparison-%s.json", w.Stamp)
	return w.writeJSON(name, report)
}

// WriteSyncScript writes the generated SQL text.
func (w *Writer) WriteSyncScript(script string) (string, error) {
	path := filepath.Join(w.Dir, fmt.Sprintf("sync-dev-to-prod-%s.sql", w.Stamp))
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return "", fmt.Errorf("writing sync script: %w", err)
	}
	return path, nil
}

func (w *Writer) writeJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}
