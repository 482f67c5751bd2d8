// Package csvfile writes datasets to a local CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"salesgen/internal/core"
	"salesgen/internal/export"
)

// Writer serializes datasets to a single CSV file. Every run recreates the
// file, so stale rows from a previous run never survive.
type Writer struct {
	path string
}

var _ export.DatasetWriter = (*Writer)(nil)

func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteDataset writes the header followed by one row per record, in
// dataset order.
func (w *Writer) WriteDataset(_ context.Context, ds core.Dataset) (string, error) {
	if err := ds.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(w.path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(export.Header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, r := range ds.Records {
		if err := cw.Write(export.RecordRow(r)); err != nil {
			return "", fmt.Errorf("write record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", w.path, err)
	}
	return w.path, nil
}
