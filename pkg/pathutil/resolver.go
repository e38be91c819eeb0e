// Package pathutil provides centralized path management for generated
// voucher documents.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver derives the file locations of the summary document and the
// optional per-voucher documents from the configured output path.
type Resolver struct {
	summaryPath string
}

// New creates a Resolver for the given summary output path.
func New(outputPath string) *Resolver {
	return &Resolver{summaryPath: outputPath}
}

// SummaryPath returns the path of the multi-voucher summary document.
func (r *Resolver) SummaryPath() string {
	return r.summaryPath
}

// SingleDir returns the directory receiving one document per voucher.
// It sits next to the summary document.
// Example: output/vouchers.pdf -> output/single
func (r *Resolver) SingleDir() string {
	return filepath.Join(filepath.Dir(r.summaryPath), "single")
}

// SinglePath returns the per-voucher document path for a voucher number.
// Example: output/single/voucher_001.pdf
func (r *Resolver) SinglePath(number string) string {
	return filepath.Join(r.SingleDir(), fmt.Sprintf("voucher_%s.pdf", number))
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (r *Resolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (r *Resolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return r.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (r *Resolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
