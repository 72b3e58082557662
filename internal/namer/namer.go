// Package namer derives deterministic output file paths for batch
// synthesis runs.
package namer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName formats one output filename from a prefix and a 1-based
// sequence index. The index is zero-padded to a minimum of 3 digits;
// larger values are never truncated.
func FileName(prefix string, index int) string {
	return fmt.Sprintf("%s_%03d.wav", prefix, index)
}

// OutputPath returns the output path for one line, creating dir (and
// any missing parents) if it does not exist. Identical inputs always
// yield identical paths.
func OutputPath(prefix string, index int, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return filepath.Join(dir, FileName(prefix, index)), nil
}
