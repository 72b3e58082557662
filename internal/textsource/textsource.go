// Package textsource produces the ordered sequence of text units to
// synthesize, either from a literal string or from a file line by line.
package textsource

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FromLiteral returns a single-unit sequence containing s verbatim.
func FromLiteral(s string) []string {
	return []string{s}
}

// FromFile reads path as text and returns its non-blank lines, trimmed
// of surrounding whitespace, in file order. Blank lines are dropped;
// downstream indexing is the position in the returned slice, starting
// at 1, not the original file line number.
//
// A missing file wraps fs.ErrNotExist. An existing file with only blank
// lines yields an empty slice, not an error.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("text file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("error reading text file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading text file %s: %w", path, err)
	}

	return lines, nil
}
