// Package rename derives new file names from summaries and applies them
// without ever overwriting existing files.
package rename

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrTargetExists means the destination already exists; the rename is
	// skipped, never forced.
	ErrTargetExists = errors.New("target file already exists")

	// ErrSourceMissing means there was nothing to rename.
	ErrSourceMissing = errors.New("source file not found")
)

var (
	dateISORe     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dateCompactRe = regexp.MustCompile(`\d{8}`)
	forbiddenRe   = regexp.MustCompile(`[\\/*?:"<>|\r\n]`)
)

// DateFrom extracts a recording date from a file base name. It accepts
// YYYY-MM-DD or YYYYMMDD anywhere in the name and falls back to now.
func DateFrom(base string, now time.Time) string {
	if m := dateISORe.FindString(base); m != "" {
		return m
	}
	if m := dateCompactRe.FindString(base); m != "" {
		return fmt.Sprintf("%s-%s-%s", m[:4], m[4:6], m[6:])
	}
	return now.Format("2006-01-02")
}

// Sanitize strips characters that are unsafe in file names and joins
// words with underscores.
func Sanitize(s string) string {
	s = forbiddenRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "_")
	return strings.Trim(s, "._ ")
}

// Safe renames src to dst, refusing to clobber dst. Renaming a file onto
// itself is a no-op.
func Safe(src, dst string) error {
	if src == dst {
		return nil
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("%w: %s", ErrSourceMissing, src)
	}
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, dst)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", src, dst, err)
	}
	return nil
}
