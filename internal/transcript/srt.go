package transcript

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Timestamp formats seconds as an SRT timestamp, e.g. "01:02:03,450".
// Rounding happens at the millisecond so values like 3723.999 don't lose
// a millisecond to float truncation.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Round(seconds * 1000))
	h := total / 3600000
	m := (total % 3600000) / 60000
	s := (total % 60000) / 1000
	ms := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// RenderSRT produces SRT subtitle content from transcript lines.
func RenderSRT(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%d\n%s --> %s\nSpeaker %s: %s\n\n",
			i+1, Timestamp(l.Start), Timestamp(l.End), l.Speaker, l.Text)
	}
	return b.String()
}

// WriteSRT writes the subtitle file for the given lines.
func WriteSRT(lines []Line, path string) error {
	if err := os.WriteFile(path, []byte(RenderSRT(lines)), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
