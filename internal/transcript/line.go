package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Line is one speaker-attributed utterance with its time range in seconds.
type Line struct {
	Speaker string
	Start   float64
	End     float64
	Text    string
}

var lineRe = regexp.MustCompile(`^Speaker (\S+): \[(\d+\.\d+)-(\d+\.\d+)\] (.+)$`)

// Format renders the canonical raw-transcript form:
// "Speaker 00: [12.34-56.78] text".
func (l Line) Format() string {
	return fmt.Sprintf("Speaker %s: [%.2f-%.2f] %s", l.Speaker, l.Start, l.End, l.Text)
}

// ParseLine parses one raw-transcript line. Lines that don't match the
// canonical form are reported as not ok rather than as errors, since raw
// transcripts may carry stray text.
func ParseLine(s string) (Line, bool) {
	m := lineRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Line{}, false
	}
	start, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Line{}, false
	}
	end, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Line{}, false
	}
	return Line{Speaker: m[1], Start: start, End: end, Text: m[4]}, true
}

// Parse extracts every well-formed line from a raw transcript.
func Parse(raw string) []Line {
	var lines []Line
	for _, s := range strings.Split(raw, "\n") {
		if l, ok := ParseLine(s); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Join renders lines back into raw-transcript text.
func Join(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Format())
	}
	return strings.Join(parts, "\n")
}
