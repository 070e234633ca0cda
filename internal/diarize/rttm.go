package diarize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseRTTM parses SPEAKER records from RTTM text, e.g.
//
//	SPEAKER rec 1 3.168 4.812 <NA> <NA> SPEAKER_00 <NA> <NA>
//
// Records are returned ordered by onset. Non-SPEAKER lines are ignored;
// a malformed SPEAKER record is an error.
func ParseRTTM(text string) ([]Turn, error) {
	var turns []Turn

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] != "SPEAKER" {
			continue
		}
		if len(fields) < 8 {
			return nil, fmt.Errorf("rttm line %d: expected at least 8 fields, got %d", i+1, len(fields))
		}

		onset, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad onset %q", i+1, fields[3])
		}
		dur, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad duration %q", i+1, fields[4])
		}
		if dur < 0 {
			return nil, fmt.Errorf("rttm line %d: negative duration", i+1)
		}

		turns = append(turns, Turn{
			Speaker: speakerLabel(fields[7]),
			Start:   onset,
			End:     onset + dur,
		})
	}

	sort.SliceStable(turns, func(i, j int) bool { return turns[i].Start < turns[j].Start })
	return turns, nil
}

// speakerLabel shortens pyannote-style names: SPEAKER_00 -> 00.
func speakerLabel(name string) string {
	if i := strings.LastIndex(name, "_"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}
