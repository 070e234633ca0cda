package pipeline

import (
	"path/filepath"
	"strings"
)

const (
	rawSuffix     = ".speakers.raw_transcript.txt"
	cleanSuffix   = ".speakers.clean_transcript.txt"
	summarySuffix = ".speakers.summary.txt"
	srtSuffix     = ".srt"
	docxSuffix    = ".summary.docx"
)

// Paths holds every output location derived from one input file. Each
// path is a deterministic function of the input name, so output existence
// doubles as the recomputation cache.
type Paths struct {
	Dir  string
	Base string

	RawTranscript   string
	CleanTranscript string
	Summary         string
	SRT             string
	Docx            string
}

// DerivePaths computes output paths next to the input file. A trailing
// "_480p" (from downscaled copies) is stripped so the downscaled and
// original recordings share outputs.
func DerivePaths(inputPath string) Paths {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	base = strings.TrimSuffix(base, "_480p")
	return pathsFor(dir, base)
}

func pathsFor(dir, base string) Paths {
	return Paths{
		Dir:             dir,
		Base:            base,
		RawTranscript:   filepath.Join(dir, base+rawSuffix),
		CleanTranscript: filepath.Join(dir, base+cleanSuffix),
		Summary:         filepath.Join(dir, base+summarySuffix),
		SRT:             filepath.Join(dir, base+srtSuffix),
		Docx:            filepath.Join(dir, base+docxSuffix),
	}
}

// WithBase returns the same output set under a new base name, used when
// renaming outputs after a summary-derived rename.
func (p Paths) WithBase(base string) Paths {
	return pathsFor(p.Dir, base)
}

// Pairs lists (old, new) output path pairs for a rename.
func (p Paths) Pairs(q Paths) [][2]string {
	return [][2]string{
		{p.RawTranscript, q.RawTranscript},
		{p.CleanTranscript, q.CleanTranscript},
		{p.Summary, q.Summary},
		{p.SRT, q.SRT},
		{p.Docx, q.Docx},
	}
}
