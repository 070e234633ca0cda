package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recap/internal/pipeline"
)

// renameDateSentinel marks a bare --rename with no value: the prefix is
// then a date extracted from the original file name.
const renameDateSentinel = "\x00date"

// pipelineFlags are the per-run flags shared by process, batch and watch.
type pipelineFlags struct {
	lang     string
	force    bool
	noRefine bool
	summary  bool
	docx     bool
	rename   string
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.lang, "lang", "auto", "transcription language: en, zh or auto")
	cmd.Flags().BoolVar(&f.force, "force", false, "regenerate outputs even if they exist")
	cmd.Flags().BoolVar(&f.noRefine, "no-refine", false, "skip the LLM transcript cleanup pass")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "generate a long-form summary")
	cmd.Flags().BoolVar(&f.docx, "docx", false, "export summary and transcript as a .docx")
	cmd.Flags().StringVar(&f.rename, "rename", "", "rename files from the summary; optional value replaces the date prefix")
	cmd.Flags().Lookup("rename").NoOptDefVal = renameDateSentinel
}

func (f *pipelineFlags) options() (pipeline.Options, error) {
	switch f.lang {
	case "en", "zh", "auto":
	default:
		return pipeline.Options{}, fmt.Errorf("unsupported --lang %q (want en, zh or auto)", f.lang)
	}

	opts := pipeline.Options{
		Language: f.lang,
		Force:    f.force,
		NoRefine: f.noRefine,
		Summary:  f.summary,
		Docx:     f.docx,
	}
	if f.rename != "" {
		opts.Rename = true
		if f.rename != renameDateSentinel {
			opts.RenamePrefix = f.rename
		}
	}
	return opts, nil
}
