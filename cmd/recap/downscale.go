package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"recap/internal/batch"
	"recap/internal/media"
	"recap/pkg/executor"
)

const bytesPerGiB = 1 << 30

func newDownscaleCommand(app *appOptions) *cobra.Command {
	var outDir string
	var minSizeGiB float64

	cmd := &cobra.Command{
		Use:   "downscale [dir]",
		Short: "Downscale oversized recordings to 480p copies",
		Long: "Re-encodes every .mov/.mp4 above the size threshold to a 480p copy\n" +
			"named <base>_480p.<ext>. Downscaled copies share transcript outputs\n" +
			"with their originals.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if outDir == "" {
				outDir = dir
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			log := app.newLogger(cfg, nil)
			conv := media.New(cfg.FFmpeg, executor.New(), log)

			files, err := batch.Discover(dir)
			if err != nil {
				return err
			}

			threshold := int64(minSizeGiB * bytesPerGiB)
			ctx := cmd.Context()

			for _, file := range files {
				if strings.HasSuffix(strings.TrimSuffix(file, filepath.Ext(file)), "_480p") {
					continue
				}

				info, err := os.Stat(file)
				if err != nil {
					log.Warn(ctx, "Skipping %s: %v", file, err)
					continue
				}
				if info.Size() <= threshold {
					continue
				}

				ext := filepath.Ext(file)
				base := strings.TrimSuffix(filepath.Base(file), ext)
				outPath := filepath.Join(outDir, base+"_480p"+ext)
				if fileExists(outPath) {
					log.Info(ctx, "Skipping (already exists): %s", outPath)
					continue
				}

				if err := conv.Downscale480p(ctx, file, outPath); err != nil {
					log.Error(ctx, "Downscale failed for %s: %v", file, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: same as input)")
	cmd.Flags().Float64Var(&minSizeGiB, "min-size", 3, "only downscale files larger than this many GiB")
	return cmd
}
