package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1siamBot/herofx-assets/engine/config"
	"github.com/1siamBot/herofx-assets/engine/pipeline"
	"github.com/1siamBot/herofx-assets/engine/rng"
	"github.com/1siamBot/herofx-assets/engine/sources"
)

var generateFlags = []flagKey{
	{config.KeySeed, "seed"},
	{config.KeyDownscale, "downscale"},
	{config.KeyQuality, "quality"},
	{config.KeyForce, "force"},
	{config.KeyOffline, "offline"},
	{config.KeySynthetic, "synthetic"},
	{config.KeyUserAgent, "user-agent"},
	{config.KeyModelSource, "model-source"},
}

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Acquire sources and build every runtime asset",
		Long: "Acquire the source catalog (download, reuse on disk with --offline, or write " +
			"stand-ins with --synthetic), then run every generator in order and write the " +
			"runtime tree, its mirror, SOURCES.md and manifest.json.",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bindFlags(cmd, generateFlags...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			src, err := a.acquire(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cmd.Context(), cfg, src, a.log)
			if err != nil {
				return err
			}
			a.log.Debug("generation complete", "runtime", cfg.Runtime, "written", len(res.Written))
			fmt.Fprintf(a.out, "Curated free/open hero-transition assets downloaded and generated (%d files).\n", len(res.Written))
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64("seed", rng.DefaultSeed, "Seed for every randomized generator")
	f.Int("downscale", 1, "Divide every declared size and blur radius for previews")
	f.Int("quality", 0, "Lossy WebP quality for every asset (0 keeps each asset's own)")
	f.Bool("force", false, "Re-download sources that already exist")
	f.Bool("offline", false, "Use the sources already in the downloads directory")
	f.Int("synthetic", 0, "Write stand-in sources of this size instead of downloading")
	f.String("user-agent", sources.DefaultUserAgent, "User-Agent header for downloads")
	f.String("model-source", "", "Bundled tunnel model (default <root>/"+config.ModelFile+")")
	return cmd
}

func (a *app) acquire(ctx context.Context, cfg config.Config) (*sources.Catalog, error) {
	switch {
	case cfg.Synthetic > 0:
		a.log.Info("writing synthetic sources", "dir", cfg.Downloads, "size", cfg.Synthetic)
		return sources.WriteSynthetic(cfg.Downloads, sources.Default, cfg.Synthetic)
	case cfg.Offline:
		return sources.Open(cfg.Downloads, sources.Default)
	default:
		return a.fetch(ctx, cfg)
	}
}
