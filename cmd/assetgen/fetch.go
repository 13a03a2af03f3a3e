package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1siamBot/herofx-assets/engine/config"
	"github.com/1siamBot/herofx-assets/engine/sources"
)

var fetchFlags = []flagKey{
	{config.KeyForce, "force"},
	{config.KeyUserAgent, "user-agent"},
}

func (a *app) fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the source material packs and textures",
		Long:  "Download every ambientCG pack and three.js example texture into the downloads directory. Existing files are kept unless --force is given.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bindFlags(cmd, fetchFlags...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if _, err := a.fetch(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Sources ready in %s\n", cfg.Downloads)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Download files that already exist")
	cmd.Flags().String("user-agent", sources.DefaultUserAgent, "User-Agent header for downloads")
	return cmd
}

func (a *app) fetch(ctx context.Context, cfg config.Config) (*sources.Catalog, error) {
	f := &sources.Fetcher{UserAgent: cfg.UserAgent, Log: a.log}
	return sources.Populate(ctx, cfg.Downloads, sources.Default, f, cfg.Force)
}
