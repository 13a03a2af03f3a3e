package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/1siamBot/herofx-assets/engine/catalog"
	"github.com/1siamBot/herofx-assets/engine/pipeline"
)

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the runtime tree against its manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			m, err := catalog.ReadManifest(filepath.Join(cfg.Runtime, pipeline.ManifestFile))
			if err != nil {
				return err
			}
			if err := catalog.Verify(cfg.Runtime, m); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d assets verified in %s\n", len(m.Assets), cfg.Runtime)
			return nil
		},
	}
}
