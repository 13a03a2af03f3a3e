package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/1siamBot/herofx-assets/engine/launcher"
)

func (a *app) imagegenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "imagegen [args...]",
		Short: "Run the image generation skill script with the given arguments",
		Long: "Resolve image_gen.py from <root>/.agents/skills/imagegen/scripts, then " +
			"~/.codex/skills/imagegen/scripts, and run it with every argument passed through.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			root, err := filepath.Abs(cfg.Root)
			if err != nil {
				return err
			}
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			d := &launcher.Delegate{
				Interpreter: cfg.Interpreter,
				Candidates:  launcher.Candidates(root, home),
				Stdin:       cmd.InOrStdin(),
				Stdout:      a.out,
				Stderr:      a.err,
			}
			code, err := d.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if code != 0 {
				return exitCode(code)
			}
			return nil
		},
	}
}
