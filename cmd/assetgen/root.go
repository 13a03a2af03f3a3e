package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/1siamBot/herofx-assets/engine/config"
)

// app carries what every subcommand shares.
type app struct {
	v   *viper.Viper
	log *slog.Logger
	out io.Writer
	err io.Writer
}

type flagKey struct {
	key  string
	flag string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, err: errOut}

	root := &cobra.Command{
		Use:           "assetgen",
		Short:         "Fetch, generate and verify the hero-transition asset set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := a.v.GetString("config"); path != "" {
				a.v.SetConfigFile(path)
			}
			if err := config.ReadFile(a.v); err != nil {
				return err
			}
			a.initLogging()
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default ./assetgen.yaml)")
	pf.String("root", ".", "Project root the default directories hang off")
	pf.String("downloads", "", "Download directory (default <root>/Assets/free-open/downloads)")
	pf.String("generated", "", "Archival mirror directory (default <root>/Assets/free-open/generated)")
	pf.String("runtime", "", "Runtime asset directory (default <root>/src/assets)")
	pf.BoolP("verbose", "v", false, "Debug logging")
	for _, bf := range []flagKey{
		{"config", "config"},
		{config.KeyRoot, "root"},
		{config.KeyDownloads, "downloads"},
		{config.KeyGenerated, "generated"},
		{config.KeyRuntime, "runtime"},
		{config.KeyVerbose, "verbose"},
	} {
		if err := a.v.BindPFlag(bf.key, pf.Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}

	root.AddCommand(
		a.fetchCmd(),
		a.generateCmd(),
		a.verifyCmd(),
		a.imagegenCmd(),
	)
	return root
}

func (a *app) initLogging() {
	level := slog.LevelInfo
	if a.v.GetBool(config.KeyVerbose) {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.err, &slog.HandlerOptions{Level: level}))
}

// bindFlags binds command-local flags at run time. Several commands share a
// key, so binding in the constructor would let the last command win.
func (a *app) bindFlags(cmd *cobra.Command, pairs ...flagKey) error {
	for _, bf := range pairs {
		f := cmd.Flags().Lookup(bf.flag)
		if f == nil {
			return fmt.Errorf("unknown flag %s", bf.flag)
		}
		if err := a.v.BindPFlag(bf.key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", bf.flag, err)
		}
	}
	return nil
}

func (a *app) loadConfig() (config.Config, error) {
	return config.Load(a.v)
}
