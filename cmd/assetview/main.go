// Command assetview pages through the generated runtime assets in a window.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/1siamBot/herofx-assets/engine/catalog"
	"github.com/1siamBot/herofx-assets/engine/config"
	"github.com/1siamBot/herofx-assets/engine/pipeline"
	"github.com/1siamBot/herofx-assets/engine/viewer"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	captionH     = 40
	checkerCell  = 16
)

type page struct {
	viewer.Page
	tex *ebiten.Image
}

// Viewer implements ebiten.Game.
type Viewer struct {
	pages    []page
	pager    *viewer.Pager
	backdrop *ebiten.Image
}

func NewViewer(pages []viewer.Page) *Viewer {
	v := &Viewer{
		pager:    viewer.NewPager(len(pages)),
		backdrop: ebiten.NewImageFromImage(viewer.Checker(ScreenWidth, ScreenHeight-captionH, checkerCell)),
	}
	for _, p := range pages {
		v.pages = append(v.pages, page{Page: p, tex: ebiten.NewImageFromImage(p.Image)})
	}
	return v
}

func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.pager.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.pager.Prev()
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, captionH)
	screen.DrawImage(v.backdrop, op)

	if len(v.pages) == 0 {
		ebitenutil.DebugPrint(screen, "no images in manifest")
		return
	}
	p := v.pages[v.pager.Index()]

	boxW, boxH := ScreenWidth, ScreenHeight-captionH
	s := viewer.Fit(p.Width, p.Height, boxW, boxH)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(boxW)-float64(p.Width)*s)/2, captionH+(float64(boxH)-float64(p.Height)*s)/2)
	if s < 1 {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(p.tex, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"[%d/%d] %s\n[Left/Right] Page [Esc] Quit",
		v.pager.Index()+1, v.pager.Len(), p.Label(),
	))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	cfgV := config.New()
	cmd := &cobra.Command{
		Use:           "assetview",
		Short:         "Review the generated runtime assets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(cfgV); err != nil {
				return err
			}
			cfg, err := config.Load(cfgV)
			if err != nil {
				return err
			}
			m, err := catalog.ReadManifest(filepath.Join(cfg.Runtime, pipeline.ManifestFile))
			if err != nil {
				return err
			}
			pages, err := viewer.LoadPages(cfg.Runtime, m)
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			ebiten.SetWindowTitle("Hero Transition Assets")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetVsyncEnabled(true)

			err = ebiten.RunGame(NewViewer(pages))
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().String("root", ".", "Project root")
	cmd.Flags().String("runtime", "", "Runtime asset directory (default <root>/src/assets)")
	for _, key := range []string{config.KeyRoot, config.KeyRuntime} {
		if err := cfgV.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
		}
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
