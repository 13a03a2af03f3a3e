// Tool to render every generated runtime asset onto one contact sheet PNG for
// quick review without opening the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1siamBot/herofx-assets/engine/catalog"
	"github.com/1siamBot/herofx-assets/engine/locate"
	"github.com/1siamBot/herofx-assets/engine/pipeline"
	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/viewer"
)

func main() {
	cell := flag.Int("cell", 192, "Thumbnail cell size in pixels")
	cols := flag.Int("cols", 6, "Thumbnails per row")
	flag.Parse()

	root, err := findProjectRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Project root: %s\n", root)

	runtimeDir := filepath.Join(root, "src", "assets")
	m, err := catalog.ReadManifest(filepath.Join(runtimeDir, pipeline.ManifestFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pages, err := viewer.LoadPages(runtimeDir, m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i, p := range pages {
		fmt.Printf("  %2d %s\n", i+1, p.Label())
	}

	out := filepath.Join(root, "Assets", "free-open", "contact_sheet.png")
	if err := raster.SavePNG(out, viewer.ContactSheet(pages, *cell, *cols)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("\nContact sheet with %d assets written to %s\n", len(pages), out)
}

func findProjectRoot() (string, error) {
	candidates := []string{
		filepath.Join(".", "go.mod"),
		filepath.Join("..", "..", "go.mod"),
	}
	mod, err := locate.First("project root", candidates...)
	if err != nil {
		return "", err
	}
	return filepath.Abs(filepath.Dir(mod))
}
