// Package viewer loads generated assets for on-screen review. It knows
// nothing about the window; cmd/assetview draws what it returns.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/1siamBot/herofx-assets/engine/catalog"
	"github.com/1siamBot/herofx-assets/engine/raster"
)

// Page is one reviewable image.
type Page struct {
	Key    string
	Path   string
	Kind   catalog.Kind
	Width  int
	Height int
	Image  image.Image
}

// Label is the one-line caption shown with a page.
func (p Page) Label() string {
	return fmt.Sprintf("%s  %s  %dx%d", p.Key, p.Path, p.Width, p.Height)
}

// LoadPages decodes every raster entry of m, in manifest order. Copied files
// (HDR probes, models) are skipped.
func LoadPages(runtimeDir string, m catalog.Manifest) ([]Page, error) {
	var pages []Page
	for _, e := range m.Assets {
		if e.Format != catalog.FormatWebP && e.Format != catalog.FormatPNG {
			continue
		}
		img, err := raster.Load(filepath.Join(runtimeDir, filepath.FromSlash(e.Path)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key, err)
		}
		size := img.Bounds().Size()
		pages = append(pages, Page{
			Key:    e.Key,
			Path:   e.Path,
			Kind:   e.Kind,
			Width:  size.X,
			Height: size.Y,
			Image:  img,
		})
	}
	return pages, nil
}

// Pager steps through n pages, wrapping at both ends.
type Pager struct {
	n, i int
}

func NewPager(n int) *Pager { return &Pager{n: n} }

func (p *Pager) Index() int { return p.i }
func (p *Pager) Len() int   { return p.n }

func (p *Pager) Next() {
	if p.n > 0 {
		p.i = (p.i + 1) % p.n
	}
}

func (p *Pager) Prev() {
	if p.n > 0 {
		p.i = (p.i + p.n - 1) % p.n
	}
}

// Fit returns the uniform scale that fits a w×h image inside a box.
func Fit(w, h, boxW, boxH int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return min(float64(boxW)/float64(w), float64(boxH)/float64(h))
}

// Checker returns a two-tone backdrop that makes transparency visible.
func Checker(w, h, cell int) *image.NRGBA {
	img := raster.Solid(w, h, color.NRGBA{40, 40, 48, 255})
	light := color.NRGBA{72, 72, 84, 255}
	for y := 0; y < h; y += cell {
		for x := (y / cell % 2) * cell; x < w; x += 2 * cell {
			raster.FillRect(img, x, y, x+cell-1, y+cell-1, light)
		}
	}
	return img
}

// ContactSheet lays the pages out on a grid of cell×cell thumbnails, cols
// wide, over a checker backdrop. Each thumbnail keeps its aspect ratio and is
// centred in its cell.
func ContactSheet(pages []Page, cell, cols int) *image.NRGBA {
	if cols < 1 {
		cols = 1
	}
	rows := max(1, (len(pages)+cols-1)/cols)
	sheet := Checker(cols*cell, rows*cell, max(1, cell/8))
	for i, p := range pages {
		s := min(1, Fit(p.Width, p.Height, cell, cell))
		tw := max(1, int(float64(p.Width)*s))
		th := max(1, int(float64(p.Height)*s))
		thumb := raster.Resize(p.Image, tw, th)
		at := image.Pt((i%cols)*cell+(cell-tw)/2, (i/cols)*cell+(cell-th)/2)
		raster.AlphaComposite(sheet, thumb, at)
	}
	return sheet
}
