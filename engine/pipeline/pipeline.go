// Package pipeline runs every generator in a fixed order and writes the
// runtime asset tree, its archival mirror, SOURCES.md and manifest.json.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/1siamBot/herofx-assets/engine/catalog"
	"github.com/1siamBot/herofx-assets/engine/config"
	"github.com/1siamBot/herofx-assets/engine/locate"
	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
	"github.com/1siamBot/herofx-assets/engine/sources"
)

// Generator names the manifest producer.
const Generator = "assetgen"

// ManifestFile is written at the root of the runtime tree.
const ManifestFile = "manifest.json"

// Result describes a completed run.
type Result struct {
	// Written holds runtime paths in write order.
	Written  []string
	Manifest catalog.Manifest
}

type runner struct {
	cfg config.Config
	src *sources.Catalog
	rnd *rand.Rand
	log *slog.Logger
	res *Result

	// loaded sources, shared across steps
	caustic   *image.NRGBA
	lensflare *image.NRGBA
	smoke     *image.NRGBA
	noise     *image.NRGBA
}

type step struct {
	name string
	fn   func() error
}

// Run generates every tracked asset from src. The generator is seeded once
// from cfg.Seed and consumed in step order. Any error aborts the run; files
// already written stay on disk.
func Run(ctx context.Context, cfg config.Config, src *sources.Catalog, log *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := &runner{
		cfg: cfg,
		src: src,
		rnd: rng.New(cfg.Seed),
		log: log,
		res: &Result{Manifest: catalog.Manifest{
			Generator: Generator,
			Seed:      cfg.Seed,
			Downscale: cfg.Downscale,
		}},
	}

	for _, s := range r.steps() {
		if err := ctx.Err(); err != nil {
			return r.res, err
		}
		log.Debug("step", "name", s.name)
		if err := s.fn(); err != nil {
			return r.res, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return r.res, nil
}

func (r *runner) steps() []step {
	return []step{
		{"tunnel textures", r.tunnelTextures},
		{"light textures", r.lightTextures},
		{"grime", r.grime},
		{"sprites", r.sprites},
		{"transition masks", r.transitionMasks},
		{"noise tile", r.noiseTile},
		{"haze plates", r.hazePlates},
		{"overlays", r.overlays},
		{"lut", r.lut},
		{"hdr", r.hdr},
		{"model", r.model},
		{"sources doc", r.sourcesDoc},
		{"manifest", r.manifest},
	}
}

// px scales a full-size pixel length.
func (r *runner) px(n int) int {
	return catalog.Scale(n, r.cfg.Downscale)
}

// radius scales a full-size blur radius.
func (r *runner) radius(f float64) float64 {
	return f / float64(r.cfg.Downscale)
}

func (r *runner) asset(key string) (catalog.Asset, error) {
	a, ok := catalog.Lookup(key)
	if !ok {
		return a, fmt.Errorf("unknown asset %q", key)
	}
	return a, nil
}

// size returns the downscaled declared size of key.
func (r *runner) size(key string) (int, int) {
	a, _ := catalog.Lookup(key)
	return a.Size(r.cfg.Downscale)
}

func (r *runner) runtimePath(a catalog.Asset) string {
	return filepath.Join(r.cfg.Runtime, filepath.FromSlash(a.Path))
}

// emit encodes img per its descriptor and writes it to the runtime tree and
// the archival mirror.
func (r *runner) emit(key string, img image.Image) error {
	a, err := r.asset(key)
	if err != nil {
		return err
	}
	var data []byte
	switch a.Format {
	case catalog.FormatWebP:
		data, err = raster.EncodeWebP(img, r.quality(a))
	case catalog.FormatPNG:
		data, err = raster.EncodePNG(img)
	default:
		err = fmt.Errorf("format %s is not encodable", a.Format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	size := img.Bounds().Size()
	return r.write(a, data, size.X, size.Y)
}

// quality is the configured override, or the asset's own quality when none
// is set.
func (r *runner) quality(a catalog.Asset) int {
	if r.cfg.Quality > 0 {
		return r.cfg.Quality
	}
	return a.Quality
}

// copyIn copies a file through untouched.
func (r *runner) copyIn(key, src string) error {
	a, err := r.asset(key)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return r.write(a, data, 0, 0)
}

func (r *runner) write(a catalog.Asset, data []byte, w, h int) error {
	path := r.runtimePath(a)
	if err := raster.WriteFile(path, data); err != nil {
		return err
	}
	mirror := filepath.Join(r.cfg.Generated, filepath.FromSlash(a.Path))
	if err := raster.WriteFile(mirror, data); err != nil {
		return err
	}
	r.res.Written = append(r.res.Written, path)
	r.res.Manifest.Add(a, w, h)
	r.log.Info("wrote", "key", a.Key, "path", a.Path, "w", w, "h", h)
	return nil
}

func (r *runner) model() error {
	src, err := locate.First("tunnel model", r.cfg.ModelSource)
	var nf *locate.NotFoundError
	if errors.As(err, &nf) {
		r.log.Debug("no bundled model", "checked", nf.Checked)
		return nil
	}
	if err != nil {
		return err
	}
	return r.copyIn(catalog.Model.Key, src)
}

func (r *runner) sourcesDoc() error {
	return catalog.WriteSources(r.cfg.SourcesDoc)
}

func (r *runner) manifest() error {
	for _, dir := range []string{r.cfg.Runtime, r.cfg.Generated} {
		if err := catalog.WriteManifest(filepath.Join(dir, ManifestFile), r.res.Manifest); err != nil {
			return err
		}
	}
	return nil
}
