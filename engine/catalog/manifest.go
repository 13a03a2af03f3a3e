package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// Entry is one asset as recorded in the runtime manifest.
type Entry struct {
	Key      string `json:"key"`
	Kind     Kind   `json:"kind"`
	Path     string `json:"path"`
	Format   Format `json:"format"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Manifest lists the files one run produced.
type Manifest struct {
	Generator string  `json:"generator"`
	Seed      int64   `json:"seed"`
	Downscale int     `json:"downscale"`
	Assets    []Entry `json:"assets"`
}

// Add records a written asset with its actual dimensions.
func (m *Manifest) Add(a Asset, w, h int) {
	m.Assets = append(m.Assets, Entry{
		Key:      a.Key,
		Kind:     a.Kind,
		Path:     a.Path,
		Format:   a.Format,
		Width:    w,
		Height:   h,
		Optional: a.Optional,
	})
}

// Find returns the entry for key.
func (m *Manifest) Find(key string) (Entry, bool) {
	for _, e := range m.Assets {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return raster.WriteFile(path, append(data, '\n'))
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Verify checks that every required tracked asset is listed in m, exists under
// runtimeDir and, for rasters, decodes to the recorded size. Sizes recorded in
// the manifest must also match the catalog's declared size when one is
// declared. All problems are returned joined.
func Verify(runtimeDir string, m Manifest) error {
	var errs []error
	for _, a := range All() {
		e, ok := m.Find(a.Key)
		if !ok {
			if !a.Optional {
				errs = append(errs, fmt.Errorf("%s: missing from manifest", a.Key))
			}
			continue
		}
		if err := verifyEntry(runtimeDir, a, e, m.Downscale); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.Key, err))
		}
	}
	return errors.Join(errs...)
}

func verifyEntry(runtimeDir string, a Asset, e Entry, downscale int) error {
	path := filepath.Join(runtimeDir, filepath.FromSlash(e.Path))
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s is empty", path)
	}
	if !a.Decodable() {
		return nil
	}
	if w, h := a.Size(downscale); w > 0 && (e.Width != w || e.Height != h) {
		return fmt.Errorf("manifest records %dx%d, declared %dx%d", e.Width, e.Height, w, h)
	}
	img, err := raster.Load(path)
	if err != nil {
		return err
	}
	if got := img.Bounds().Size(); got.X != e.Width || got.Y != e.Height {
		return fmt.Errorf("decoded %dx%d, want %dx%d", got.X, got.Y, e.Width, e.Height)
	}
	return nil
}

// sourcesDoc is the provenance note shipped next to the downloads.
var sourcesDoc = []string{
	"# Free/Open Hero-Transition Asset Sources",
	"",
	"AmbientCG (CC0) material packs used:",
	"- Concrete013",
	"- Concrete047A",
	"- Accessed via https://ambientcg.com/get",
	"",
	"Three.js examples texture repository used for sprites/overlays/HDR references:",
	"- https://github.com/mrdoob/three.js/tree/dev/examples/textures",
	"",
	"Derived assets produced locally by:",
	"- cmd/assetgen (generate)",
	"",
	"Notes:",
	"- Runtime files are written to src/assets/.",
	"- Source copies are stored in Assets/free-open/downloads and Assets/free-open/generated.",
}

// WriteSources writes the SOURCES.md provenance file.
func WriteSources(path string) error {
	return raster.WriteFile(path, []byte(strings.Join(sourcesDoc, "\n")+"\n"))
}
