package catalog

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

func TestTrackedKeysAndPathsUnique(t *testing.T) {
	keys := map[string]bool{}
	paths := map[string]bool{}
	for _, a := range All() {
		if keys[a.Key] {
			t.Errorf("duplicate key %s", a.Key)
		}
		if paths[a.Path] {
			t.Errorf("duplicate path %s", a.Path)
		}
		keys[a.Key] = true
		paths[a.Path] = true

		ext := strings.TrimPrefix(filepath.Ext(a.Path), ".")
		switch a.Format {
		case FormatWebP, FormatPNG:
			if ext != string(a.Format) {
				t.Errorf("%s: extension %q does not match format %q", a.Key, ext, a.Format)
			}
		case FormatCopy:
			if a.Width != 0 || a.Height != 0 {
				t.Errorf("%s: copied assets have no declared size", a.Key)
			}
		}
		if a.Format == FormatWebP && a.Quality != raster.DefaultQuality {
			t.Errorf("%s: quality %d", a.Key, a.Quality)
		}
	}
	if len(Tracked) != 34 {
		t.Fatalf("tracked %d assets, want 34", len(Tracked))
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		n, div, want int
	}{
		{1024, 1, 1024},
		{1024, 0, 1024},
		{1024, 32, 32},
		{64, 32, 2},
		{32, 64, 1},
		{0, 32, 0},
	}
	for _, tt := range tests {
		if got := Scale(tt.n, tt.div); got != tt.want {
			t.Errorf("Scale(%d, %d) = %d, want %d", tt.n, tt.div, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("haze_plate_b")
	if !ok || a.Path != "textures/atmosphere/haze_b.webp" || a.Width != 2048 {
		t.Fatalf("Lookup(haze_plate_b) = %+v, %v", a, ok)
	}
	if _, ok := Lookup("tunnel_model"); !ok {
		t.Fatal("optional model should be found")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown key found")
	}
}

func TestManifestRoundTripAndVerify(t *testing.T) {
	dir := t.TempDir()
	m := Manifest{Generator: "test", Seed: 1, Downscale: 64}

	for _, a := range Tracked {
		path := filepath.Join(dir, filepath.FromSlash(a.Path))
		w, h := a.Size(m.Downscale)
		if w == 0 {
			w, h = 4, 4
		}
		var err error
		switch a.Format {
		case FormatWebP:
			err = raster.SaveWebP(path, raster.Solid(w, h, color.NRGBA{1, 2, 3, 255}), 80)
		case FormatPNG:
			err = raster.SavePNG(path, raster.Solid(w, h, color.NRGBA{1, 2, 3, 255}))
		default:
			w, h = 0, 0
			err = raster.WriteFile(path, []byte("#?RADIANCE\n"))
		}
		if err != nil {
			t.Fatal(err)
		}
		m.Add(a, w, h)
	}

	manifestPath := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifestPath, m); err != nil {
		t.Fatal(err)
	}
	got, err := ReadManifest(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Assets) != len(Tracked) || got.Downscale != 64 {
		t.Fatalf("manifest round trip lost data: %+v", got)
	}
	if err := Verify(dir, got); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "luts", "cool_cinematic.png")); err != nil {
		t.Fatal(err)
	}
	err = Verify(dir, got)
	if err == nil || !strings.Contains(err.Error(), "lut_cool_cinematic") {
		t.Fatalf("Verify after removal = %v, want lut problem", err)
	}
}

func TestVerifyReportsMissingEntries(t *testing.T) {
	err := Verify(t.TempDir(), Manifest{Downscale: 1})
	if err == nil {
		t.Fatal("expected problems for empty manifest")
	}
	if strings.Contains(err.Error(), "tunnel_model") {
		t.Fatalf("optional model reported missing: %v", err)
	}
	if !strings.Contains(err.Error(), "portal_gradient: missing from manifest") {
		t.Fatalf("unexpected problems: %v", err)
	}
}

func TestWriteSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "free-open", "SOURCES.md")
	if err := WriteSources(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Concrete013", "Concrete047A", "three.js"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("SOURCES.md missing %q", want)
		}
	}
}
