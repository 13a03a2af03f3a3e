package sources

import (
	"archive/zip"
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/1siamBot/herofx-assets/engine/procgen"
	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
)

// hdrStub is a minimal one-pixel Radiance file.
var hdrStub = []byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 1 +X 1\n\x80\x80\x80\x80")

var packMembers = []string{MemberColor, MemberNormal, MemberRoughness, MemberAO}

// WriteSynthetic writes size×size stand-ins for every file in list so the
// generators can run offline. Output depends only on the names and size.
func WriteSynthetic(dir string, list []Source, size int) (*Catalog, error) {
	for _, s := range list {
		path := filepath.Join(dir, s.Name)
		data, err := synthesize(s.Name, size)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", s.Name, err)
		}
		if err := raster.WriteFile(path, data); err != nil {
			return nil, err
		}
	}
	return newCatalog(dir, list), nil
}

func synthesize(name string, size int) ([]byte, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return packZip(strings.TrimSuffix(name, "-JPG.zip"), size)
	case strings.HasSuffix(lower, ".hdr"):
		return hdrStub, nil
	case name == NoiseTex:
		return raster.EncodePNG(procgen.Noise(rng.New(int64(nameHash(name))), size, size, 255))
	case strings.HasSuffix(lower, ".jpg"):
		return raster.EncodeJPEG(raster.Solid(size, size, tone(name, 255)), 90)
	default:
		return raster.EncodePNG(softDisc(size, tone(name, 255)))
	}
}

func packZip(base string, size int) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range packMembers {
		data, err := raster.EncodeJPEG(raster.Solid(size, size, tone(base+m, 255)), 90)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(base + "/" + base + m)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nameHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// tone derives a stable mid-range color from a name.
func tone(name string, alpha uint8) color.NRGBA {
	v := nameHash(name)
	return color.NRGBA{
		R: 64 + uint8(v%160),
		G: 64 + uint8((v>>8)%160),
		B: 64 + uint8((v>>16)%160),
		A: alpha,
	}
}

// softDisc is a sprite-like stamp: opaque in the middle, fading to clear at
// the edge.
func softDisc(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			a := raster.Clamp8((1 - d) * 255)
			img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, a})
		}
	}
	return img
}
