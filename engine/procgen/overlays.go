package procgen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
)

// StripParams configures the ceiling emissive strip.
type StripParams struct {
	Width, Height int
	Bands         int
	Inset         int
	Background    color.NRGBA
	Light         color.NRGBA
	Blur          float64
}

// DefaultStrip returns the tunnel ceiling light settings.
func DefaultStrip(w, h int) StripParams {
	return StripParams{
		Width:      w,
		Height:     h,
		Bands:      6,
		Inset:      5,
		Background: color.NRGBA{8, 16, 28, 255},
		Light:      color.NRGBA{134, 205, 255, 255},
		Blur:       4.5,
	}
}

// CeilingStrip fills nested bands between a third and two thirds of the
// height, each inset further than the last, then blurs them into a glow.
func CeilingStrip(p StripParams) *image.NRGBA {
	img := raster.Solid(p.Width, p.Height, p.Background)
	top := int(float64(p.Height) * 0.33)
	bottom := int(float64(p.Height) * 0.67)
	for i := 0; i < p.Bands; i++ {
		inset := i * p.Inset
		raster.FillRect(img, inset, top+inset/2, p.Width-inset, bottom-inset/2, p.Light)
	}
	return raster.Blur(img, p.Blur)
}

// Scanlines draws a dim horizontal line every spacing rows on black.
func Scanlines(w, h, spacing int) *image.NRGBA {
	img := raster.Solid(w, h, color.NRGBA{0, 0, 0, 255})
	for y := 0; y < h; y += spacing {
		v := uint8(10)
		if y%6 == 0 {
			v = 18
		}
		raster.FillRect(img, 0, y, w, y, color.NRGBA{v, v, v, 255})
	}
	return img
}

// VignetteParams configures the ring vignette.
type VignetteParams struct {
	Size      int
	Rings     int
	RingWidth float64
	MaxAlpha  float64
	Falloff   float64
	Blur      float64
}

// DefaultVignette returns the full-size vignette settings.
func DefaultVignette(size int) VignetteParams {
	return VignetteParams{Size: size, Rings: 14, RingWidth: 8, MaxAlpha: 215, Falloff: 2.1, Blur: 34}
}

// Vignette draws concentric black rings whose opacity grows toward the edge,
// then blurs them into a smooth falloff. The image keeps its alpha.
func Vignette(p VignetteParams) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	center := float64(p.Size / 2)
	for i := 0; i < p.Rings; i++ {
		radius := float64(int(float64(i+1) / float64(p.Rings) * center))
		t := float64(i) / float64(max(1, p.Rings-1))
		alpha := uint8(math.Pow(t, p.Falloff) * p.MaxAlpha)
		ring(img, center, radius, p.RingWidth, color.NRGBA{0, 0, 0, alpha})
	}
	return raster.Blur(img, p.Blur)
}

// ring replaces an annulus of the given outer radius and width with c.
func ring(dst *image.NRGBA, center, radius, width float64, c color.NRGBA) {
	b := dst.Bounds()
	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	outer := radius + 0.5
	circle(&z, center, outer, false)
	if inner := outer - width; inner > 0 {
		circle(&z, center, inner, true)
	}
	fillCovered(dst, &z, c)
}

// fillCovered sets every pixel the path in z touches to c and leaves the
// rest of dst alone. z must have been reset to the size of dst.
func fillCovered(dst *image.NRGBA, z *vector.Rasterizer, c color.NRGBA) {
	b := dst.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < b.Dy(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+b.Dx()]
		for x, cov := range row {
			if cov > 0 {
				dst.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
			}
		}
	}
}

// circle appends a closed polygonal circle; reverse winding cuts a hole.
func circle(z *vector.Rasterizer, center, radius float64, reverse bool) {
	const segments = 96
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		if reverse {
			a = -a
		}
		x := float32(center + radius*math.Cos(a))
		y := float32(center + radius*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// Noise returns uniform luminance noise with samples in [0, amount].
func Noise(r rng.Rand, w, h, amount int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = uint8(rng.IntRange(r, 0, amount))
		}
	}
	return img
}
