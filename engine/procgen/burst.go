// Package procgen contains the procedural generators: images built from
// parameters and the seeded generator alone, with no source input.
package procgen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
)

// Ray is one stroke of a radial burst.
type Ray struct {
	Degrees int
	Inner   float64
	Outer   float64
	Alpha   uint8
	Width   int
}

// BurstParams configures RadialBurst. Radii are fractions of Size.
type BurstParams struct {
	Size      int
	Step      int
	InnerFrac float64
	OuterMin  float64
	OuterSpan float64
	MinAlpha  int
	MaxAlpha  int
	MinWidth  int
	MaxWidth  int
	// StrokeScale multiplies the drawn width; it does not change the draws.
	StrokeScale float64
	Blur        float64
}

// DefaultBurst returns the transition-mask burst settings for a square of size.
func DefaultBurst(size int) BurstParams {
	return BurstParams{
		Size:        size,
		Step:        8,
		InnerFrac:   0.14,
		OuterMin:    0.35,
		OuterSpan:   0.28,
		MinAlpha:    110,
		MaxAlpha:    230,
		MinWidth:    1,
		MaxWidth:    3,
		StrokeScale: 1,
		Blur:        1.8,
	}
}

// BurstRays draws the rays for a burst. Per ray it consumes, in order, the
// outer radius, the alpha and the width. When Step does not divide 360 the
// last ray simply sits closer to the first.
func BurstRays(r rng.Rand, p BurstParams) []Ray {
	size := float64(p.Size)
	var rays []Ray
	for deg := 0; deg < 360; deg += p.Step {
		outer := size * (p.OuterMin + r.Float64()*p.OuterSpan)
		alpha := rng.IntRange(r, p.MinAlpha, p.MaxAlpha)
		width := rng.IntRange(r, p.MinWidth, p.MaxWidth)
		rays = append(rays, Ray{
			Degrees: deg,
			Inner:   size * p.InnerFrac,
			Outer:   outer,
			Alpha:   uint8(alpha),
			Width:   width,
		})
	}
	return rays
}

// RadialBurst renders a soft starburst of white rays on a transparent square.
func RadialBurst(r rng.Rand, p BurstParams) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	center := float64(p.Size / 2)
	for _, ray := range BurstRays(r, p) {
		strokeRay(img, center, ray, p.StrokeScale)
	}
	return raster.Blur(img, p.Blur)
}

func strokeRay(dst *image.NRGBA, center float64, ray Ray, scale float64) {
	rad := float64(ray.Degrees) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	x1, y1 := center+cos*ray.Inner, center+sin*ray.Inner
	x2, y2 := center+cos*ray.Outer, center+sin*ray.Outer

	hw := math.Max(0.5, float64(ray.Width)*scale/2)
	nx, ny := -sin*hw, cos*hw

	b := dst.Bounds()
	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x2+nx), float32(y2+ny))
	z.LineTo(float32(x2-nx), float32(y2-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.ClosePath()
	fillCovered(dst, &z, color.NRGBA{255, 255, 255, ray.Alpha})
}
