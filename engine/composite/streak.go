package composite

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// StreakParams configures LightStreak.
type StreakParams struct {
	Width, Height int
	Bands         int
	MaxAlpha      float64
	Falloff       float64
	GlowScale     int
	GlowBlur      float64
	GlowAt        []float64
	Blur          float64
}

// DefaultStreak returns the anamorphic light streak settings.
func DefaultStreak(w, h int) StreakParams {
	return StreakParams{
		Width:     w,
		Height:    h,
		Bands:     10,
		MaxAlpha:  185,
		Falloff:   1.8,
		GlowScale: 5,
		GlowBlur:  8,
		GlowAt:    []float64{0.18, 0.52, 0.84},
		Blur:      1.9,
	}
}

// LightStreak stacks horizontal bands around the centre line, widest and
// faintest first, then drops blurred glow sprites along it.
func LightStreak(p StreakParams, glow image.Image) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	cy := p.Height / 2
	for i := p.Bands; i > 0; i-- {
		t := float64(i) / float64(p.Bands)
		alpha := uint8(math.Pow(t, p.Falloff) * p.MaxAlpha)
		thickness := max(1, int(t*float64(p.Height/2)))
		raster.FillRect(img, 0, cy-thickness, p.Width, cy+thickness, color.NRGBA{255, 255, 255, alpha})
	}

	side := p.Height * p.GlowScale
	sprite := raster.Blur(raster.Resize(glow, side, side), p.GlowBlur)
	for _, f := range p.GlowAt {
		x := int(float64(p.Width) * f)
		raster.AlphaComposite(img, sprite, image.Pt(x-side/2, cy-side/2))
	}
	return raster.Blur(img, p.Blur)
}
