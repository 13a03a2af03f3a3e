package procgen

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// Channel maps a glow factor g in [0,1] to Base + g*Range.
type Channel struct {
	Base  float64
	Range float64
}

// PortalParams configures the portal light gradient.
type PortalParams struct {
	Size             int
	Red, Green, Blue Channel
	Blur             float64
}

// DefaultPortal is the cold-blue tunnel-exit glow.
func DefaultPortal(size int) PortalParams {
	return PortalParams{
		Size:  size,
		Red:   Channel{26, 158},
		Green: Channel{74, 174},
		Blue:  Channel{126, 128},
		Blur:  1.8,
	}
}

// PortalField computes the unblurred radial falloff. Distance is normalized by
// the half size and clamped to 1, so the centre is Base+Range and everything
// at or past the inscribed circle is Base.
func PortalField(p PortalParams) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	center := float64(p.Size) / 2
	for y := 0; y < p.Size; y++ {
		dy := (float64(y) - center) / center
		for x := 0; x < p.Size; x++ {
			dx := (float64(x) - center) / center
			glow := 1 - math.Min(1, math.Sqrt(dx*dx+dy*dy))
			img.SetNRGBA(x, y, color.NRGBA{
				R: raster.Clamp8(p.Red.Base + glow*p.Red.Range),
				G: raster.Clamp8(p.Green.Base + glow*p.Green.Range),
				B: raster.Clamp8(p.Blue.Base + glow*p.Blue.Range),
				A: 255,
			})
		}
	}
	return img
}

// PortalGradient is PortalField softened by a small blur.
func PortalGradient(p PortalParams) *image.NRGBA {
	return raster.Blur(PortalField(p), p.Blur)
}

// LUTStrip builds the stylized "cool cinematic" remap strip. x feeds u and y
// feeds v; each output channel is a small power curve of a u/v mix.
func LUTStrip(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := float64(y) / float64(max(1, h-1))
		for x := 0; x < w; x++ {
			u := float64(x) / float64(max(1, w-1))
			img.SetNRGBA(x, y, color.NRGBA{
				R: raster.Clamp8(math.Pow(u, 0.9) * 255),
				G: raster.Clamp8(math.Pow(u*0.8+v*0.2, 1.0) * 255),
				B: raster.Clamp8(math.Pow(u*0.58+(1-v)*0.42, 1.1) * 255),
				A: 255,
			})
		}
	}
	return img
}
