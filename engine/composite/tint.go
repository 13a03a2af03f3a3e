// Package composite builds derived assets out of existing images: tinting,
// stamp atlases, streaks, haze plates and blend mixes.
package composite

import (
	"image"
	"image/color"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// Tint maps the luminance of img onto a two-color ramp from black to white.
// Luminance 0 lands exactly on black and 255 exactly on white. The result is
// opaque.
func Tint(img image.Image, black, white color.NRGBA) *image.NRGBA {
	gray := raster.ToGray(img)
	b := gray.Bounds()
	dst := image.NewNRGBA(b)
	for i, j := 0, 0; i < len(gray.Pix); i, j = i+1, j+4 {
		l := int(gray.Pix[i])
		dst.Pix[j+0] = ramp(black.R, white.R, l)
		dst.Pix[j+1] = ramp(black.G, white.G, l)
		dst.Pix[j+2] = ramp(black.B, white.B, l)
		dst.Pix[j+3] = 0xff
	}
	return dst
}

func ramp(lo, hi uint8, l int) uint8 {
	d := (int(hi) - int(lo)) * l
	// nearest, half away from zero
	if d >= 0 {
		return uint8(int(lo) + (d+127)/255)
	}
	return uint8(int(lo) + (d-127)/255)
}
