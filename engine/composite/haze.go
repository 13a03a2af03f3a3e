package composite

import (
	"image"
	"image/color"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// HazeParams configures a haze plate.
type HazeParams struct {
	Width, Height int
	Black, White  color.NRGBA
	Blur          float64
	AlphaScale    float64
}

// HazeAlpha is the plate opacity for a luminance sample.
func HazeAlpha(lum uint8, scale float64) uint8 {
	v := int(float64(lum) * scale)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// HazePlate resizes and blurs src, tints it, and derives the alpha channel
// from the blurred plate's luminance.
func HazePlate(src image.Image, p HazeParams) *image.NRGBA {
	plate := raster.Blur(raster.Resize(raster.ToRGBA(src), p.Width, p.Height), p.Blur)
	out := Tint(plate, p.Black, p.White)
	gray := raster.ToGray(plate)
	for i, j := 0, 3; i < len(gray.Pix); i, j = i+1, j+4 {
		out.Pix[j] = HazeAlpha(gray.Pix[i], p.AlphaScale)
	}
	return out
}
