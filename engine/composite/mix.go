package composite

import (
	"image"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// MultiplyBlur resizes both inputs to w×h, multiplies them and blurs the
// product. Grime decals and lens dirt are both built this way.
func MultiplyBlur(a, b image.Image, w, h int, blur float64) *image.NRGBA {
	return raster.Blur(raster.Multiply(raster.Resize(a, w, h), raster.Resize(b, w, h)), blur)
}

// Layered composites top over base at work×work and scales the result to
// out×out.
func Layered(base, top image.Image, work, out int) *image.NRGBA {
	mixed := raster.Over(raster.Resize(base, work, work), raster.Resize(top, work, work))
	return raster.Resize(mixed, out, out)
}
