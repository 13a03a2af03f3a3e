package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Resize resamples img to w×h with a Lanczos kernel. A same-size request
// returns a plain copy.
func Resize(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return ToRGBA(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Blur applies a Gaussian blur. A non-positive radius returns a copy.
func Blur(img image.Image, radius float64) *image.NRGBA {
	if radius <= 0 {
		return ToRGBA(img)
	}
	return imaging.Blur(img, radius)
}

// Rotate rotates img counter-clockwise by deg degrees, growing the canvas so
// nothing is clipped. Uncovered corners are transparent.
func Rotate(img image.Image, deg float64) *image.NRGBA {
	return imaging.Rotate(img, deg, color.Transparent)
}

// mul8 returns a*b/255 rounded to nearest.
func mul8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

// Multiply multiplies every channel of a by the matching channel of b,
// alpha included. The result has a's size; pixels outside b become zero.
func Multiply(a, b image.Image) *image.NRGBA {
	dst := ToRGBA(a)
	src := ToRGBA(b)
	sb := src.Bounds()
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			i := dst.PixOffset(x, y)
			if !(image.Point{x, y}).In(sb) {
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = 0, 0, 0, 0
				continue
			}
			j := src.PixOffset(x, y)
			dst.Pix[i+0] = mul8(dst.Pix[i+0], src.Pix[j+0])
			dst.Pix[i+1] = mul8(dst.Pix[i+1], src.Pix[j+1])
			dst.Pix[i+2] = mul8(dst.Pix[i+2], src.Pix[j+2])
			dst.Pix[i+3] = mul8(dst.Pix[i+3], src.Pix[j+3])
		}
	}
	return dst
}

// MultiplyColor multiplies every pixel of img by c.
func MultiplyColor(img image.Image, c color.NRGBA) *image.NRGBA {
	dst := ToRGBA(img)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i+0] = mul8(dst.Pix[i+0], c.R)
		dst.Pix[i+1] = mul8(dst.Pix[i+1], c.G)
		dst.Pix[i+2] = mul8(dst.Pix[i+2], c.B)
		dst.Pix[i+3] = mul8(dst.Pix[i+3], c.A)
	}
	return dst
}

// AlphaComposite draws src over dst with its top-left corner at at. Parts of
// src outside dst are clipped.
func AlphaComposite(dst *image.NRGBA, src image.Image, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// Over returns a copy of a with b composited on top at the origin.
func Over(a, b image.Image) *image.NRGBA {
	dst := ToRGBA(a)
	AlphaComposite(dst, b, image.Point{})
	return dst
}

// FillRect replaces the pixels of the inclusive rectangle (x0,y0)-(x1,y1)
// with c, clipped to img.
func FillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// Clamp8 clamps v into a byte, truncating the fraction.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
