package procgen

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/herofx-assets/engine/raster"
)

// WaveParams configures the audio-waveform transition mask.
type WaveParams struct {
	Width, Height int
	// Step is how many wave units one pixel column advances. Previews
	// rendered at a fraction of full size use the divisor here so the
	// curve keeps its shape.
	Step      float64
	HalfTick  int
	Alpha     uint8
	NoiseBlur float64
}

// DefaultWave returns the full-size waveform settings.
func DefaultWave(w, h int) WaveParams {
	return WaveParams{Width: w, Height: h, Step: 1, HalfTick: 2, Alpha: 220, NoiseBlur: 0.6}
}

// WaveOffset returns the tick centre row for wave position x on a mask of
// height h: two summed sines scaled into the middle band.
func WaveOffset(x float64, h int) int {
	wave := (math.Sin(x*0.05) + math.Sin(x*0.11+1.4)) * 0.36
	return int(float64(h)/2 + wave*(float64(h)/2.7))
}

// WaveformMask draws one vertical tick per column at the wave offset and
// darkens the result with the noise texture to break up the line.
func WaveformMask(p WaveParams, noise image.Image) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	tick := color.NRGBA{255, 255, 255, p.Alpha}
	for x := 0; x < p.Width; x++ {
		y := WaveOffset(float64(x)*p.Step, p.Height)
		raster.FillRect(img, x, max(0, y-p.HalfTick), x, min(p.Height, y+p.HalfTick), tick)
	}
	grain := raster.Blur(raster.Resize(raster.ToRGBA(noise), p.Width, p.Height), p.NoiseBlur)
	return raster.Multiply(img, grain)
}
