package composite

import (
	"errors"
	"image"
	"image/color"

	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
)

// ErrNoStamps is returned when a stamp atlas is requested with no stamps.
var ErrNoStamps = errors.New("confetti atlas needs at least one stamp")

// ConfettiParams configures ConfettiAtlas.
type ConfettiParams struct {
	Width, Height int
	Count         int
	MinScale      float64
	MaxScale      float64
	MinSize       int
	MinAlpha      int
	MaxAlpha      int
	Blur          float64
}

// DefaultConfetti returns the 180-piece pastel atlas settings.
func DefaultConfetti(w, h int) ConfettiParams {
	return ConfettiParams{
		Width:    w,
		Height:   h,
		Count:    180,
		MinScale: 0.2,
		MaxScale: 0.65,
		MinSize:  8,
		MinAlpha: 96,
		MaxAlpha: 220,
		Blur:     0.5,
	}
}

// ConfettiPiece records the draws made for one placed stamp.
type ConfettiPiece struct {
	Stamp int
	Scale float64
	Size  int
	Angle float64
	Tint  color.NRGBA
	At    image.Point
}

// ConfettiAtlas scatters Count randomly scaled, rotated and tinted stamps over
// a transparent canvas. Draws happen per piece in a fixed order (stamp,
// scale, angle, alpha, red, green, x, y), so a fixed seed and stamp set give
// the same atlas and the same returned pieces.
func ConfettiAtlas(r rng.Rand, p ConfettiParams, stamps []image.Image) (*image.NRGBA, []ConfettiPiece, error) {
	if len(stamps) == 0 {
		return nil, nil, ErrNoStamps
	}
	atlas := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	pieces := make([]ConfettiPiece, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		idx := rng.Pick(r, len(stamps))
		stamp := stamps[idx]
		scale := rng.Uniform(r, p.MinScale, p.MaxScale)
		size := max(p.MinSize, int(float64(stamp.Bounds().Dx())*scale))
		angle := rng.Uniform(r, 0, 360)
		tile := raster.Rotate(raster.Resize(stamp, size, size), angle)

		tint := color.NRGBA{B: 255}
		tint.A = uint8(rng.IntRange(r, p.MinAlpha, p.MaxAlpha))
		tint.R = uint8(rng.IntRange(r, 164, 255))
		tint.G = uint8(rng.IntRange(r, 195, 255))
		tile = raster.MultiplyColor(tile, tint)

		tw, th := tile.Rect.Dx(), tile.Rect.Dy()
		at := image.Point{
			X: rng.IntRange(r, -(tw+1)/2, p.Width-tw/2),
			Y: rng.IntRange(r, -(th+1)/2, p.Height-th/2),
		}
		raster.AlphaComposite(atlas, tile, at)

		pieces = append(pieces, ConfettiPiece{
			Stamp: idx,
			Scale: scale,
			Size:  size,
			Angle: angle,
			Tint:  tint,
			At:    at,
		})
	}
	return raster.Blur(atlas, p.Blur), pieces, nil
}
