package procgen

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
)

func TestBurstRaysBandAndCount(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		step  int
		count int
	}{
		{"default step", 1024, 8, 45},
		{"even step", 256, 10, 36},
		{"uneven step", 256, 7, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultBurst(tt.size)
			p.Step = tt.step
			rays := BurstRays(rng.New(rng.DefaultSeed), p)
			if len(rays) != tt.count {
				t.Fatalf("got %d rays, want %d", len(rays), tt.count)
			}
			lo := 0.35 * float64(tt.size)
			hi := 0.63 * float64(tt.size)
			for i, r := range rays {
				if r.Outer < lo || r.Outer > hi {
					t.Errorf("ray %d outer radius %.2f outside [%.2f, %.2f]", i, r.Outer, lo, hi)
				}
				if r.Alpha < 110 || r.Alpha > 230 {
					t.Errorf("ray %d alpha %d outside [110, 230]", i, r.Alpha)
				}
				if r.Width < 1 || r.Width > 3 {
					t.Errorf("ray %d width %d outside [1, 3]", i, r.Width)
				}
				if r.Degrees != i*tt.step {
					t.Errorf("ray %d at %d degrees, want %d", i, r.Degrees, i*tt.step)
				}
			}
		})
	}
}

func TestRadialBurstDeterministic(t *testing.T) {
	p := DefaultBurst(64)
	a := RadialBurst(rng.New(1), p)
	b := RadialBurst(rng.New(1), p)
	if a.Bounds().Size() != (image.Point{64, 64}) {
		t.Fatalf("size = %v", a.Bounds().Size())
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("burst differs at byte %d", i)
		}
	}
}

func TestRadialBurstDrawsEveryRay(t *testing.T) {
	p := DefaultBurst(256)
	p.Blur = 0
	img := RadialBurst(rng.New(7), p)
	rays := BurstRays(rng.New(7), p)
	if len(rays) != 45 {
		t.Fatalf("%d rays, want 45", len(rays))
	}

	center := float64(p.Size / 2)
	for _, ray := range rays {
		rad := float64(ray.Degrees) * math.Pi / 180
		mid := (ray.Inner + ray.Outer) / 2
		x := int(center + math.Cos(rad)*mid)
		y := int(center + math.Sin(rad)*mid)
		want := color.NRGBA{255, 255, 255, ray.Alpha}
		if got := img.NRGBAAt(x, y); got != want {
			t.Errorf("ray at %d degrees: midpoint (%d,%d) = %v, want %v", ray.Degrees, x, y, got, want)
		}
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestPortalFieldCentreAndCorner(t *testing.T) {
	p := DefaultPortal(64)
	img := PortalField(p)

	centre := img.NRGBAAt(32, 32)
	if want := (color.NRGBA{184, 248, 254, 255}); centre != want {
		t.Errorf("centre = %v, want %v", centre, want)
	}
	corner := img.NRGBAAt(0, 0)
	if want := (color.NRGBA{26, 74, 126, 255}); corner != want {
		t.Errorf("corner = %v, want %v", corner, want)
	}
}

func TestLUTStripEndpoints(t *testing.T) {
	img := LUTStrip(16, 4)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 98, 255}) {
		t.Errorf("top-left = %v", got)
	}
	if got := img.NRGBAAt(15, 3); got != (color.NRGBA{255, 255, 140, 255}) {
		t.Errorf("bottom-right = %v", got)
	}
}

func TestWaveformMaskTicks(t *testing.T) {
	p := DefaultWave(64, 16)
	p.NoiseBlur = 0
	white := raster.Solid(4, 4, color.NRGBA{255, 255, 255, 255})
	img := WaveformMask(p, white)

	for x := 0; x < p.Width; x++ {
		y := WaveOffset(float64(x), p.Height)
		if got := img.NRGBAAt(x, y); got.A != 220 {
			t.Fatalf("column %d tick alpha at row %d = %d, want 220", x, y, got.A)
		}
		far := (y + p.Height/2) % p.Height
		if abs(far-y) > p.HalfTick {
			if got := img.NRGBAAt(x, far); got.A != 0 {
				t.Fatalf("column %d row %d should be empty, got %v", x, far, got)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestCeilingStripBands(t *testing.T) {
	p := DefaultStrip(64, 32)
	p.Blur = 0
	img := CeilingStrip(p)
	if got := img.NRGBAAt(32, 16); got != p.Light {
		t.Errorf("band centre = %v, want %v", got, p.Light)
	}
	if got := img.NRGBAAt(32, 0); got != p.Background {
		t.Errorf("top row = %v, want %v", got, p.Background)
	}
}

func TestScanlines(t *testing.T) {
	img := Scanlines(8, 12, 3)
	rows := map[int]uint8{0: 18, 1: 0, 3: 10, 6: 18, 9: 10}
	for y, want := range rows {
		if got := img.NRGBAAt(4, y).R; got != want {
			t.Errorf("row %d = %d, want %d", y, got, want)
		}
	}
}

func TestVignetteKeepsEveryRing(t *testing.T) {
	p := DefaultVignette(256)
	p.Blur = 0
	img := Vignette(p)

	center := p.Size / 2
	var prev uint8
	for i := 0; i < p.Rings; i++ {
		radius := int(float64(i+1) / float64(p.Rings) * float64(center))
		want := uint8(math.Pow(float64(i)/float64(p.Rings-1), p.Falloff) * p.MaxAlpha)
		// a pixel halfway across the ring band, on the horizontal axis
		got := img.NRGBAAt(center+radius-4, center)
		if got != (color.NRGBA{0, 0, 0, want}) {
			t.Errorf("ring %d (radius %d) = %v, want alpha %d", i, radius, got, want)
		}
		if i >= 2 && got.A <= prev {
			t.Errorf("ring %d alpha %d does not exceed ring %d alpha %d", i, got.A, i-1, prev)
		}
		prev = got.A
	}
	if prev != 215 {
		t.Errorf("outer ring alpha %d, want 215", prev)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestNoiseRange(t *testing.T) {
	img := Noise(rng.New(3), 16, 16, 40)
	for _, v := range img.Pix {
		if v > 40 {
			t.Fatalf("noise sample %d above amount", v)
		}
	}
}
