package pipeline

import (
	"image"

	"github.com/1siamBot/herofx-assets/engine/composite"
	"github.com/1siamBot/herofx-assets/engine/procgen"
	"github.com/1siamBot/herofx-assets/engine/raster"
	"github.com/1siamBot/herofx-assets/engine/rng"
	"github.com/1siamBot/herofx-assets/engine/sources"
)

// Haze plate palettes.
var (
	hazeA = composite.HazeParams{
		Black:      raster.MustHex("#10243b"),
		White:      raster.MustHex("#b9dcff"),
		Blur:       9,
		AlphaScale: 0.72,
	}
	hazeB = composite.HazeParams{
		Black:      raster.MustHex("#0f1e33"),
		White:      raster.MustHex("#8cbde8"),
		Blur:       11,
		AlphaScale: 0.6,
	}
)

type packMap struct {
	zip    string
	member string
	key    string
}

var tunnelMaps = []packMap{
	{sources.WallZip2K, sources.MemberColor, "tunnel_wall_albedo"},
	{sources.WallZip2K, sources.MemberNormal, "tunnel_wall_normal"},
	{sources.WallZip2K, sources.MemberRoughness, "tunnel_wall_roughness"},
	{sources.WallZip2K, sources.MemberAO, "tunnel_wall_ao"},
	{sources.FloorZip2K, sources.MemberColor, "tunnel_floor_albedo"},
	{sources.FloorZip2K, sources.MemberNormal, "tunnel_floor_normal"},
	{sources.FloorZip2K, sources.MemberRoughness, "tunnel_floor_roughness"},
	{sources.FloorZip2K, sources.MemberAO, "tunnel_floor_ao"},
	{sources.WallZip1K, sources.MemberColor, "tunnel_wall_albedo_1k"},
	{sources.WallZip1K, sources.MemberNormal, "tunnel_wall_normal_1k"},
	{sources.WallZip1K, sources.MemberRoughness, "tunnel_wall_roughness_1k"},
	{sources.FloorZip1K, sources.MemberColor, "tunnel_floor_albedo_1k"},
	{sources.FloorZip1K, sources.MemberNormal, "tunnel_floor_normal_1k"},
	{sources.FloorZip1K, sources.MemberRoughness, "tunnel_floor_roughness_1k"},
}

func (r *runner) loadRGBA(name string) (*image.NRGBA, error) {
	return raster.LoadRGBA(r.src.Path(name))
}

func (r *runner) tunnelTextures() error {
	for _, m := range tunnelMaps {
		img, err := raster.LoadZipImage(r.src.Path(m.zip), m.member)
		if err != nil {
			return err
		}
		if err := r.emit(m.key, raster.ToRGB(img)); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) lightTextures() error {
	sp := procgen.DefaultStrip(r.size("ceiling_emissive_strip"))
	sp.Inset = r.px(sp.Inset)
	sp.Blur = r.radius(sp.Blur)
	if err := r.emit("ceiling_emissive_strip", procgen.CeilingStrip(sp)); err != nil {
		return err
	}

	size, _ := r.size("portal_gradient")
	pp := procgen.DefaultPortal(size)
	pp.Blur = r.radius(pp.Blur)
	return r.emit("portal_gradient", procgen.PortalGradient(pp))
}

// grime multiplies the wall AO, read back from the runtime tree, by the
// caustic texture.
func (r *runner) grime() error {
	a, err := r.asset("tunnel_wall_ao")
	if err != nil {
		return err
	}
	ao, err := raster.LoadRGB(r.runtimePath(a))
	if err != nil {
		return err
	}
	caustic, err := raster.LoadRGB(r.src.Path(sources.Caustic))
	if err != nil {
		return err
	}
	r.caustic = caustic

	w, h := r.size("grime_decal_atlas")
	return r.emit("grime_decal_atlas", composite.MultiplyBlur(ao, caustic, w, h, r.radius(0.8)))
}

func (r *runner) sprites() error {
	names := []string{
		sources.Disc, sources.Spark, sources.Snowflake, sources.Ball,
		sources.Blossom, sources.Smoke, sources.LensFlare,
	}
	imgs := make(map[string]*image.NRGBA, len(names))
	for _, n := range names {
		img, err := r.loadRGBA(n)
		if err != nil {
			return err
		}
		imgs[n] = img
	}
	r.smoke = imgs[sources.Smoke]
	r.lensflare = imgs[sources.LensFlare]

	work := r.px(512)
	out, _ := r.size("dust_soft")
	if err := r.emit("dust_soft", composite.Layered(imgs[sources.Smoke], imgs[sources.Disc], work, out)); err != nil {
		return err
	}
	out, _ = r.size("dust_sharp")
	if err := r.emit("dust_sharp", composite.Layered(imgs[sources.Snowflake], imgs[sources.Spark], work, out)); err != nil {
		return err
	}

	gw, gh := r.size("glow_soft")
	if err := r.emit("glow_soft", raster.Resize(r.lensflare, gw, gh)); err != nil {
		return err
	}

	sp := composite.DefaultStreak(r.size("light_streak"))
	sp.GlowBlur = r.radius(sp.GlowBlur)
	sp.Blur = r.radius(sp.Blur)
	if err := r.emit("light_streak", composite.LightStreak(sp, r.lensflare)); err != nil {
		return err
	}

	cp := composite.DefaultConfetti(r.size("confetti_atlas"))
	cp.Blur = r.radius(cp.Blur)
	stamps := []image.Image{imgs[sources.Ball], imgs[sources.Blossom], imgs[sources.Spark], imgs[sources.Disc]}
	atlas, pieces, err := composite.ConfettiAtlas(r.rnd, cp, stamps)
	if err != nil {
		return err
	}
	r.log.Debug("confetti placed", "pieces", len(pieces))
	return r.emit("confetti_atlas", atlas)
}

// transitionMasks writes the waveform and burst masks as opaque RGB.
func (r *runner) transitionMasks() error {
	noise, err := r.loadRGBA(sources.NoiseTex)
	if err != nil {
		return err
	}
	r.noise = noise

	wp := procgen.DefaultWave(r.size("waveform_mask"))
	wp.Step = float64(r.cfg.Downscale)
	wp.HalfTick = r.px(wp.HalfTick)
	wp.NoiseBlur = r.radius(wp.NoiseBlur)
	if err := r.emit("waveform_mask", raster.ToRGB(procgen.WaveformMask(wp, noise))); err != nil {
		return err
	}

	size, _ := r.size("radial_burst_mask")
	bp := procgen.DefaultBurst(size)
	bp.StrokeScale = 1 / float64(r.cfg.Downscale)
	bp.Blur = r.radius(bp.Blur)
	return r.emit("radial_burst_mask", burstMask(r.rnd, bp))
}

// burstMask drops the burst's alpha before blurring, so rays keep their full
// white and only the color channels spread.
func burstMask(rnd rng.Rand, p procgen.BurstParams) *image.NRGBA {
	blur := p.Blur
	p.Blur = 0
	return raster.Blur(raster.ToRGB(procgen.RadialBurst(rnd, p)), blur)
}

func (r *runner) noiseTile() error {
	w, h := r.size("noise_tile")
	return r.emit("noise_tile", raster.Resize(raster.ToRGB(r.noise), w, h))
}

// hazePlates are stored as their opaque tint.
func (r *runner) hazePlates() error {
	a := hazeA
	a.Width, a.Height = r.size("haze_plate_a")
	a.Blur = r.radius(a.Blur)
	if err := r.emit("haze_plate_a", raster.ToRGB(composite.HazePlate(r.smoke, a))); err != nil {
		return err
	}

	b := hazeB
	b.Width, b.Height = r.size("haze_plate_b")
	b.Blur = r.radius(b.Blur)
	return r.emit("haze_plate_b", raster.ToRGB(composite.HazePlate(r.caustic, b)))
}

func (r *runner) overlays() error {
	w, h := r.size("film_grain")
	if err := r.emit("film_grain", raster.Resize(raster.ToRGB(r.noise), w, h)); err != nil {
		return err
	}

	size, _ := r.size("vignette")
	vp := procgen.DefaultVignette(size)
	vp.RingWidth = float64(r.px(int(vp.RingWidth)))
	vp.Blur = r.radius(vp.Blur)
	if err := r.emit("vignette", raster.ToRGB(procgen.Vignette(vp))); err != nil {
		return err
	}

	w, h = r.size("lens_dirt")
	dirt := composite.MultiplyBlur(r.caustic, r.lensflare, w, h, 0)
	if err := r.emit("lens_dirt", raster.Blur(raster.ToRGB(dirt), r.radius(5))); err != nil {
		return err
	}

	w, h = r.size("scanline_overlay")
	return r.emit("scanline_overlay", procgen.Scanlines(w, h, 3))
}

func (r *runner) lut() error {
	return r.emit("lut_cool_cinematic", procgen.LUTStrip(r.size("lut_cool_cinematic")))
}

func (r *runner) hdr() error {
	if err := r.copyIn("env_tunnel", r.src.Path(sources.SanGiuseppe)); err != nil {
		return err
	}
	return r.copyIn("env_stadium_night", r.src.Path(sources.VeniceSunset))
}
