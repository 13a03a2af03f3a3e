// Package catalog declares every runtime asset the generator produces: where it
// lives, how it is encoded and what size it must decode to.
package catalog

import "github.com/1siamBot/herofx-assets/engine/raster"

// Kind groups assets the way the runtime loads them.
type Kind string

const (
	KindTexture Kind = "texture"
	KindSprite  Kind = "sprite"
	KindOverlay Kind = "overlay"
	KindLUT     Kind = "lut"
	KindHDR     Kind = "hdr"
	KindModel   Kind = "model"
)

// Format is the on-disk encoding of an asset.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	// FormatCopy files are copied through untouched (HDR probes, models).
	FormatCopy Format = "copy"
)

// Asset is the descriptor for one generated file.
type Asset struct {
	Key     string
	Kind    Kind
	Path    string
	Format  Format
	Quality int
	// Width and Height are the full-size dimensions. Zero means the asset
	// keeps its source's dimensions.
	Width, Height int
	Optional      bool
}

// Decodable reports whether the asset is a raster the generator encodes.
func (a Asset) Decodable() bool {
	return a.Format == FormatWebP || a.Format == FormatPNG
}

// Size returns the dimensions after dividing by downscale, never below 1.
func (a Asset) Size(downscale int) (int, int) {
	return Scale(a.Width, downscale), Scale(a.Height, downscale)
}

// Scale divides n by downscale, keeping at least 1 for positive n.
func Scale(n, downscale int) int {
	if n <= 0 {
		return n
	}
	if downscale <= 1 {
		return n
	}
	return max(1, n/downscale)
}

func webp(key string, kind Kind, path string, w, h int) Asset {
	return Asset{Key: key, Kind: kind, Path: path, Format: FormatWebP, Quality: raster.DefaultQuality, Width: w, Height: h}
}

func png(key string, kind Kind, path string, w, h int) Asset {
	return Asset{Key: key, Kind: kind, Path: path, Format: FormatPNG, Width: w, Height: h}
}

func copied(key string, kind Kind, path string) Asset {
	return Asset{Key: key, Kind: kind, Path: path, Format: FormatCopy}
}

// Tracked is every asset a run must produce, in generation order.
var Tracked = []Asset{
	webp("tunnel_wall_albedo", KindTexture, "textures/tunnel/wall_albedo.webp", 0, 0),
	webp("tunnel_wall_normal", KindTexture, "textures/tunnel/wall_normal.webp", 0, 0),
	webp("tunnel_wall_roughness", KindTexture, "textures/tunnel/wall_roughness.webp", 0, 0),
	webp("tunnel_wall_ao", KindTexture, "textures/tunnel/wall_ao.webp", 0, 0),
	webp("tunnel_floor_albedo", KindTexture, "textures/tunnel/floor_albedo.webp", 0, 0),
	webp("tunnel_floor_normal", KindTexture, "textures/tunnel/floor_normal.webp", 0, 0),
	webp("tunnel_floor_roughness", KindTexture, "textures/tunnel/floor_roughness.webp", 0, 0),
	webp("tunnel_floor_ao", KindTexture, "textures/tunnel/floor_ao.webp", 0, 0),
	webp("tunnel_wall_albedo_1k", KindTexture, "textures/tunnel/wall_albedo_1k.webp", 0, 0),
	webp("tunnel_wall_normal_1k", KindTexture, "textures/tunnel/wall_normal_1k.webp", 0, 0),
	webp("tunnel_wall_roughness_1k", KindTexture, "textures/tunnel/wall_roughness_1k.webp", 0, 0),
	webp("tunnel_floor_albedo_1k", KindTexture, "textures/tunnel/floor_albedo_1k.webp", 0, 0),
	webp("tunnel_floor_normal_1k", KindTexture, "textures/tunnel/floor_normal_1k.webp", 0, 0),
	webp("tunnel_floor_roughness_1k", KindTexture, "textures/tunnel/floor_roughness_1k.webp", 0, 0),
	webp("ceiling_emissive_strip", KindTexture, "textures/lights/ceiling_emissive_strip.webp", 1024, 256),
	webp("portal_gradient", KindTexture, "textures/lights/portal_gradient.webp", 1024, 1024),
	webp("grime_decal_atlas", KindTexture, "textures/decals/grime_atlas.webp", 1024, 1024),
	webp("waveform_mask", KindTexture, "textures/transition/waveform_mask.webp", 1024, 64),
	webp("radial_burst_mask", KindTexture, "textures/transition/radial_burst_mask.webp", 1024, 1024),
	webp("noise_tile", KindTexture, "textures/noise/noise_tile.webp", 512, 512),
	webp("haze_plate_a", KindTexture, "textures/atmosphere/haze_a.webp", 2048, 1024),
	webp("haze_plate_b", KindTexture, "textures/atmosphere/haze_b.webp", 2048, 1024),
	png("dust_soft", KindSprite, "sprites/dust_soft.png", 256, 256),
	png("dust_sharp", KindSprite, "sprites/dust_sharp.png", 256, 256),
	png("glow_soft", KindSprite, "sprites/glow_soft.png", 512, 512),
	png("light_streak", KindSprite, "sprites/light_streak.png", 1024, 128),
	png("confetti_atlas", KindSprite, "sprites/confetti_atlas.png", 1024, 1024),
	webp("film_grain", KindOverlay, "overlays/film_grain.webp", 1024, 1024),
	webp("vignette", KindOverlay, "overlays/vignette.webp", 2048, 2048),
	webp("lens_dirt", KindOverlay, "overlays/lens_dirt.webp", 1024, 1024),
	webp("scanline_overlay", KindOverlay, "overlays/scanline.webp", 1024, 1024),
	png("lut_cool_cinematic", KindLUT, "luts/cool_cinematic.png", 1024, 32),
	copied("env_tunnel", KindHDR, "hdr/env_tunnel_2k.hdr"),
	copied("env_stadium_night", KindHDR, "hdr/env_stadium_night_2k.hdr"),
}

// Model is the optional tunnel mesh, copied when a bundled file exists.
var Model = Asset{Key: "tunnel_model", Kind: KindModel, Path: "models/tunnel.glb", Format: FormatCopy, Optional: true}

// All returns the tracked assets followed by the optional model.
func All() []Asset {
	out := make([]Asset, 0, len(Tracked)+1)
	out = append(out, Tracked...)
	return append(out, Model)
}

// Lookup finds an asset by key.
func Lookup(key string) (Asset, bool) {
	for _, a := range All() {
		if a.Key == key {
			return a, true
		}
	}
	return Asset{}, false
}
