// Package sources acquires the third-party files the generators read: CC0
// material packs from ambientCG and example textures from the three.js
// repository.
package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Group names who a source file is attributed to.
type Group string

const (
	GroupAmbientCG Group = "ambientcg"
	GroupThreeJS   Group = "threejs"
)

// Source is one downloadable file.
type Source struct {
	Name  string
	URL   string
	Group Group
}

// File names the pipeline reads.
const (
	WallZip2K  = "Concrete013_2K-JPG.zip"
	WallZip1K  = "Concrete013_1K-JPG.zip"
	FloorZip2K = "Concrete047A_2K-JPG.zip"
	FloorZip1K = "Concrete047A_1K-JPG.zip"

	Disc      = "disc.png"
	Spark     = "spark1.png"
	Snowflake = "snowflake1.png"
	Ball      = "ball.png"
	Blossom   = "blossom.png"
	LensFlare = "lensflare0.png"
	Smoke     = "smoke1.png"
	Caustic   = "caustic_free.jpg"
	NoiseTex  = "noise.png"

	VeniceSunset = "venice_sunset_1k.hdr"
	SanGiuseppe  = "san_giuseppe_bridge_2k.hdr"
)

// Material pack members, matched by suffix.
const (
	MemberColor     = "_Color.jpg"
	MemberNormal    = "_NormalGL.jpg"
	MemberRoughness = "_Roughness.jpg"
	MemberAO        = "_AmbientOcclusion.jpg"
)

const (
	ambientCGBase = "https://ambientcg.com/get?file="
	threeBase     = "https://raw.githubusercontent.com/mrdoob/three.js/dev/examples/textures/"
)

func ambientCG(name string) Source {
	return Source{Name: name, URL: ambientCGBase + name, Group: GroupAmbientCG}
}

func three(name, path string) Source {
	return Source{Name: name, URL: threeBase + path, Group: GroupThreeJS}
}

// Default is the full download list, in download order.
var Default = []Source{
	ambientCG(WallZip2K),
	ambientCG(WallZip1K),
	ambientCG(FloorZip2K),
	ambientCG(FloorZip1K),
	three(Disc, "sprites/disc.png"),
	three(Spark, "sprites/spark1.png"),
	three(Snowflake, "sprites/snowflake1.png"),
	three(Ball, "sprites/ball.png"),
	three(Blossom, "sprites/blossom.png"),
	three(LensFlare, "lensflare/lensflare0.png"),
	three(Smoke, "opengameart/smoke1.png"),
	three(Caustic, "opengameart/Caustic_Free.jpg"),
	three(NoiseTex, "noise.png"),
	three(VeniceSunset, "equirectangular/venice_sunset_1k.hdr"),
	three(SanGiuseppe, "equirectangular/san_giuseppe_bridge_2k.hdr"),
}

// Catalog maps logical source names to local files. It is read-only once
// built.
type Catalog struct {
	Dir     string
	sources map[string]Source
}

func newCatalog(dir string, list []Source) *Catalog {
	c := &Catalog{Dir: dir, sources: make(map[string]Source, len(list))}
	for _, s := range list {
		c.sources[s.Name] = s
	}
	return c
}

// Path returns the local path of a source file.
func (c *Catalog) Path(name string) string {
	return filepath.Join(c.Dir, name)
}

// Source returns the descriptor a name was registered with.
func (c *Catalog) Source(name string) (Source, bool) {
	s, ok := c.sources[name]
	return s, ok
}

// Open builds a catalog over files already present in dir. Every listed file
// must exist.
func Open(dir string, list []Source) (*Catalog, error) {
	var errs []error
	for _, s := range list {
		info, err := os.Stat(filepath.Join(dir, s.Name))
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("source %s: %w", s.Name, err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("source %s is a directory", s.Name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return newCatalog(dir, list), nil
}
