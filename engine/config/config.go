// Package config materializes the generator settings from viper keys. Flags,
// an optional assetgen.yaml and ASSETGEN_* environment variables all feed the
// same keys.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/1siamBot/herofx-assets/engine/rng"
	"github.com/1siamBot/herofx-assets/engine/sources"
)

// Keys.
const (
	KeyRoot        = "root"
	KeyDownloads   = "downloads"
	KeyGenerated   = "generated"
	KeyRuntime     = "runtime"
	KeyModelSource = "model_source"
	KeySeed        = "seed"
	KeyDownscale   = "downscale"
	KeyQuality     = "quality"
	KeyUserAgent   = "user_agent"
	KeyForce       = "force"
	KeyOffline     = "offline"
	KeySynthetic   = "synthetic"
	KeyInterpreter = "interpreter"
	KeyVerbose     = "verbose"
)

// EnvPrefix prefixes environment overrides, e.g. ASSETGEN_SEED.
const EnvPrefix = "ASSETGEN"

// ModelFile is the bundled tunnel mesh, relative to the root.
const ModelFile = "Assets/Meshy_AI_Tunnel_to_the_Field_0226040001_texture.glb"

type Config struct {
	Root        string
	Downloads   string
	Generated   string
	Runtime     string
	SourcesDoc  string
	ModelSource string

	Seed      int64
	Downscale int
	// Quality, when non-zero, replaces every WebP asset's own quality.
	Quality int

	UserAgent string
	Force     bool
	Offline   bool
	// Synthetic, when positive, writes stand-in sources of this size instead
	// of downloading.
	Synthetic int

	Interpreter string
	Verbose     bool
}

// New returns a viper instance with defaults, config file lookup and
// environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("assetgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every key's default.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeySeed, rng.DefaultSeed)
	v.SetDefault(KeyDownscale, 1)
	v.SetDefault(KeyUserAgent, sources.DefaultUserAgent)
	v.SetDefault(KeyInterpreter, "python3")
}

// ReadFile loads the config file if one is present. A missing file is not an
// error.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// Load builds a validated Config. Unset directories are derived from root.
func Load(v *viper.Viper) (Config, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		root = "."
	}
	free := filepath.Join(root, "Assets", "free-open")
	c := Config{
		Root:        root,
		Downloads:   orDefault(v.GetString(KeyDownloads), filepath.Join(free, "downloads")),
		Generated:   orDefault(v.GetString(KeyGenerated), filepath.Join(free, "generated")),
		Runtime:     orDefault(v.GetString(KeyRuntime), filepath.Join(root, "src", "assets")),
		SourcesDoc:  filepath.Join(free, "SOURCES.md"),
		ModelSource: orDefault(v.GetString(KeyModelSource), filepath.Join(root, filepath.FromSlash(ModelFile))),
		Seed:        v.GetInt64(KeySeed),
		Downscale:   v.GetInt(KeyDownscale),
		Quality:     v.GetInt(KeyQuality),
		UserAgent:   v.GetString(KeyUserAgent),
		Force:       v.GetBool(KeyForce),
		Offline:     v.GetBool(KeyOffline),
		Synthetic:   v.GetInt(KeySynthetic),
		Interpreter: v.GetString(KeyInterpreter),
		Verbose:     v.GetBool(KeyVerbose),
	}
	return c, c.Validate()
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Downscale < 1 {
		errs = append(errs, fmt.Errorf("downscale must be at least 1, got %d", c.Downscale))
	}
	if c.Quality < 0 || c.Quality > 100 {
		errs = append(errs, fmt.Errorf("quality must be within [0,100], got %d", c.Quality))
	}
	if c.Synthetic < 0 {
		errs = append(errs, fmt.Errorf("synthetic size must not be negative, got %d", c.Synthetic))
	}
	if c.Offline && c.Force {
		errs = append(errs, errors.New("force and offline are mutually exclusive"))
	}
	if c.Runtime == c.Generated {
		errs = append(errs, fmt.Errorf("runtime and generated directories must differ (%s)", c.Runtime))
	}
	return errors.Join(errs...)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
