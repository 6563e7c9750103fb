package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chewxy/math32"
	"golang.org/x/mobile/asset"
)

// ConfigAsset is the name of the optional configuration asset.
const ConfigAsset = "lesson1.toml"

// Config holds the tunable parameters of the scene.
type Config struct {
	FovY       float32    `toml:"fov_y"` // degrees
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// DefaultConfig returns the configuration used when no asset is present.
func DefaultConfig() Config {
	return Config{
		FovY:       45,
		Near:       0.1,
		Far:        100,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// Projection returns the camera described by cfg.
func (cfg Config) Projection() Projection {
	return Projection{FovY: cfg.FovY, Near: cfg.Near, Far: cfg.Far}
}

// Validate returns an error if cfg cannot produce a usable projection.
func (cfg Config) Validate() error {
	for _, v := range []struct {
		key string
		val float32
	}{
		{"fov_y", cfg.FovY},
		{"near", cfg.Near},
		{"far", cfg.Far},
		{"clear_color", cfg.ClearColor[0]},
		{"clear_color", cfg.ClearColor[1]},
		{"clear_color", cfg.ClearColor[2]},
		{"clear_color", cfg.ClearColor[3]},
	} {
		if math32.IsNaN(v.val) || math32.IsInf(v.val, 0) {
			return fmt.Errorf("%s must be finite: %v", v.key, v.val)
		}
	}
	if cfg.FovY <= 0 || cfg.FovY >= 180 {
		return fmt.Errorf("fov_y must be between 0 and 180 degrees: %v", cfg.FovY)
	}
	if cfg.Near <= 0 {
		return fmt.Errorf("near must be positive: %v", cfg.Near)
	}
	if cfg.Far <= cfg.Near {
		return fmt.Errorf("far (%v) must be greater than near (%v)", cfg.Far, cfg.Near)
	}
	return nil
}

// LoadConfig decodes a TOML configuration from r. Keys absent from r keep
// their default values. Unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return DefaultConfig(), fmt.Errorf("invalid config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfigAsset loads the configuration asset at path. A missing asset is
// not an error and results in DefaultConfig.
func LoadConfigAsset(path string) (Config, error) {
	f, err := asset.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}
	defer f.Close()
	return LoadConfig(f)
}
