package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/shaderkit/engine/colors"
)

// Config for the engine run. Loaded from TOML; see DefaultConfig for the
// values used when a key is absent.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`
	LogLevel   string       `toml:"log_level"`
	Shaders    ShaderConfig `toml:"shaders"`
}

// ShaderConfig names the vertex/fragment pair to build, relative to Dir.
type ShaderConfig struct {
	Dir       string `toml:"dir"`
	Vertex    string `toml:"vertex"`
	Fragment  string `toml:"fragment"`
	HotReload bool   `toml:"hot_reload"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "shaderview",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		LogLevel:   "info",
		Shaders: ShaderConfig{
			Dir:       "assets/shaders",
			Vertex:    "basic.vert",
			Fragment:  "basic.frag",
			HotReload: true,
		},
	}
}

// LoadConfig decodes path over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("read config %q: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Shaders.Vertex == "" {
		errs = append(errs, errors.New("shaders.vertex is required"))
	}
	if c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shaders.fragment is required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
