package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo settings. It can be read from a TOML file; flags
// given on the command line take precedence.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	VSync   bool   `toml:"vsync"`
	Debug   bool   `toml:"debug"`
	Samples int    `toml:"samples"`

	// Shader is a #type file; the embedded shader is used when empty.
	Shader string `toml:"shader"`
	// Texture is an image file; a checkerboard is used when empty.
	Texture string `toml:"texture"`

	ClearColor [4]float32 `toml:"clear_color"`
}

func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "gapi",
		VSync:      true,
		Samples:    2,
		ClearColor: [4]float32{0x26 / 255.0, 0x42 / 255.0, 0x6b / 255.0, 1.0},
	}
}

// LoadConfig decodes the TOML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("unable to read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("unable to parse config %q: %w", path, err)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return config, fmt.Errorf("config %q: invalid window size %dx%d", path, config.Width, config.Height)
	}
	return config, nil
}

// flags binds the config fields that can be overridden on the command line.
type flags struct {
	set *flag.FlagSet

	config     *string
	cpuprofile *string

	width, height *int
	vsync, debug  *bool
	shader        *string
	texture       *string
}

func newFlags(set *flag.FlagSet) *flags {
	defaults := DefaultConfig()
	return &flags{
		set:        set,
		config:     set.String("config", "", "TOML config file"),
		cpuprofile: set.String("cpuprofile", "", "profile"),
		width:      set.Int("width", defaults.Width, "window width"),
		height:     set.Int("height", defaults.Height, "window height"),
		vsync:      set.Bool("vsync", defaults.VSync, "wait for vertical sync"),
		debug:      set.Bool("debug", defaults.Debug, "check gl errors after driver calls"),
		shader:     set.String("shader", "", "#type shader file"),
		texture:    set.String("texture", "", "albedo texture"),
	}
}

// Config loads the config file, if any, and applies explicitly set flags.
func (f *flags) Config() (Config, error) {
	config := DefaultConfig()
	if *f.config != "" {
		var err error
		config, err = LoadConfig(*f.config)
		if err != nil {
			return config, err
		}
	}

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			config.Width = *f.width
		case "height":
			config.Height = *f.height
		case "vsync":
			config.VSync = *f.vsync
		case "debug":
			config.Debug = *f.debug
		case "shader":
			config.Shader = *f.shader
		case "texture":
			config.Texture = *f.texture
		}
	})
	return config, nil
}
