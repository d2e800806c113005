package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
width = 1280
height = 720
title = "lathe"
vsync = false
texture = "fish.png"
clear_color = [0.0, 0.0, 0.0, 1.0]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 1280, config.Width)
	assert.Equal(t, 720, config.Height)
	assert.Equal(t, "lathe", config.Title)
	assert.False(t, config.VSync)
	assert.Equal(t, "fish.png", config.Texture)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, config.ClearColor)
	// untouched keys keep their defaults
	assert.Equal(t, 2, config.Samples)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "width = \"wide\""))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "width = 0"))
	assert.ErrorContains(t, err, "invalid window size")
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	set := flag.NewFlagSet("gapi-demo", flag.ContinueOnError)
	f := newFlags(set)
	require.NoError(t, set.Parse([]string{"-config", path, "-height", "900", "-debug"}))

	config, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, 1280, config.Width)
	assert.Equal(t, 900, config.Height)
	assert.True(t, config.Debug)
	assert.False(t, config.VSync)
}

func TestFlagsWithoutConfig(t *testing.T) {
	set := flag.NewFlagSet("gapi-demo", flag.ContinueOnError)
	f := newFlags(set)
	require.NoError(t, set.Parse(nil))

	config, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
