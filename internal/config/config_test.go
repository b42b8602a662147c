package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := Default()
	want.LogLevel = "debug"
	want.Scroll.DurationMs = 400
	want.Scroll.Easing = "spring"
	want.Scroll.LockCursor = true
	want.UI.FoldIcon = "+"

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scroll]\nmargin = 4\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scroll.Margin)
	assert.Equal(t, Default().Scroll.DurationMs, cfg.Scroll.DurationMs)
	assert.Equal(t, Default().UI, cfg.UI)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("scroll = {"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNormalizeClampsInvalidValues(t *testing.T) {
	cfg := Config{
		Scroll: ScrollConfig{
			DurationMs:    -5,
			FPS:           9000,
			Margin:        -1,
			Easing:        "bounce",
			SineSteepness: 0,
			SineBias:      0.9,
			EaseOutSlope:  0.2,
		},
	}
	got := cfg.Normalize()
	def := Default()
	assert.Equal(t, def.Scroll.DurationMs, got.Scroll.DurationMs)
	assert.Equal(t, def.Scroll.FPS, got.Scroll.FPS)
	assert.Equal(t, def.Scroll.Margin, got.Scroll.Margin)
	assert.Equal(t, def.Scroll.Easing, got.Scroll.Easing)
	assert.Equal(t, def.Scroll.SineSteepness, got.Scroll.SineSteepness)
	assert.Equal(t, def.Scroll.SineBias, got.Scroll.SineBias)
	assert.Equal(t, def.Scroll.EaseOutSlope, got.Scroll.EaseOutSlope)
	assert.Equal(t, def.UI.FoldIcon, got.UI.FoldIcon)
}
