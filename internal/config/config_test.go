package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.AutoSaveIdle.D())
	assert.Equal(t, time.Second, cfg.RunDelay.D())
	assert.Equal(t, 800*time.Millisecond, cfg.VisualizeDelay.D())
	assert.Equal(t, 14, cfg.ZoomDefault)
	assert.Equal(t, "code.cpp", cfg.ExportName)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().StateDir, cfg.StateDir)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cppviz.yaml")

	original := DefaultSettings()
	original.Store = "sqlite"
	original.RunDelay = Duration(250 * time.Millisecond)
	original.AcceptExt = []string{".cc", ".hpp"}
	original.ZoomMax = 24
	require.NoError(t, original.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "run_delay: 250ms")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", loaded.Store)
	assert.Equal(t, 250*time.Millisecond, loaded.RunDelay.D())
	assert.Equal(t, []string{".cc", ".hpp"}, loaded.AcceptExt)
	assert.Equal(t, 24, loaded.ZoomMax)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CPPVIZ_STORE", "sqlite")
	t.Setenv("CPPVIZ_AUTOSAVE_IDLE", "5s")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 5*time.Second, cfg.AutoSaveIdle.D())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Settings){
		"store":        func(s *Settings) { s.Store = "redis" },
		"export name":  func(s *Settings) { s.ExportName = "../x.cpp" },
		"zoom range":   func(s *Settings) { s.ZoomMax = 5 },
		"zoom default": func(s *Settings) { s.ZoomDefault = 30 },
		"autosave":     func(s *Settings) { s.AutoSaveIdle = 0 },
	}
	for name, mutate := range cases {
		cfg := DefaultSettings()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestAccepts(t *testing.T) {
	cfg := DefaultSettings()
	assert.True(t, cfg.Accepts("main.CPP"))
	assert.True(t, cfg.Accepts("dir/x.h"))
	assert.False(t, cfg.Accepts("notes.md"))
}
