package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultFile is the config path used when --config is not given.
const DefaultFile = "cppviz.yaml"

// EnvPrefix marks environment overrides: CPPVIZ_AUTOSAVE_IDLE -> autosave_idle.
const EnvPrefix = "CPPVIZ_"

// Duration is a time.Duration that reads and writes as "30s" style strings.
type Duration time.Duration

func (d Duration) D() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

// Settings is the on-disk configuration (cppviz.yaml).
type Settings struct {
	StateDir   string   `yaml:"state_dir" koanf:"state_dir"`
	Store      string   `yaml:"store" koanf:"store"` // json | sqlite
	ExportDir  string   `yaml:"export_dir" koanf:"export_dir"`
	ExportName string   `yaml:"export_name" koanf:"export_name"`
	AcceptExt  []string `yaml:"accept_ext" koanf:"accept_ext"`

	AutoSaveIdle   Duration `yaml:"autosave_idle" koanf:"autosave_idle"`
	RunDelay       Duration `yaml:"run_delay" koanf:"run_delay"`
	VisualizeDelay Duration `yaml:"visualize_delay" koanf:"visualize_delay"`
	DebugDelay     Duration `yaml:"debug_delay" koanf:"debug_delay"`
	WelcomeDelay   Duration `yaml:"welcome_delay" koanf:"welcome_delay"`

	ZoomMin     int `yaml:"zoom_min" koanf:"zoom_min"`
	ZoomMax     int `yaml:"zoom_max" koanf:"zoom_max"`
	ZoomDefault int `yaml:"zoom_default" koanf:"zoom_default"`

	LogFile  string `yaml:"log_file" koanf:"log_file"` // empty: <state_dir>/cppviz.log
	LogLevel string `yaml:"log_level" koanf:"log_level"`
	NoColor  bool   `yaml:"no_color" koanf:"no_color"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		StateDir:       ".cppviz",
		Store:          "json",
		ExportDir:      ".",
		ExportName:     "code.cpp",
		AcceptExt:      []string{".cpp", ".h", ".txt"},
		AutoSaveIdle:   Duration(30 * time.Second),
		RunDelay:       Duration(time.Second),
		VisualizeDelay: Duration(800 * time.Millisecond),
		DebugDelay:     Duration(600 * time.Millisecond),
		WelcomeDelay:   Duration(500 * time.Millisecond),
		ZoomMin:        10,
		ZoomMax:        20,
		ZoomDefault:    14,
		LogLevel:       "info",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CPPVIZ_*). A missing file is not an error.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	cfg := DefaultSettings()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	// lists replace the defaults instead of merging index by index
	if k.Exists("accept_ext") {
		cfg.AcceptExt = k.Strings("accept_ext")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validStores = map[string]bool{"json": true, "sqlite": true}

// Validate checks that the configuration contains usable values.
func (c *Settings) Validate() error {
	if c.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	if !validStores[c.Store] {
		return fmt.Errorf("invalid store %q: must be json or sqlite", c.Store)
	}
	if c.ExportName == "" || strings.ContainsAny(c.ExportName, `/\`) {
		return fmt.Errorf("invalid export_name %q", c.ExportName)
	}
	if c.ZoomMin <= 0 || c.ZoomMax < c.ZoomMin {
		return fmt.Errorf("zoom range %d..%d is empty", c.ZoomMin, c.ZoomMax)
	}
	if c.ZoomDefault < c.ZoomMin || c.ZoomDefault > c.ZoomMax {
		return fmt.Errorf("zoom_default %d outside %d..%d", c.ZoomDefault, c.ZoomMin, c.ZoomMax)
	}
	if c.AutoSaveIdle <= 0 {
		return fmt.Errorf("autosave_idle must be positive")
	}
	for _, d := range []Duration{c.RunDelay, c.VisualizeDelay, c.DebugDelay, c.WelcomeDelay} {
		if d < 0 {
			return fmt.Errorf("delays must be non-negative")
		}
	}
	return nil
}

// LogPath resolves the diagnostics log location.
func (c *Settings) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.StateDir, "cppviz.log")
}

// ExportPath is where the save command writes the buffer.
func (c *Settings) ExportPath() string {
	return filepath.Join(c.ExportDir, c.ExportName)
}

// Accepts reports whether name carries one of the accepted extensions.
// It only filters picker suggestions; any path typed by hand is still read.
func (c *Settings) Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.AcceptExt {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
