// Package config loads the ganttline configuration file.
//
// The file lives at $XDG_CONFIG_HOME/ganttline/config.toml (falling back to
// ~/.config). Every key is optional; a missing file yields [Default].
//
//	[chart]
//	column_width = 60
//	row_height = 50
//	bar_fill = 60
//	arrow_indent = 20
//	header_height = 50
//	pre_steps = 1
//	view_mode = "day"
//	rtl = false
//
//	[colors]
//	today = "rgba(252, 248, 227, 0.5)"
//	weekend = "transparent"   # disables weekend shading
//	bar = "#b8c2cc"
//	bar_progress = "#a3a3ff"
//	arrow = "grey"
//
//	[cache]
//	backend = "file"          # file, redis or none
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//	prefix = "staging:"       # namespaces keys in a shared cache
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/render/sink"
	"github.com/matzehuels/ganttline/pkg/scene"
)

const appName = "ganttline"

// Config is the decoded configuration file.
type Config struct {
	Chart  Chart  `toml:"chart"`
	Colors Colors `toml:"colors"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Chart holds the layout geometry.
type Chart struct {
	ColumnWidth  float64 `toml:"column_width"`
	RowHeight    float64 `toml:"row_height"`
	BarFill      float64 `toml:"bar_fill"`
	ArrowIndent  float64 `toml:"arrow_indent"`
	HeaderHeight float64 `toml:"header_height"`
	PreSteps     int     `toml:"pre_steps"`
	ViewMode     string  `toml:"view_mode"`
	RTL          bool    `toml:"rtl"`
}

// Colors holds the fills used by the SVG sink.
type Colors struct {
	Today       string `toml:"today"`
	Weekend     string `toml:"weekend"`
	Bar         string `toml:"bar"`
	BarProgress string `toml:"bar_progress"`
	Project     string `toml:"project"`
	Milestone   string `toml:"milestone"`
	Arrow       string `toml:"arrow"`
}

// Cache selects where rendered artifacts are kept.
type Cache struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"`
	TTL      time.Duration `toml:"ttl"`
	RedisURL string        `toml:"redis_url"`
	Prefix   string        `toml:"prefix"`
}

// Server configures the render API.
type Server struct {
	Addr        string        `toml:"addr"`
	ReadTimeout time.Duration `toml:"read_timeout"`
}

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Default returns the built-in configuration.
func Default() Config {
	so := scene.DefaultOptions()
	sc := sink.DefaultColors()
	return Config{
		Chart: Chart{
			ColumnWidth:  so.ColumnWidth,
			RowHeight:    so.RowHeight,
			BarFill:      so.BarFill,
			ArrowIndent:  so.ArrowIndent,
			HeaderHeight: so.HeaderHeight,
			PreSteps:     1,
			ViewMode:     string(chart.ViewDay),
		},
		Colors: Colors{
			Today:       so.TodayColor,
			Weekend:     so.WeekendColor,
			Bar:         sc.Bar,
			BarProgress: sc.BarProgress,
			Project:     sc.Project,
			Milestone:   sc.Milestone,
			Arrow:       sc.Arrow,
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     24 * time.Hour,
		},
		Server: Server{
			Addr:        ":8080",
			ReadTimeout: 10 * time.Second,
		},
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path over [Default]. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Validate checks the values a file may get wrong.
func (c Config) Validate() error {
	ch := c.Chart
	switch {
	case ch.ColumnWidth <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "chart.column_width must be positive")
	case ch.RowHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "chart.row_height must be positive")
	case ch.BarFill <= 0 || ch.BarFill > 100:
		return errors.New(errors.ErrCodeInvalidConfig, "chart.bar_fill must be in (0, 100]")
	case ch.ArrowIndent < 0 || ch.HeaderHeight < 0 || ch.PreSteps < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "chart.arrow_indent, header_height and pre_steps must not be negative")
	}
	if _, err := chart.ParseViewMode(ch.ViewMode); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if strings.ContainsAny(c.Cache.Prefix, "/\\ \t\n") {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.prefix %q must not contain slashes or whitespace", c.Cache.Prefix)
	}
	return nil
}

// SceneOptions returns the layout options the configuration implies.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		ColumnWidth:  c.Chart.ColumnWidth,
		RowHeight:    c.Chart.RowHeight,
		BarFill:      c.Chart.BarFill,
		ArrowIndent:  c.Chart.ArrowIndent,
		HeaderHeight: c.Chart.HeaderHeight,
		RTL:          c.Chart.RTL,
		TodayColor:   c.Colors.Today,
		WeekendColor: c.Colors.Weekend,
	}
}

// SinkColors returns the palette for the SVG sink.
func (c Config) SinkColors() sink.Colors {
	return sink.Colors{
		Bar:         c.Colors.Bar,
		BarProgress: c.Colors.BarProgress,
		Project:     c.Colors.Project,
		Milestone:   c.Colors.Milestone,
		Arrow:       c.Colors.Arrow,
	}
}
