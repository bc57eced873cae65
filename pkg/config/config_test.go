package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/ganttline/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}

	so := cfg.SceneOptions()
	if so.ColumnWidth != 60 || so.RowHeight != 50 || so.BarFill != 60 || so.ArrowIndent != 20 || so.HeaderHeight != 50 {
		t.Errorf("SceneOptions() = %+v", so)
	}
	if so.TodayColor != "rgba(252, 248, 227, 0.5)" || so.WeekendColor != "rgba(0, 0, 0, 0.04)" {
		t.Errorf("colors = %q, %q", so.TodayColor, so.WeekendColor)
	}
	if cfg.Chart.PreSteps != 1 || cfg.Chart.ViewMode != "day" {
		t.Errorf("chart = %+v", cfg.Chart)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[chart]
column_width = 40
rtl = true
view_mode = "week"

[colors]
weekend = "transparent"
arrow = "#333"

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"
ttl = "90m"
prefix = "staging:"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Chart.ColumnWidth != 40 || !cfg.Chart.RTL || cfg.Chart.ViewMode != "week" {
		t.Errorf("chart = %+v", cfg.Chart)
	}
	if cfg.Chart.RowHeight != 50 {
		t.Errorf("RowHeight = %v, want default 50 kept", cfg.Chart.RowHeight)
	}
	if cfg.SceneOptions().WeekendColor != "transparent" || cfg.SinkColors().Arrow != "#333" {
		t.Errorf("colors = %+v", cfg.Colors)
	}
	if cfg.Cache.TTL != 90*time.Minute || cfg.Cache.Backend != BackendRedis || cfg.Cache.Prefix != "staging:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[chart\n"},
		{"unknown key", "[chart]\ncolumn_wdth = 10\n"},
		{"zero column width", "[chart]\ncolumn_width = 0\n"},
		{"bar fill over 100", "[chart]\nbar_fill = 120\n"},
		{"unknown backend", "[cache]\nbackend = \"s3\"\n"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n"},
		{"prefix with slash", "[cache]\nprefix = \"a/b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}

	if _, err := Load(writeConfig(t, "[chart]\nview_mode = \"decade\"\n")); !errors.Is(err, errors.ErrCodeInvalidViewMode) {
		t.Errorf("Load() error = %v, want INVALID_VIEW_MODE", err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "ganttline", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
