package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
)

const jsonChart = `{
  "view_mode": "week",
  "tasks": [
    {"id": "a", "name": "Design", "start": "2024-03-04", "end": "2024-03-08", "progress": 40},
    {"id": "b", "name": "Build", "start": "2024-03-08T09:00:00Z", "end": "2024-03-20", "depends_on": ["a"]},
    {"id": "c", "start": "2024-03-11", "end": "2024-03-22", "dependencies": [{"id": "b", "type": "end-to-end"}]}
  ]
}`

const yamlChart = `
view_mode: week
tasks:
  - id: a
    name: Design
    start: 2024-03-04
    end: 2024-03-08
    progress: 40
  - id: b
    name: Build
    start: 2024-03-08T09:00:00Z
    end: 2024-03-20
    depends_on: [a]
  - id: c
    start: "2024-03-11"
    end: 2024-03-22
    dependencies:
      - id: b
        type: end-to-end
`

const tomlChart = `
view_mode = "week"

[[tasks]]
id = "a"
name = "Design"
start = 2024-03-04
end = "2024-03-08"
progress = 40.0

[[tasks]]
id = "b"
name = "Build"
start = 2024-03-08T09:00:00Z
end = 2024-03-20
depends_on = ["a"]

[[tasks]]
id = "c"
start = 2024-03-11
end = 2024-03-22

[[tasks.dependencies]]
id = "b"
type = "end-to-end"
`

func checkChart(t *testing.T, c *chart.Chart) {
	t.Helper()
	if c.ViewMode != chart.ViewWeek {
		t.Errorf("ViewMode = %q, want week", c.ViewMode)
	}
	if len(c.Tasks) != 3 {
		t.Fatalf("len(Tasks) = %d, want 3", len(c.Tasks))
	}

	a := c.Tasks[0]
	if !a.Start.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("a.Start = %v", a.Start)
	}
	if a.Progress != 40 || a.Type != chart.TypeTask {
		t.Errorf("a progress = %v type = %q", a.Progress, a.Type)
	}

	b := c.Tasks[1]
	if !b.Start.Equal(time.Date(2024, time.March, 8, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("b.Start = %v", b.Start)
	}
	if len(b.Dependencies) != 1 || b.Dependencies[0] != (chart.Dependency{ID: "a", Type: chart.EndToStart}) {
		t.Errorf("b.Dependencies = %v", b.Dependencies)
	}

	cc := c.Tasks[2]
	if len(cc.Dependencies) != 1 || cc.Dependencies[0] != (chart.Dependency{ID: "b", Type: chart.EndToEnd}) {
		t.Errorf("c.Dependencies = %v", cc.Dependencies)
	}
}

func TestReadChart(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{JSON, jsonChart},
		{YAML, yamlChart},
		{TOML, tomlChart},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c, err := ReadChart(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadChart() error: %v", err)
			}
			checkChart(t, c)
		})
	}
}

func TestReadChartErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"malformed json", JSON, `{"tasks": [`, errors.ErrCodeInvalidInput},
		{"unknown field", JSON, `{"tasks": [], "colour": "red"}`, errors.ErrCodeInvalidInput},
		{"bad date", JSON, `{"tasks": [{"id": "a", "start": "March 4", "end": "2024-03-05"}]}`, errors.ErrCodeInvalidInput},
		{"bad view mode", YAML, "view_mode: fortnight\ntasks: []\n", errors.ErrCodeInvalidViewMode},
		{"bad relation", YAML, "tasks:\n  - {id: a, start: 2024-01-01, end: 2024-01-02}\n  - {id: b, start: 2024-01-01, end: 2024-01-02, dependencies: [{id: a, type: sideways}]}\n", errors.ErrCodeInvalidRelation},
		{"unknown dependency", JSON, `{"tasks": [{"id": "a", "start": "2024-01-01", "end": "2024-01-02", "depends_on": ["z"]}]}`, errors.ErrCodeUnknownTask},
		{"end before start", TOML, "[[tasks]]\nid = \"a\"\nstart = 2024-01-05\nend = 2024-01-02\n", errors.ErrCodeInvalidChart},
		{"unknown format", Format("xml"), "<chart/>", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadChart(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("ReadChart() error = nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadChart() error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadChartGeneratesIDs(t *testing.T) {
	c, err := ReadChart(strings.NewReader(`{"tasks": [{"name": "anon", "start": "2024-01-01", "end": "2024-01-02"}]}`), JSON)
	if err != nil {
		t.Fatalf("ReadChart() error: %v", err)
	}
	if _, err := uuid.Parse(c.Tasks[0].ID); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", c.Tasks[0].ID, err)
	}
	if c.ViewMode != chart.ViewDay {
		t.Errorf("ViewMode = %q, want default day", c.ViewMode)
	}
}

func TestReadChartStableIDs(t *testing.T) {
	const anon = `{"tasks": [
		{"name": "anon", "start": "2024-01-01", "end": "2024-01-02"},
		{"name": "anon", "start": "2024-01-02", "end": "2024-01-03"},
		{"name": "other", "start": "2024-01-03", "end": "2024-01-04"}
	]}`
	read := func() *chart.Chart {
		t.Helper()
		c, err := ReadChart(strings.NewReader(anon), JSON)
		if err != nil {
			t.Fatalf("ReadChart() error: %v", err)
		}
		return c
	}

	first, second := read(), read()
	for i := range first.Tasks {
		if got, want := second.Tasks[i].ID, first.Tasks[i].ID; got != want {
			t.Errorf("task %d id = %q on re-read, want %q", i, got, want)
		}
	}

	tests := []struct {
		name string
		a, b int
	}{
		{"same name, different position", 0, 1},
		{"different name", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if first.Tasks[tt.a].ID == first.Tasks[tt.b].ID {
				t.Errorf("tasks %d and %d share id %q", tt.a, tt.b, first.Tasks[tt.a].ID)
			}
		})
	}
}

func TestWriteChartRoundTrip(t *testing.T) {
	src, err := ReadChart(strings.NewReader(jsonChart), JSON)
	if err != nil {
		t.Fatalf("ReadChart() error: %v", err)
	}

	for _, format := range []Format{JSON, YAML, TOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteChart(src, &buf, format); err != nil {
				t.Fatalf("WriteChart() error: %v", err)
			}
			got, err := ReadChart(&buf, format)
			if err != nil {
				t.Fatalf("ReadChart() of written chart error: %v\n%s", err, buf.String())
			}
			checkChart(t, got)
		})
	}

	if err := WriteChart(src, &bytes.Buffer{}, Format("xml")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("WriteChart(xml) error = %v, want INVALID_FORMAT", err)
	}
}

func TestImportChart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yml")
	if err := os.WriteFile(path, []byte(yamlChart), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := ImportChart(path)
	if err != nil {
		t.Fatalf("ImportChart() error: %v", err)
	}
	checkChart(t, c)

	if _, err := ImportChart(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportChart(missing) error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := ImportChart(filepath.Join(dir, "plan")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ImportChart(no extension) error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{".JSON", JSON},
		{"yml", YAML},
		{".yaml", YAML},
		{"toml", TOML},
	}
	for _, tt := range tests {
		if got, err := ParseFormat(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv) error = nil")
	}
}
