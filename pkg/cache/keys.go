package cache

import "time"

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a scene laid out from a chart.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered file of a scene.
	ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists every input of the layout besides the chart.
type LayoutKeyOpts struct {
	ViewMode     string    `json:"view_mode"`
	PreSteps     int       `json:"pre_steps"`
	ColumnWidth  float64   `json:"column_width"`
	RowHeight    float64   `json:"row_height"`
	BarFill      float64   `json:"bar_fill"`
	ArrowIndent  float64   `json:"arrow_indent"`
	HeaderHeight float64   `json:"header_height"`
	RTL          bool      `json:"rtl"`
	TodayColor   string    `json:"today_color"`
	WeekendColor string    `json:"weekend_color"`
	Now          time.Time `json:"now"`
}

// ArtifactKeyOpts lists every input of a sink besides the scene.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Colors string  `json:"colors,omitempty"`
	Font   string  `json:"font,omitempty"`
	Labels bool    `json:"labels"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes the inputs of each key kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey truncates opts.Now to the minute.
func (DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	opts.Now = opts.Now.UTC().Truncate(time.Minute)
	return hashKey("layout", chartHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutKey, opts)
}
