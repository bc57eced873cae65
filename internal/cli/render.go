package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/chart"
	chartio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/pipeline"
)

// renderOpts holds the flags shared by render and layout.
type renderOpts struct {
	output      string
	formats     string
	view        viewModeValue
	now         timeValue
	rtl         bool
	columnWidth float64
	rowHeight   float64
	preSteps    int
	scale       float64
	noLabels    bool
	noCache     bool
	refresh     bool
}

func (o *renderOpts) addLayoutFlags(cmd *cobra.Command, c *CLI) {
	f := cmd.Flags()
	f.Var(&o.view, "view", "view mode: hour, quarter-day, half-day, day, week, month, year (default from chart)")
	f.Var(&o.now, "now", "instant the today marker shows (default current time)")
	f.BoolVar(&o.rtl, "rtl", false, "lay out right to left")
	f.Float64Var(&o.columnWidth, "column-width", c.Config.Chart.ColumnWidth, "column width in pixels")
	f.Float64Var(&o.rowHeight, "row-height", c.Config.Chart.RowHeight, "row height in pixels")
	f.IntVar(&o.preSteps, "pre-steps", c.Config.Chart.PreSteps, "empty columns before the first task")
	f.BoolVar(&o.noCache, "no-cache", false, "disable the cache")
	f.BoolVar(&o.refresh, "refresh", false, "ignore cached results")
}

// apply layers the flags that were set over the configuration.
func (o *renderOpts) apply(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	opts.ViewMode = chart.ViewMode(o.view)
	opts.Now = o.now.t
	opts.Refresh = o.refresh
	if f.Changed("rtl") {
		opts.Scene.RTL = o.rtl
	}
	if f.Changed("column-width") {
		opts.Scene.ColumnWidth = o.columnWidth
	}
	if f.Changed("row-height") {
		opts.Scene.RowHeight = o.rowHeight
	}
	if f.Changed("pre-steps") {
		opts.PreSteps = o.preSteps
	}
	if f.Lookup("scale") != nil && f.Changed("scale") {
		opts.Scale = o.scale
	}
	if o.noLabels {
		opts.Labels = false
	}
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render <chart>",
		Short: "Render a chart file to SVG, JSON, PNG or PDF",
		Long: `Render a chart file (JSON, YAML or TOML) to one or more formats.

With a single format, -o names the output file ("-" writes to stdout).
With several formats, -o is a base path and each format adds its own
extension. Without -o the outputs are written next to the chart.`,
		Example: `  ganttline render plan.yaml
  ganttline render plan.yaml -f svg,png -o out/plan
  ganttline render plan.json --view week --rtl -o - > plan.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or base path for several formats")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output formats: svg, json, png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "omit task names")
	opts.addLayoutFlags(cmd, c)
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, ro *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	formats := parseFormats(ro.formats)
	if ro.output == "-" && len(formats) > 1 {
		return fmt.Errorf("-o - writes a single format, got %d", len(formats))
	}

	paths := outputPaths(path, ro.output, formats)
	if ro.output != "-" {
		for _, p := range paths {
			if filepath.Clean(p) == filepath.Clean(path) {
				return fmt.Errorf("output %s would overwrite the chart; pass -o", p)
			}
		}
	}

	ch, err := chartio.ImportChart(path)
	if err != nil {
		return err
	}
	opts := c.pipelineOptions()
	opts.Formats = formats
	ro.apply(cmd, &opts)

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	stop := c.startSpinner(ctx, formats)
	res, err := runner.Execute(ctx, ch, opts)
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ro.output == "-" {
		_, err := out.Write(res.Artifacts[formats[0]])
		return err
	}

	for _, f := range formats {
		if err := writeFile(paths[f], res.Artifacts[f]); err != nil {
			return err
		}
	}
	prog.done("Rendered "+filepath.Base(path), "formats", strings.Join(formats, ","))

	printSuccess(out, "Rendered %s", path)
	printStats(out, res.Stats.Tasks, res.Stats.Arrows, res.Stats.Columns, res.CacheInfo.RenderHit)
	for _, f := range formats {
		printFile(out, paths[f])
	}
	return nil
}

// startSpinner shows a spinner on an interactive stderr while rsvg-convert
// runs. The returned func stops it.
func (c *CLI) startSpinner(ctx context.Context, formats []string) func() {
	slow := slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
	if !slow || c.verbose || !isTerminal(os.Stderr) {
		return func() {}
	}
	s := newSpinner(ctx, os.Stderr, "Converting...")
	s.Start()
	return s.Stop
}

// parseFormats splits a comma-separated --format value.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{pipeline.FormatSVG}
	}
	return out
}

// outputPaths maps each format to the file it is written to.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = input
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
