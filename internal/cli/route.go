package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/geom"
	"github.com/matzehuels/ganttline/pkg/layout/arrow"
	"github.com/matzehuels/ganttline/pkg/layout/bar"
)

type routeOpts struct {
	from, to       spanValue
	fromRow, toRow int
	relation       relationValue
	rtl            bool
	rowHeight      float64
	barFill        float64
	indent         float64
	asJSON         bool
}

type routeOutput struct {
	Relation chart.RelationType `json:"relation"`
	D        string             `json:"d"`
	Points   []geom.Point       `json:"points"`
	Head     geom.Triangle      `json:"head"`
}

func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{toRow: 1}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Route one dependency arrow between two bars",
		Long: `Route a single connector between two bars given by their horizontal
extent and row, and print the SVG path data and the arrowhead vertices.`,
		Example: `  ganttline route --from 0,120 --to 120,240
  ganttline route --from 200,290 --to 100,200 --relation EndToStart --json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if !f.Changed("row-height") {
				opts.rowHeight = c.Config.Chart.RowHeight
			}
			if !f.Changed("bar-fill") {
				opts.barFill = c.Config.Chart.BarFill
			}
			if !f.Changed("indent") {
				opts.indent = c.Config.Chart.ArrowIndent
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.Var(&opts.from, "from", "source bar extent")
	f.Var(&opts.to, "to", "target bar extent")
	f.IntVar(&opts.fromRow, "from-row", 0, "source row")
	f.IntVar(&opts.toRow, "to-row", 1, "target row")
	f.Var(&opts.relation, "relation", "EndToStart, StartToStart, StartToEnd or EndToEnd")
	f.BoolVar(&opts.rtl, "rtl", false, "route right to left")
	f.Float64Var(&opts.rowHeight, "row-height", 50, "row height in pixels")
	f.Float64Var(&opts.barFill, "bar-fill", 60, "bar height as a percentage of the row")
	f.Float64Var(&opts.indent, "indent", 20, "horizontal stand-off before the first and last turn")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runRoute(cmd *cobra.Command, o *routeOpts) error {
	if o.rowHeight <= 0 || o.barFill <= 0 || o.barFill > 100 {
		return fmt.Errorf("row height must be positive and bar fill in (0, 100]")
	}
	if o.fromRow < 0 || o.toRow < 0 {
		return fmt.Errorf("rows must not be negative")
	}

	bo := bar.Options{RowHeight: o.rowHeight, BarFill: o.barFill}
	from := routeBar(o.from, o.fromRow, bo)
	to := routeBar(o.to, o.toRow, bo)
	rel := chart.RelationType(o.relation)

	conn := arrow.Route(from, to, rel, arrow.Geometry{
		RowHeight: o.rowHeight,
		BarHeight: bo.BarHeight(),
		Indent:    o.indent,
	}, o.rtl)

	out := cmd.OutOrStdout()
	if o.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(routeOutput{Relation: rel, D: conn.Path.String(), Points: conn.Path.Points(), Head: conn.Head})
	}
	fmt.Fprintf(out, "path %s\n", conn.Path)
	fmt.Fprintf(out, "head %s\n", conn.Head)
	return nil
}

func routeBar(s spanValue, row int, o bar.Options) bar.Bar {
	h := o.BarHeight()
	return bar.Bar{
		X1:     s.x1,
		X2:     s.x2,
		Y:      float64(row)*o.RowHeight + (o.RowHeight-h)/2,
		Height: h,
		Index:  row,
	}
}
