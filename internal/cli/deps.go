package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/render/depgraph"
)

func (c *CLI) depsCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		vertical bool
	)
	cmd := &cobra.Command{
		Use:   "deps <chart>",
		Short: "Draw the task dependency graph",
		Long: `Draw the tasks of a chart as a graph with one edge per dependency,
laid out by graphviz. Edges other than EndToStart are labeled with their
relation type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := chartio.ImportChart(args[0])
			if err != nil {
				return err
			}
			dot := depgraph.ToDOT(ch, depgraph.Options{Detailed: detailed, Horizontal: !vertical})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				if data, err = depgraph.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid format %q (must be dot or svg)", format)
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := writeFile(output, data); err != nil {
				return err
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "add dates and progress to the nodes")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "lay out top to bottom instead of left to right")
	return cmd
}
