package cli

import (
	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/pipeline"
)

func (c *CLI) layoutCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "layout <chart>",
		Short: "Print the laid out geometry of a chart as JSON",
		Long: `Lay out a chart and print the scene as JSON: grid ticks, weekend
columns, the today marker, one bar per task and one routed arrow per
dependency, with each arrow's path segments and arrowhead vertices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := chartio.ImportChart(args[0])
			if err != nil {
				return err
			}
			po := c.pipelineOptions()
			po.Formats = []string{pipeline.FormatJSON}
			opts.apply(cmd, &po)

			runner, err := c.newRunner(cmd.Context(), opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Execute(cmd.Context(), ch, po)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(res.Artifacts[pipeline.FormatJSON])
			return err
		},
	}
	opts.addLayoutFlags(cmd, c)
	return cmd
}
