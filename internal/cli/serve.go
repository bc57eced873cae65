package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Serve the render API until interrupted:

  GET  /healthz
  POST /v1/render?format=svg|json|png|pdf&view=day&rtl=false&now=RFC3339
  POST /v1/layout

Charts are posted as JSON, YAML or TOML according to Content-Type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Options{
				Addr:        addr,
				ReadTimeout: c.Config.Server.ReadTimeout,
				Defaults:    c.pipelineOptions(),
			})
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
