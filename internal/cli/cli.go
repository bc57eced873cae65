// Package cli implements the ganttline command-line interface.
//
// Commands:
//   - render: draw a chart file as SVG, JSON, PNG or PDF
//   - layout: print the laid out geometry of a chart as JSON
//   - route: route a single dependency arrow between two bars
//   - deps: draw the task dependency graph with graphviz
//   - serve: run the HTTP render API
//   - cache, config: inspect local state
//
// Every command reads the configuration file first; flags override it.
// --verbose switches the logger to debug level and logs pipeline events.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/buildinfo"
	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/config"
	"github.com/matzehuels/ganttline/pkg/observability"
	"github.com/matzehuels/ganttline/pkg/pipeline"
)

const appName = "ganttline"

// CLI holds the state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI that logs to w.
func New(w io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(w, log.InfoLevel),
		Config: config.Default(),
	}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "ganttline lays out and renders Gantt charts",
		Long:          `ganttline turns a chart file of tasks and dependencies into a timeline drawing: a date grid, one bar per task and orthogonal arrows between dependent tasks.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ganttline/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())
	return root
}

// Execute runs the command tree with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.Logger.SetLevel(log.DebugLevel)
		observability.NewLogHooks(c.Logger).Register()
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	path := c.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debug("no config path", "err", err)
			return nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, c.newKeyer(), c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r, nil
}

// newKeyer scopes cache keys under cache.prefix when one is set.
func (c *CLI) newKeyer() cache.Keyer {
	if p := c.Config.Cache.Prefix; p != "" {
		return cache.NewScopedKeyer(nil, p)
	}
	return cache.NewDefaultKeyer()
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, c.Config.Cache.RedisURL)
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the file cache directory: cache.dir from the config, or
// the XDG cache home (~/.cache/ganttline).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// pipelineOptions builds pipeline options from the configuration.
func (c *CLI) pipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.PreSteps = c.Config.Chart.PreSteps
	opts.Scene = c.Config.SceneOptions()
	opts.Colors = c.Config.SinkColors()
	return opts
}
