package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/observability"
)

// DefaultTTL is how long cached scenes and artifacts live.
const DefaultTTL = 24 * time.Hour

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means [cache.DefaultKeyer] and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: DefaultTTL}
}

// Execute lays out c and renders every format in opts.Formats.
func (r *Runner) Execute(ctx context.Context, c *chart.Chart, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c, now := prepare(c, opts)

	chartHash, err := ChartHash(c)
	if err != nil {
		return nil, fmt.Errorf("hash chart: %w", err)
	}
	result := &Result{ChartHash: chartHash, Artifacts: make(map[string][]byte, len(opts.Formats))}

	layoutStart := time.Now()
	layoutKey := r.Keyer.LayoutKey(chartHash, layoutKeyOpts(c, opts, now))
	s, hit, err := r.layout(ctx, layoutKey, c, opts, now)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = s
	result.CacheInfo.LayoutHit = hit
	result.Stats = Stats{
		Tasks:      len(s.Bars),
		Arrows:     len(s.Arrows),
		Columns:    len(s.Dates),
		LayoutTime: time.Since(layoutStart),
	}
	r.Logger.Debug("laid out chart",
		"tasks", result.Stats.Tasks,
		"arrows", result.Stats.Arrows,
		"columns", result.Stats.Columns,
		"cached", hit)

	renderStart := time.Now()
	hits, err := r.render(ctx, layoutKey, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hits == len(opts.Formats)
	r.Logger.Debug("rendered chart", "formats", opts.Formats, "cached", hits)

	return result, nil
}

// render fills result.Artifacts and returns how many came from the cache.
func (r *Runner) render(ctx context.Context, layoutKey string, result *Result, opts Options) (int, error) {
	hooks := observability.Pipeline()
	hits := 0
	var missing []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutKey, artifactKeyOpts(format, opts))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[format] = data
				hits++
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return hits, nil
	}

	start := time.Now()
	hooks.OnRenderStart(ctx, missing)
	for _, format := range missing {
		data, err := Render(ctx, result.Scene, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
			return hits, fmt.Errorf("%s: %w", format, err)
		}
		result.Artifacts[format] = data

		key := r.Keyer.ArtifactKey(layoutKey, artifactKeyOpts(format, opts))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	hooks.OnRenderComplete(ctx, missing, time.Since(start), nil)
	return hits, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
