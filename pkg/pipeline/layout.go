package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/chart/dates"
	chartio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/observability"
	"github.com/matzehuels/ganttline/pkg/scene"
)

// Layout builds the scene for c, reading and writing the cache. The bool
// reports a cache hit.
func (r *Runner) Layout(ctx context.Context, c *chart.Chart, opts Options) (scene.Scene, bool, error) {
	if err := opts.Validate(); err != nil {
		return scene.Scene{}, false, err
	}
	c, now := prepare(c, opts)

	chartHash, err := ChartHash(c)
	if err != nil {
		return scene.Scene{}, false, err
	}
	key := r.Keyer.LayoutKey(chartHash, layoutKeyOpts(c, opts, now))
	return r.layout(ctx, key, c, opts, now)
}

func (r *Runner) layout(ctx context.Context, key string, c *chart.Chart, opts Options, now time.Time) (scene.Scene, bool, error) {
	hooks := observability.Pipeline()
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var s scene.Scene
			if err := json.Unmarshal(data, &s); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return s, true, nil
			}
			r.Logger.Warn("discarding unreadable cached scene", "key", key)
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	hooks.OnLayoutStart(ctx, string(c.ViewMode), len(c.Tasks))
	s, err := BuildScene(c, opts, now)
	hooks.OnLayoutComplete(ctx, string(c.ViewMode), time.Since(start), err)
	if err != nil {
		return scene.Scene{}, false, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return s, false, nil
}

// BuildScene lays out c without touching a cache.
func BuildScene(c *chart.Chart, opts Options, now time.Time) (scene.Scene, error) {
	ds, err := dates.ForChart(c, opts.PreSteps, now)
	if err != nil {
		return scene.Scene{}, err
	}
	return scene.Build(c, ds, opts.Scene, now), nil
}

// ChartHash hashes the normalized JSON encoding of c.
func ChartHash(c *chart.Chart) (string, error) {
	var buf bytes.Buffer
	if err := chartio.WriteChart(c, &buf, chartio.JSON); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// prepare applies the view mode override to a copy of c and resolves now.
func prepare(c *chart.Chart, opts Options) (*chart.Chart, time.Time) {
	cc := *c
	if opts.ViewMode != "" {
		cc.ViewMode = opts.ViewMode
	}
	if cc.ViewMode == "" {
		cc.ViewMode = chart.ViewDay
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &cc, now
}

func layoutKeyOpts(c *chart.Chart, opts Options, now time.Time) cache.LayoutKeyOpts {
	s := opts.Scene
	return cache.LayoutKeyOpts{
		ViewMode:     string(c.ViewMode),
		PreSteps:     opts.PreSteps,
		ColumnWidth:  s.ColumnWidth,
		RowHeight:    s.RowHeight,
		BarFill:      s.BarFill,
		ArrowIndent:  s.ArrowIndent,
		HeaderHeight: s.HeaderHeight,
		RTL:          s.RTL,
		TodayColor:   s.TodayColor,
		WeekendColor: s.WeekendColor,
		Now:          now,
	}
}
