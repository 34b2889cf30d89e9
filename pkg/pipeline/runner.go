package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/honeycomb/pkg/cache"
	"github.com/matzehuels/honeycomb/pkg/layout"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete solve → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Solve
	solveStart := time.Now()
	derived, adjustments, err := layout.Solve(opts.Layout)
	if err != nil {
		return nil, err
	}
	result.Derived = derived
	result.Adjustments = adjustments
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.AdjustmentCount = len(adjustments)

	opts.Logger.Info("solved measurements",
		"run", result.ID,
		"vertex_radius", derived.VertexRadius,
		"column_pitch", derived.ColumnPitch,
		"row_pitch", derived.RowPitch,
		"adjustments", len(adjustments),
		"duration", result.Stats.SolveTime)
	for _, adj := range adjustments {
		opts.Logger.Warn("adjusted measurement",
			"parameter", adj.Parameter,
			"from", adj.From,
			"to", adj.To,
			"reason", adj.Reason)
	}

	// Stage 2: Build
	buildStart := time.Now()
	cells, err := layout.Build(derived, opts.Layout.Rows, opts.Layout.Columns)
	if err != nil {
		return nil, err
	}
	result.Cells = cells
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.CellCount = len(cells)

	opts.Logger.Info("built grid",
		"rows", opts.Layout.Rows,
		"columns", opts.Layout.Columns,
		"cells", len(cells),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, derived, adjustments, cells, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cache_hit", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache renders every requested format, serving all of them from
// cache when possible. Partial hits fall back to a full re-render so the
// artifacts stay consistent with each other.
func (r *Runner) renderWithCache(ctx context.Context, d layout.Derived, adjustments []layout.Adjustment, cells []layout.Cell, opts Options) (map[string][]byte, bool, error) {
	paramsHash := r.paramsHash(opts.Layout)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(paramsHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = render.RenderSVG(cells, opts.svgOptions()...)
		case FormatJSON:
			data, err = render.RenderJSON(d, adjustments, cells)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		key := r.Keyer.ArtifactKey(paramsHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, false, nil
}

// paramsHash returns the content hash of the layout parameters.
func (r *Runner) paramsHash(p layout.Parameters) string {
	data, _ := json.Marshal(p)
	return cache.Hash(data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
