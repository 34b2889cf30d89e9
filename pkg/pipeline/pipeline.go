// Package pipeline provides the core generation pipeline for the honeycomb
// tool.
//
// The pipeline consists of three stages:
//
//  1. Solve: derive consistent measurements from the requested parameters,
//     self-correcting the pitches and logging every adjustment
//  2. Build: instantiate every hexagon cell of the grid
//  3. Render: generate output artifacts (SVG, JSON)
//
// Solve and Build are pure and always recomputed; only rendered artifacts go
// through the cache. Centralizing the stages here keeps the CLI a thin
// wrapper and gives embedders the same behavior.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Layout: layout.DefaultParameters()}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/honeycomb/pkg/cache"
	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/layout"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options contains all configuration for one generation run.
type Options struct {
	// Layout parameters; zero values are replaced by the documented
	// defaults field by field. CellDistance is exempt: zero is a valid
	// explicit choice (touching cells) and is never rewritten.
	Layout layout.Parameters `json:"layout"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Fill        string   `json:"fill,omitempty"`

	// Refresh bypasses cached artifacts and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and diagnostics.
	ID string

	// Derived is the solved measurement set.
	Derived layout.Derived

	// Adjustments is the chronological self-correction log.
	Adjustments []layout.Adjustment

	// Cells is the finished grid in row-major order.
	Cells []layout.Cell

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CellCount       int
	AdjustmentCount int
	SolveTime       time.Duration
	BuildTime       time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks all options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Layout.Columns == 0 {
		o.Layout.Columns = layout.DefaultColumns
	}
	if o.Layout.Rows == 0 {
		o.Layout.Rows = layout.DefaultRows
	}
	if o.Layout.SideLength == 0 {
		o.Layout.SideLength = layout.DefaultSideLength
	}
	if o.Layout.ApexAngle == 0 {
		o.Layout.ApexAngle = layout.DefaultApexAngle
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Stroke == "" {
		o.Stroke = render.DefaultStroke
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = render.DefaultStrokeWidth
	}
	if o.Fill == "" {
		o.Fill = render.DefaultFill
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Margin returns the clear space used around the drawing: the requested cell
// distance, so the outermost cells keep the same spacing to the canvas edge
// as to each other.
func (o *Options) Margin() float64 {
	return o.Layout.CellDistance
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Stroke:      o.Stroke,
		StrokeWidth: o.StrokeWidth,
		Fill:        o.Fill,
		Margin:      o.Margin(),
	}
}

// svgOptions translates the render settings into SVG sink options.
func (o *Options) svgOptions() []render.SVGOption {
	return []render.SVGOption{
		render.WithStroke(o.Stroke),
		render.WithStrokeWidth(o.StrokeWidth),
		render.WithFill(o.Fill),
		render.WithMargin(o.Margin()),
	}
}
