// Package render turns a finished honeycomb layout into output artifacts.
// The SVG sink produces a standalone vector drawing with physical millimeter
// units; the JSON sink produces a machine-readable description of the same
// layout for downstream tooling.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/honeycomb/pkg/layout"
)

// Default pass-through styling for the generated drawing.
const (
	DefaultStroke      = "black"
	DefaultStrokeWidth = 1.0
	DefaultFill        = "none"
	DefaultMargin      = 2.0 // mm of clear space around the outermost cells
)

// SVGOption configures the SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	strokeWidth float64
	fill        string
	margin      float64
}

// WithStroke sets the hexagon stroke color.
func WithStroke(color string) SVGOption {
	return func(r *svgRenderer) { r.stroke = color }
}

// WithStrokeWidth sets the hexagon stroke width.
func WithStrokeWidth(w float64) SVGOption {
	return func(r *svgRenderer) { r.strokeWidth = w }
}

// WithFill sets the hexagon fill.
func WithFill(fill string) SVGOption {
	return func(r *svgRenderer) { r.fill = fill }
}

// WithMargin sets the clear space around the drawing, in millimeters.
func WithMargin(mm float64) SVGOption {
	return func(r *svgRenderer) { r.margin = mm }
}

// RenderSVG writes the cells as a standalone SVG document. The canvas is the
// bounding box of every vertex plus the margin on all sides; cell coordinates
// are translated so the top-left inset equals the margin. Width and height
// carry explicit mm units so the drawing keeps its physical size.
func RenderSVG(cells []layout.Cell, opts ...SVGOption) []byte {
	r := svgRenderer{
		stroke:      DefaultStroke,
		strokeWidth: DefaultStrokeWidth,
		fill:        DefaultFill,
		margin:      DefaultMargin,
	}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := bounds(cells)
	offsetX := r.margin - minX
	offsetY := r.margin - minY
	totalW := maxX - minX + 2*r.margin
	totalH := maxY - minY + 2*r.margin

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg width="%.3fmm" height="%.3fmm" viewBox="0 0 %.3f %.3f" xmlns="http://www.w3.org/2000/svg">`+"\n",
		totalW, totalH, totalW, totalH)
	buf.WriteString("  <title>Honeycomb Pattern</title>\n")
	fmt.Fprintf(&buf, "  <desc>Honeycomb pattern with %d cells</desc>\n", len(cells))
	fmt.Fprintf(&buf,
		"  <style>\n    .hexagon {\n      fill: %s;\n      stroke: %s;\n      stroke-width: %g;\n    }\n  </style>\n",
		r.fill, r.stroke, r.strokeWidth)

	for _, cell := range cells {
		buf.WriteString(`  <polygon class="hexagon" points="`)
		for i, v := range cell.Vertices {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.3f,%.3f", v.X+offsetX, v.Y+offsetY)
		}
		buf.WriteString("\" />\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// bounds returns the bounding box of every vertex of every cell.
func bounds(cells []layout.Cell) (minX, minY, maxX, maxY float64) {
	if len(cells) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, cell := range cells {
		for _, v := range cell.Vertices {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	return minX, minY, maxX, maxY
}
