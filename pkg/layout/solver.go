package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/geometry"
)

const (
	// Tolerance is the maximum accepted deviation between a measured
	// neighbor gap and the requested cell distance, in millimeters.
	Tolerance = 1e-6

	// maxPasses bounds the verify/correct loop. The gap is linear in the
	// pitch once the shape is fixed, so one correction normally lands
	// exactly; the loop re-verifies instead of assuming it did.
	maxPasses = 5
)

// Derived is the consistent measurement set produced by the solver.
// Immutable once Solve returns.
type Derived struct {
	SideLength   float64 `json:"side_length"`   // mm, as requested
	ApexAngle    float64 `json:"apex_angle"`    // degrees, as requested
	VertexRadius float64 `json:"vertex_radius"` // center to tip, mm
	Width        float64 `json:"width"`         // hexagon bounding width, mm
	Height       float64 `json:"height"`        // hexagon bounding height, mm
	ColumnPitch  float64 `json:"column_pitch"`  // center distance within a row, mm
	RowPitch     float64 `json:"row_pitch"`     // centerline distance between rows, mm
	RowShift     float64 `json:"row_shift"`     // horizontal offset of odd rows, mm
}

// Hexagon returns the cell outline shape implied by the measurements.
func (d Derived) Hexagon() geometry.Hexagon {
	return geometry.Hexagon{Side: d.SideLength, ApexAngle: d.ApexAngle}
}

// Adjustment records one self-correction applied during solving.
type Adjustment struct {
	Parameter string  `json:"parameter"`
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Reason    string  `json:"reason"`
}

// Solve derives the measurement set for the requested parameters.
//
// The nominal derivation assumes regular-hexagon nesting: column pitch is the
// hexagon width plus the cell distance, row pitch is three quarters of the
// height plus the gap component along the regular edge normal (30° off
// vertical). That assumption is exact at apex 120° only, so Solve measures
// the true minimum gap between neighboring outlines and re-derives the
// pitches until every gap equals the requested cell distance within
// Tolerance, appending one Adjustment per corrected field.
//
// Grid cardinality is never changed here; when the grid has a single row or
// a single column the corresponding neighbor check is skipped because no such
// neighbor pair exists.
func Solve(p Parameters) (Derived, []Adjustment, error) {
	if err := p.Validate(); err != nil {
		return Derived{}, nil, err
	}

	hex := geometry.Hexagon{Side: p.SideLength, ApexAngle: p.ApexAngle}
	theta := p.ApexAngle / 2 * math.Pi / 180

	d := Derived{
		SideLength:   p.SideLength,
		ApexAngle:    p.ApexAngle,
		VertexRadius: hex.VertexRadius(),
		Width:        hex.Width(),
		Height:       hex.Height(),
	}
	d.ColumnPitch = d.Width + p.CellDistance
	d.RowShift = d.ColumnPitch / 2
	d.RowPitch = 0.75*d.Height + p.CellDistance*math.Cos(math.Pi/6)

	var log []Adjustment
	want := p.CellDistance

	for pass := 0; pass < maxPasses; pass++ {
		consistent := true

		if p.Columns > 1 {
			gap := sameRowGap(d)
			if !scalar.EqualWithinAbs(gap, want, Tolerance) {
				next := d.ColumnPitch + (want - gap)
				log = append(log, Adjustment{
					Parameter: "columnPitch",
					From:      d.ColumnPitch,
					To:        next,
					Reason:    gapReason("same-row", gap, want),
				})
				d.ColumnPitch = next
				d.RowShift = d.ColumnPitch / 2
				consistent = false
			}
		}

		if p.Rows > 1 {
			gap := crossRowGap(d, hex, theta)
			if !scalar.EqualWithinAbs(gap, want, Tolerance) {
				next := d.RowPitch + (want-gap)/math.Sin(theta)
				log = append(log, Adjustment{
					Parameter: "rowPitch",
					From:      d.RowPitch,
					To:        next,
					Reason:    gapReason("cross-row", gap, want),
				})
				d.RowPitch = next
				consistent = false
			}
		}

		if consistent {
			return d, log, nil
		}
	}

	// One last measurement for the diagnostic.
	deviation := crossRowGap(d, hex, theta) - want
	return Derived{}, log, errors.New(errors.ErrCodeConvergenceFailed,
		"spacing did not stabilize after %d passes, residual cross-row deviation %.9f mm",
		maxPasses, deviation)
}

// sameRowGap returns the signed clearance between horizontally adjacent
// hexagons. Their facing vertical edges are parallel, so the clearance is the
// pitch minus the width; negative values mean overlap.
func sameRowGap(d Derived) float64 {
	return d.ColumnPitch - d.Width
}

// crossRowGap returns the gap between a hexagon and its nearest staggered
// neighbor in the next row.
//
// The neighbor's slanted cap edge runs parallel to this hexagon's slanted
// bottom edge, so the clearance along the shared edge normal is
// s·cos(θ) + (p − H)·sin(θ) for row shift s, row pitch p, and height H.
// That expression is signed and reports overlap as a negative gap. When the
// outlines are clear of each other the true minimum distance is also
// measured on the full polygons, in case a tip or corner binds before the
// parallel edges do.
func crossRowGap(d Derived, hex geometry.Hexagon, theta float64) float64 {
	edgeGap := d.RowShift*math.Cos(theta) + (d.RowPitch-d.Height)*math.Sin(theta)
	if edgeGap < 0 {
		return edgeGap
	}

	upper := hex.Vertices(geometry.Point{})
	right := hex.Vertices(geometry.Point{X: d.RowShift, Y: d.RowPitch})
	left := hex.Vertices(geometry.Point{X: d.RowShift - d.ColumnPitch, Y: d.RowPitch})

	gap := geometry.PolygonGap(upper[:], right[:])
	if g := geometry.PolygonGap(upper[:], left[:]); g < gap {
		gap = g
	}
	if gap < edgeGap {
		return gap
	}
	return edgeGap
}

// gapReason describes a spacing violation for the adjustment log.
func gapReason(pair string, gap, want float64) string {
	word := "undershoot"
	if gap > want {
		word = "overshoot"
	}
	return fmt.Sprintf("%s gap %s by %.6f mm", pair, word, math.Abs(gap-want))
}
