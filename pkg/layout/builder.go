package layout

import (
	"math"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/geometry"
)

// Cell is one hexagon of the finished layout. Immutable once created.
type Cell struct {
	Row      int                                 `json:"row"`
	Column   int                                 `json:"column"`
	Center   geometry.Point                      `json:"center"`
	Vertices [geometry.VertexCount]geometry.Point `json:"vertices"` // top tip first, clockwise
}

// Build instantiates every cell of the rows × columns grid from the solved
// measurements, in row-major order. Odd rows are shifted right by the row
// shift and still contain exactly columns cells; the grid cardinality always
// matches the request.
//
// Build performs no user-input validation (that happened in Solve). It fails
// only with an INTERNAL_INCONSISTENCY error when the measurement set is
// malformed, which is unreachable through a correctly solved Derived.
func Build(d Derived, rows, columns int) ([]Cell, error) {
	if err := checkDerived(d); err != nil {
		return nil, err
	}
	if rows <= 0 || columns <= 0 {
		return nil, errors.New(errors.ErrCodeInternalInconsistency,
			"grid cardinality %dx%d is not positive", rows, columns)
	}

	hex := d.Hexagon()
	cells := make([]Cell, 0, rows*columns)

	for r := 0; r < rows; r++ {
		shift := 0.0
		if r%2 == 1 {
			shift = d.RowShift
		}
		for c := 0; c < columns; c++ {
			center := geometry.Point{
				X: float64(c)*d.ColumnPitch + shift,
				Y: float64(r) * d.RowPitch,
			}
			cells = append(cells, Cell{
				Row:      r,
				Column:   c,
				Center:   center,
				Vertices: hex.Vertices(center),
			})
		}
	}
	return cells, nil
}

// checkDerived guards the builder's contract with the solver.
func checkDerived(d Derived) error {
	fields := map[string]float64{
		"sideLength":   d.SideLength,
		"vertexRadius": d.VertexRadius,
		"width":        d.Width,
		"height":       d.Height,
		"columnPitch":  d.ColumnPitch,
		"rowPitch":     d.RowPitch,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return errors.New(errors.ErrCodeInternalInconsistency,
				"derived %s is malformed: %g", name, v)
		}
	}
	if d.ApexAngle <= 0 || d.ApexAngle >= 180 {
		return errors.New(errors.ErrCodeInternalInconsistency,
			"derived apexAngle is malformed: %g", d.ApexAngle)
	}
	if d.RowShift < 0 {
		return errors.New(errors.ErrCodeInternalInconsistency,
			"derived rowShift is malformed: %g", d.RowShift)
	}
	return nil
}
