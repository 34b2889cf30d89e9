// Package layout implements the honeycomb layout engine: a geometry solver
// that derives a consistent, overlap-free set of measurements from the
// requested parameters, and a grid builder that instantiates every hexagon
// cell from those measurements.
//
// The solver is a pure function. It performs no I/O and keeps no state
// between runs; spacing corrections are returned as an explicit adjustment
// log next to the derived measurements, so repeated invocations with the
// same input yield identical results.
package layout

import (
	"github.com/matzehuels/honeycomb/pkg/errors"
)

// Default parameter values, in millimeters and degrees.
const (
	DefaultColumns      = 10
	DefaultRows         = 8
	DefaultSideLength   = 50.0
	DefaultApexAngle    = 120.0
	DefaultCellDistance = 2.0
)

// Parameters are the user-requested layout inputs. They are treated as
// immutable; the solver records any metric it has to reinterpret in the
// adjustment log instead of mutating them.
type Parameters struct {
	Columns      int     `json:"columns"`       // hexagons per row
	Rows         int     `json:"rows"`          // number of rows, odd and even
	SideLength   float64 `json:"side_length"`   // hexagon side length, mm
	ApexAngle    float64 `json:"apex_angle"`    // tip interior angle, degrees
	CellDistance float64 `json:"cell_distance"` // boundary-to-boundary gap, mm
}

// DefaultParameters returns the documented default layout.
func DefaultParameters() Parameters {
	return Parameters{
		Columns:      DefaultColumns,
		Rows:         DefaultRows,
		SideLength:   DefaultSideLength,
		ApexAngle:    DefaultApexAngle,
		CellDistance: DefaultCellDistance,
	}
}

// Validate checks every field against its domain. It returns an
// INVALID_PARAMETER error naming the first offending field, before any
// geometry is computed.
func (p Parameters) Validate() error {
	if err := errors.ValidatePositiveCount("columns", p.Columns); err != nil {
		return err
	}
	if err := errors.ValidatePositiveCount("rows", p.Rows); err != nil {
		return err
	}
	if err := errors.ValidatePositiveLength("sideLength", p.SideLength); err != nil {
		return err
	}
	if err := errors.ValidateApexAngle("apexAngle", p.ApexAngle); err != nil {
		return err
	}
	return errors.ValidateNonNegativeLength("cellDistance", p.CellDistance)
}
