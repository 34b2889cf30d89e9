package geometry

import "math"

// VertexCount is the number of vertices in a hexagon outline.
const VertexCount = 6

// Hexagon describes a pointed-top hexagon by its side length and apex angle.
//
// The outline is built from two congruent isosceles triangles (apex angle at
// the top and bottom tips) joined by a rectangle whose vertical edges have
// the same side length. All six sides are therefore equal for any apex angle
// in (0°, 180°); at 120° the shape degenerates to a regular hexagon.
type Hexagon struct {
	Side      float64 // side length in mm
	ApexAngle float64 // interior angle at the top and bottom tips, degrees
}

// halfApex returns the apex half-angle θ in radians.
func (h Hexagon) halfApex() float64 {
	return h.ApexAngle / 2 * math.Pi / 180
}

// Width returns the horizontal extent of the outline, side vertex to side
// vertex: 2·L·sin(θ).
func (h Hexagon) Width() float64 {
	return 2 * h.Side * math.Sin(h.halfApex())
}

// Height returns the vertical extent of the outline, tip to tip:
// L·(1 + 2·cos(θ)).
func (h Hexagon) Height() float64 {
	return h.Side * (1 + 2*math.Cos(h.halfApex()))
}

// VertexRadius returns the distance from the center to the top or bottom tip.
// For a regular hexagon (apex 120°) this equals the side length and is the
// common distance to all six vertices.
func (h Hexagon) VertexRadius() float64 {
	return h.Height() / 2
}

// Vertices returns the six outline points around center, starting at the top
// tip and proceeding clockwise in screen coordinates (y down).
func (h Hexagon) Vertices(center Point) [VertexCount]Point {
	halfW := h.Width() / 2
	halfH := h.Height() / 2
	halfSide := h.Side / 2

	return [VertexCount]Point{
		{X: center.X, Y: center.Y - halfH},
		{X: center.X + halfW, Y: center.Y - halfSide},
		{X: center.X + halfW, Y: center.Y + halfSide},
		{X: center.X, Y: center.Y + halfH},
		{X: center.X - halfW, Y: center.Y + halfSide},
		{X: center.X - halfW, Y: center.Y - halfSide},
	}
}
