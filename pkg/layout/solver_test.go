package layout

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/geometry"
)

// neighborGap builds the layout and measures the true minimum outline
// distance between the given cell pair.
func neighborGap(t *testing.T, d Derived, rows, columns, i, j int) float64 {
	t.Helper()
	cells, err := Build(d, rows, columns)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	a := cells[i].Vertices
	b := cells[j].Vertices
	return geometry.PolygonGap(a[:], b[:])
}

func TestSolveBaseline(t *testing.T) {
	// The defaults use apex 120, where the regular-nesting derivation is
	// exact and no self-correction may fire.
	d, adjustments, err := Solve(DefaultParameters())
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(adjustments) != 0 {
		t.Fatalf("Solve() adjustments = %v, want none", adjustments)
	}

	width := 100 * math.Sin(60*math.Pi/180)
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"VertexRadius", d.VertexRadius, 50},
		{"Width", d.Width, width},
		{"Height", d.Height, 100},
		{"ColumnPitch", d.ColumnPitch, width + 2},
		{"RowPitch", d.RowPitch, 75 + math.Sqrt(3)},
		{"RowShift", d.RowShift, (width + 2) / 2},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Same-row and cross-row neighbors both sit at exactly the requested
	// distance. Cells 0 and 1 share row 0; cell 10 is the staggered
	// neighbor below cell 0.
	if gap := neighborGap(t, d, 2, 10, 0, 1); math.Abs(gap-2) > 1e-6 {
		t.Errorf("same-row gap = %v, want 2", gap)
	}
	if gap := neighborGap(t, d, 2, 10, 0, 10); math.Abs(gap-2) > 1e-6 {
		t.Errorf("cross-row gap = %v, want 2", gap)
	}
}

func TestSolveCorrectsRowPitch(t *testing.T) {
	// Away from apex 120 the regular-nesting row pitch is wrong and the
	// solver must correct it. Tall cells (apex < 120) interlock deeper than
	// the nominal derivation assumes, so their rows move closer together;
	// flat cells (apex > 120) overlap at the nominal pitch and their rows
	// move apart.
	tests := []struct {
		name    string
		angle   float64
		widened bool
		reason  string
	}{
		{"tall cells", 90, false, "overshoot"},
		{"flat cells", 150, true, "undershoot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.ApexAngle = tt.angle

			d, adjustments, err := Solve(p)
			if err != nil {
				t.Fatalf("Solve() error = %v", err)
			}
			if len(adjustments) != 1 {
				t.Fatalf("Solve() adjustments = %v, want exactly one", adjustments)
			}

			adj := adjustments[0]
			if adj.Parameter != "rowPitch" {
				t.Errorf("adjusted parameter = %q, want rowPitch", adj.Parameter)
			}
			if adj.From != adjustedNominal(p) {
				t.Errorf("adjustment From = %v, want nominal %v", adj.From, adjustedNominal(p))
			}
			if (adj.To > adj.From) != tt.widened {
				t.Errorf("adjustment %v -> %v, widened = %v, want %v",
					adj.From, adj.To, adj.To > adj.From, tt.widened)
			}
			if !strings.Contains(adj.Reason, tt.reason) {
				t.Errorf("adjustment reason = %q, want %q mentioned", adj.Reason, tt.reason)
			}
			if d.RowPitch != adj.To {
				t.Errorf("RowPitch = %v, want the adjusted value %v", d.RowPitch, adj.To)
			}

			// The corrected pitch has a closed form: the neighbor caps are
			// parallel, so p = H + (dist - shift*cos(theta)) / sin(theta).
			theta := tt.angle / 2 * math.Pi / 180
			want := d.Height + (2-d.RowShift*math.Cos(theta))/math.Sin(theta)
			if math.Abs(d.RowPitch-want) > 1e-6 {
				t.Errorf("RowPitch = %v, want %v", d.RowPitch, want)
			}

			// And the corrected layout really does place staggered rows at
			// the requested distance.
			if gap := neighborGap(t, d, 2, 10, 0, 10); math.Abs(gap-2) > 2e-6 {
				t.Errorf("cross-row gap = %v, want 2", gap)
			}
		})
	}
}

// adjustedNominal recomputes the first-pass row pitch for comparison.
func adjustedNominal(p Parameters) float64 {
	theta := p.ApexAngle / 2 * math.Pi / 180
	height := p.SideLength * (1 + 2*math.Cos(theta))
	return 0.75*height + p.CellDistance*math.Cos(math.Pi/6)
}

func TestSolveNoOverlap(t *testing.T) {
	// Every solved layout must be overlap-free and keep at least the
	// requested distance between all outlines, even at extreme angles where
	// the nominal derivation is far off.
	angles := []float64{1, 30, 60, 90, 120, 150, 179}

	for _, angle := range angles {
		p := Parameters{
			Columns:      3,
			Rows:         3,
			SideLength:   50,
			ApexAngle:    angle,
			CellDistance: 2,
		}
		d, _, err := Solve(p)
		if err != nil {
			t.Fatalf("apex %v: Solve() error = %v", angle, err)
		}
		cells, err := Build(d, p.Rows, p.Columns)
		if err != nil {
			t.Fatalf("apex %v: Build() error = %v", angle, err)
		}

		for i := range cells {
			for j := i + 1; j < len(cells); j++ {
				a := cells[i].Vertices
				b := cells[j].Vertices
				if geometry.PolygonsOverlap(a[:], b[:]) {
					t.Fatalf("apex %v: cells %d and %d overlap", angle, i, j)
				}
				if gap := geometry.PolygonGap(a[:], b[:]); gap < p.CellDistance-1e-5 {
					t.Errorf("apex %v: cells %d and %d gap = %v, want >= %v",
						angle, i, j, gap, p.CellDistance)
				}
			}
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	p := DefaultParameters()
	p.ApexAngle = 90

	d1, a1, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	d2, a2, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	if d1 != d2 {
		t.Errorf("Solve() not deterministic: %+v vs %+v", d1, d2)
	}
	if !reflect.DeepEqual(a1, a2) {
		t.Errorf("adjustment logs differ: %v vs %v", a1, a2)
	}
}

func TestSolveSkipsMissingNeighbors(t *testing.T) {
	// A single row has no cross-row pair and a single column no same-row
	// pair; the corresponding checks must not fire.
	p := Parameters{Columns: 5, Rows: 1, SideLength: 50, ApexAngle: 90, CellDistance: 2}
	if _, adjustments, err := Solve(p); err != nil {
		t.Fatalf("Solve() error = %v", err)
	} else if len(adjustments) != 0 {
		t.Errorf("single row: adjustments = %v, want none", adjustments)
	}

	p = Parameters{Columns: 1, Rows: 1, SideLength: 50, ApexAngle: 33, CellDistance: 0}
	d, adjustments, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(adjustments) != 0 {
		t.Errorf("single cell: adjustments = %v, want none", adjustments)
	}
	if d.Width <= 0 || d.Height <= 0 {
		t.Errorf("single cell: derived = %+v, want positive measurements", d)
	}
}

func TestSolveInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"zero columns", func(p *Parameters) { p.Columns = 0 }, "columns"},
		{"negative rows", func(p *Parameters) { p.Rows = -3 }, "rows"},
		{"zero side", func(p *Parameters) { p.SideLength = 0 }, "sideLength"},
		{"NaN side", func(p *Parameters) { p.SideLength = math.NaN() }, "sideLength"},
		{"zero angle", func(p *Parameters) { p.ApexAngle = 0 }, "apexAngle"},
		{"straight angle", func(p *Parameters) { p.ApexAngle = 180 }, "apexAngle"},
		{"infinite angle", func(p *Parameters) { p.ApexAngle = math.Inf(1) }, "apexAngle"},
		{"negative distance", func(p *Parameters) { p.CellDistance = -1 }, "cellDistance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)

			_, _, err := Solve(p)
			if err == nil {
				t.Fatal("Solve() error = nil, want INVALID_PARAMETER")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidParameter {
				t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidParameter)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestSolveZeroDistance(t *testing.T) {
	// A zero cell distance is valid: cells touch but never overlap.
	p := DefaultParameters()
	p.CellDistance = 0
	p.Columns = 2
	p.Rows = 2

	d, _, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(d.ColumnPitch-d.Width) > 1e-9 {
		t.Errorf("ColumnPitch = %v, want width %v", d.ColumnPitch, d.Width)
	}
	if gap := neighborGap(t, d, 2, 2, 0, 2); gap > 1e-6 {
		t.Errorf("cross-row gap = %v, want 0", gap)
	}
}
