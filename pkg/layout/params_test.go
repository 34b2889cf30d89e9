package layout

import "testing"

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if p.Columns != 10 || p.Rows != 8 {
		t.Errorf("default grid = %dx%d, want 8x10", p.Rows, p.Columns)
	}
	if p.SideLength != 50 || p.ApexAngle != 120 || p.CellDistance != 2 {
		t.Errorf("default metrics = %+v, want side 50, apex 120, distance 2", p)
	}
}
