package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/layout"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "honeycomb.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[layout]
columns = 5
rows = 3
side_length = 25.0
apex_angle = 90.0
cell_distance = 1.5

[style]
stroke = "#333333"
stroke_width = 0.5
fill = "none"

[output]
path = "pattern"
formats = ["svg", "json"]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Layout.Columns != 5 || cfg.Layout.Rows != 3 {
		t.Errorf("layout grid = %dx%d, want 3x5", cfg.Layout.Rows, cfg.Layout.Columns)
	}
	if cfg.Layout.SideLength != 25 || cfg.Layout.ApexAngle != 90 {
		t.Errorf("layout metrics = %+v", cfg.Layout)
	}
	if cfg.Layout.CellDistance == nil || *cfg.Layout.CellDistance != 1.5 {
		t.Errorf("cell distance = %v, want 1.5", cfg.Layout.CellDistance)
	}
	if cfg.Style.Stroke != "#333333" || cfg.Style.StrokeWidth != 0.5 {
		t.Errorf("style = %+v", cfg.Style)
	}
	if cfg.Output.Path != "pattern" || len(cfg.Output.Formats) != 2 {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("missing file error = %v, want INVALID_CONFIG", err)
	}

	path := writeConfig(t, "[layout\ncolumns = ")
	if _, err := LoadConfig(path); errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("malformed file error = %v, want INVALID_CONFIG", err)
	}
}

func TestConfigApply(t *testing.T) {
	path := writeConfig(t, `
[layout]
rows = 4

[style]
stroke = "gray"

[output]
path = "from-config"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	opts := pipeline.Options{Layout: layout.DefaultParameters()}
	output := ""
	cfg.apply(&opts, &output)

	// Set values overlay the defaults, unset values leave them alone.
	if opts.Layout.Rows != 4 {
		t.Errorf("Rows = %d, want 4 from config", opts.Layout.Rows)
	}
	if opts.Layout.Columns != layout.DefaultColumns {
		t.Errorf("Columns = %d, want untouched default", opts.Layout.Columns)
	}
	if opts.Stroke != "gray" {
		t.Errorf("Stroke = %q, want gray", opts.Stroke)
	}
	if opts.Fill != "" {
		t.Errorf("Fill = %q, want untouched zero value", opts.Fill)
	}
	if output != "from-config" {
		t.Errorf("output = %q, want from-config", output)
	}
}

func TestConfigApplyZeroDistance(t *testing.T) {
	// cell_distance = 0 means touching cells and must survive the overlay;
	// leaving the key out keeps the default.
	path := writeConfig(t, `
[layout]
cell_distance = 0.0
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	opts := pipeline.Options{Layout: layout.DefaultParameters()}
	output := ""
	cfg.apply(&opts, &output)
	if opts.Layout.CellDistance != 0 {
		t.Errorf("CellDistance = %v, want explicit 0 from config", opts.Layout.CellDistance)
	}

	unset, err := LoadConfig(writeConfig(t, "[layout]\nrows = 2\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	opts = pipeline.Options{Layout: layout.DefaultParameters()}
	unset.apply(&opts, &output)
	if opts.Layout.CellDistance != layout.DefaultCellDistance {
		t.Errorf("CellDistance = %v, want untouched default", opts.Layout.CellDistance)
	}
}
