package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
)

// Config is the optional TOML configuration file. Every field mirrors a
// generate flag; flags set on the command line win over the file.
//
//	[layout]
//	columns = 10
//	rows = 8
//	side_length = 50.0
//	apex_angle = 120.0
//	cell_distance = 2.0
//
//	[style]
//	stroke = "black"
//	stroke_width = 1.0
//	fill = "none"
//
//	[output]
//	path = "honeycomb"
//	formats = ["svg", "json"]
type Config struct {
	Layout struct {
		Columns    int     `toml:"columns"`
		Rows       int     `toml:"rows"`
		SideLength float64 `toml:"side_length"`
		ApexAngle  float64 `toml:"apex_angle"`
		// Pointer so an explicit 0 (touching cells) is distinguishable
		// from the key being absent.
		CellDistance *float64 `toml:"cell_distance"`
	} `toml:"layout"`
	Style struct {
		Stroke      string  `toml:"stroke"`
		StrokeWidth float64 `toml:"stroke_width"`
		Fill        string  `toml:"fill"`
	} `toml:"style"`
	Output struct {
		Path    string   `toml:"path"`
		Formats []string `toml:"formats"`
	} `toml:"output"`
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// apply overlays the config file's non-zero values onto the pipeline options
// and output settings. Called before flag overrides, so the precedence is
// flags > config file > built-in defaults.
func (cfg Config) apply(opts *pipeline.Options, output *string) {
	if cfg.Layout.Columns != 0 {
		opts.Layout.Columns = cfg.Layout.Columns
	}
	if cfg.Layout.Rows != 0 {
		opts.Layout.Rows = cfg.Layout.Rows
	}
	if cfg.Layout.SideLength != 0 {
		opts.Layout.SideLength = cfg.Layout.SideLength
	}
	if cfg.Layout.ApexAngle != 0 {
		opts.Layout.ApexAngle = cfg.Layout.ApexAngle
	}
	if cfg.Layout.CellDistance != nil {
		opts.Layout.CellDistance = *cfg.Layout.CellDistance
	}
	if cfg.Style.Stroke != "" {
		opts.Stroke = cfg.Style.Stroke
	}
	if cfg.Style.StrokeWidth != 0 {
		opts.StrokeWidth = cfg.Style.StrokeWidth
	}
	if cfg.Style.Fill != "" {
		opts.Fill = cfg.Style.Fill
	}
	if len(cfg.Output.Formats) != 0 {
		opts.Formats = append([]string(nil), cfg.Output.Formats...)
	}
	if cfg.Output.Path != "" {
		*output = cfg.Output.Path
	}
}
