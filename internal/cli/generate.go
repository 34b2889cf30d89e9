package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/io"
	"github.com/matzehuels/honeycomb/pkg/layout"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	columns     int     // hexagons per row
	rows        int     // number of rows, odd and even rows included
	side        float64 // hexagon side length in mm
	angle       float64 // tip angle in degrees
	distance    float64 // gap between neighboring hexagons in mm
	output      string  // output file (single format) or base path (multiple)
	formats     string  // comma-separated output formats
	stroke      string  // stroke color passed through to the SVG
	strokeWidth float64 // stroke width passed through to the SVG
	fill        string  // fill passed through to the SVG
	config      string  // optional TOML config file
	noCache     bool    // disable the artifact cache
	refresh     bool    // bypass cached artifacts
}

// generateCommand creates the generate command, the main entry point of the
// tool. Precedence for every setting is flags > config file > defaults.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		columns:     layout.DefaultColumns,
		rows:        layout.DefaultRows,
		side:        layout.DefaultSideLength,
		angle:       layout.DefaultApexAngle,
		distance:    layout.DefaultCellDistance,
		stroke:      render.DefaultStroke,
		strokeWidth: render.DefaultStrokeWidth,
		fill:        render.DefaultFill,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a honeycomb drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "number of columns per row")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "number of rows (odd and even)")
	cmd.Flags().Float64Var(&opts.side, "side", opts.side, "hexagon side length in mm")
	cmd.Flags().Float64Var(&opts.angle, "angle", opts.angle, "tip angle in degrees (0-180 exclusive)")
	cmd.Flags().Float64Var(&opts.distance, "distance", opts.distance, "gap between hexagons in mm")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVar(&opts.stroke, "stroke", opts.stroke, "hexagon stroke color")
	cmd.Flags().Float64Var(&opts.strokeWidth, "stroke-width", opts.strokeWidth, "hexagon stroke width")
	cmd.Flags().StringVar(&opts.fill, "fill", opts.fill, "hexagon fill")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if artifacts are cached")

	return cmd
}

// runGenerate resolves the effective options and executes the pipeline.
func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	popts, output, err := resolveOptions(cmd, opts)
	if err != nil {
		return err
	}
	popts.Logger = c.Logger
	// Validate here, not just inside Execute: the export loop below needs
	// the defaulted format list.
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), popts)
	if err != nil {
		return err
	}
	prog.done("generated honeycomb")

	paths, err := io.ExportArtifacts(result.Artifacts, popts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess("Generated %d hexagons (%d rows x %d columns)",
		result.Stats.CellCount, popts.Layout.Rows, popts.Layout.Columns)
	for _, format := range popts.Formats {
		path := paths[format]
		printDetail("%s", io.Describe(path, len(result.Artifacts[format])))
	}
	if n := result.Stats.AdjustmentCount; n > 0 {
		printInfo("%d spacing adjustment(s) were applied; see the log for details", n)
	}
	return nil
}

// resolveOptions merges defaults, the optional config file, and explicitly
// set flags into the final pipeline options and output path.
func resolveOptions(cmd *cobra.Command, opts *generateOpts) (pipeline.Options, string, error) {
	popts := pipeline.Options{
		Layout: layout.DefaultParameters(),
	}
	output := ""

	if opts.config != "" {
		cfg, err := LoadConfig(opts.config)
		if err != nil {
			return pipeline.Options{}, "", err
		}
		cfg.apply(&popts, &output)
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		popts.Layout.Columns = opts.columns
	}
	if flags.Changed("rows") {
		popts.Layout.Rows = opts.rows
	}
	if flags.Changed("side") {
		popts.Layout.SideLength = opts.side
	}
	if flags.Changed("angle") {
		popts.Layout.ApexAngle = opts.angle
	}
	if flags.Changed("distance") {
		popts.Layout.CellDistance = opts.distance
	}
	if flags.Changed("stroke") {
		popts.Stroke = opts.stroke
	}
	if flags.Changed("stroke-width") {
		popts.StrokeWidth = opts.strokeWidth
	}
	if flags.Changed("fill") {
		popts.Fill = opts.fill
	}
	if flags.Changed("format") || opts.formats != "" {
		popts.Formats = parseFormats(opts.formats)
	}
	if flags.Changed("output") {
		output = opts.output
	}
	popts.Refresh = opts.refresh

	return popts, output, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Execute is a convenience entry point used by tests: it builds a CLI and
// runs the root command against the given arguments.
func Execute(ctx context.Context, args ...string) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
