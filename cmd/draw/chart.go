package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
	"github.com/midbel/chartkit/source"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	errKind      = errors.New("unsupported chart kind")
	errDuplicate = errors.New("output file rendered more than once")
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>...",
	Short: "render one SVG chart per data file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := chartConfig(cmd, cfg.Chart)
		if err != nil {
			return err
		}
		cs, err := cfg.Colors.Strategy()
		if err != nil {
			return err
		}
		var (
			cols     = columns(cmd)
			sheet, _ = cmd.Flags().GetString("sheet")
			dir, _   = cmd.Flags().GetString("out")
		)
		if dir == "" {
			dir = cfg.Output.Dir
		}
		outputs, err := outputFiles(dir, args)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		grp, ctx := errgroup.WithContext(cmd.Context())
		if cfg.Output.Parallel > 0 {
			grp.SetLimit(cfg.Output.Parallel)
		}
		for i, file := range args {
			out := outputs[i]
			grp.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rows, err := source.ReadRows(file, sheet)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				d, err := buildDrawer(cc, cs, rows, cols)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if err := renderFile(out, cc, d); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				logger.Info("chart rendered", "input", file, "output", out, "kind", cc.Kind)
				return nil
			})
		}
		return grp.Wait()
	},
}

func init() {
	flags := chartCmd.Flags()
	flags.String("kind", "", "chart kind (bar, line, pie)")
	flags.String("title", "", "chart title")
	flags.String("out", "", "output directory")
	flags.String("sheet", "", "sheet to read from workbooks (default: first sheet)")
	flags.Int("label-col", 0, "index of label column, -1 for none")
	flags.Int("x-col", 0, "index of x column (line chart)")
	flags.Int("value-col", 1, "index of value column")
	flags.Bool("no-header", false, "first row holds data")
	flags.Float64("width", 0, "chart width")
	flags.Float64("height", 0, "chart height")
	flags.Uint8("max-ticks", 0, "maximum number of ticks on the vertical axis")
	flags.Bool("with-value", false, "write values next to bars and labels next to pie segments")
	flags.Bool("no-axis", false, "remove axes")
	flags.Bool("bands", false, "shade every other interval of the vertical axis")
	flags.String("point", "", "marker of line points (circle, square, diamond)")
}

// chartConfig returns the chart settings of the configuration overridden by
// the flags set on the command line.
func chartConfig(cmd *cobra.Command, cc config.ChartConfig) (config.ChartConfig, error) {
	flags := cmd.Flags()
	if flags.Changed("kind") {
		cc.Kind, _ = flags.GetString("kind")
	}
	if flags.Changed("title") {
		cc.Title, _ = flags.GetString("title")
	}
	if flags.Changed("width") {
		cc.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		cc.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("max-ticks") {
		cc.MaxTicks, _ = flags.GetUint8("max-ticks")
	}
	if flags.Changed("with-value") {
		cc.WithValue, _ = flags.GetBool("with-value")
	}
	if flags.Changed("no-axis") {
		noaxis, _ := flags.GetBool("no-axis")
		cc.WithAxis = !noaxis
	}
	if flags.Changed("bands") {
		cc.WithBands, _ = flags.GetBool("bands")
	}
	if flags.Changed("point") {
		cc.Point, _ = flags.GetString("point")
	}
	cc.Kind = strings.ToLower(cc.Kind)
	if cc.Width <= 0 || cc.Height <= 0 {
		return cc, fmt.Errorf("invalid chart dimension %vx%v", cc.Width, cc.Height)
	}
	return cc, nil
}

func columns(cmd *cobra.Command) source.Columns {
	var (
		flags = cmd.Flags()
		cols  = source.DefaultColumns()
	)
	cols.Label, _ = flags.GetInt("label-col")
	cols.X, _ = flags.GetInt("x-col")
	cols.Value, _ = flags.GetInt("value-col")
	if noheader, _ := flags.GetBool("no-header"); noheader {
		cols.Header = false
	}
	return cols
}

func buildDrawer(cc config.ChartConfig, cs charts.ColorStrategy, rows [][]string, cols source.Columns) (charts.Drawer, error) {
	opts := charts.Options{
		MaxTicks: cc.MaxTicks,
		Colors:   cs,
	}
	switch cc.Kind {
	case "bar", "":
		series, err := source.Series(rows, cols)
		if err != nil {
			return nil, err
		}
		return charts.BarChart[float64]{
			Options:   opts,
			Series:    series,
			WithValue: cc.WithValue,
		}, nil
	case "pie":
		series, err := source.Series(rows, cols)
		if err != nil {
			return nil, err
		}
		return charts.PieChart[float64]{
			Options:   opts,
			Series:    series,
			WithLabel: cc.WithValue,
		}, nil
	case "line":
		points, err := source.Points(rows, cols)
		if err != nil {
			return nil, err
		}
		return charts.LineChart[float64, float64]{
			Options: opts,
			Points:  points,
			Point:   charts.PointByName(cc.Point),
		}, nil
	default:
		return nil, fmt.Errorf("%s: %w", cc.Kind, errKind)
	}
}

func renderFile(file string, cc config.ChartConfig, d charts.Drawer) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	ch := charts.Chart{
		Title:     cc.Title,
		Width:     cc.Width,
		Height:    cc.Height,
		Padding:   charts.RelativePadding(cc.Width, cc.Height, cc.Padding),
		WithAxis:  cc.WithAxis,
		WithBands: cc.WithBands,
	}
	if err := ch.Render(w, d); err != nil {
		return err
	}
	return w.Close()
}

// outputFile gives the path of the SVG file rendered from file.
func outputFile(dir, file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".svg")
}

// outputFiles gives the SVG file of each input, failing when two inputs
// would be rendered to the same file.
func outputFiles(dir string, files []string) ([]string, error) {
	var (
		list = make([]string, 0, len(files))
		seen = make(map[string]string)
	)
	for _, file := range files {
		out := outputFile(dir, file)
		if other, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s: %s: %w", other, file, out, errDuplicate)
		}
		seen[out] = file
		list = append(list, out)
	}
	return list, nil
}
