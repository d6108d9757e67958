package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	charts "github.com/midbel/chartkit"
	"github.com/spf13/cobra"
)

var ticksCmd = &cobra.Command{
	Use:   "ticks",
	Short: "print the tick plan of a range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			flags    = cmd.Flags()
			min, _   = flags.GetFloat64("min")
			max, _   = flags.GetFloat64("max")
			count, _ = flags.GetUint8("max-ticks")
		)
		if !flags.Changed("max-ticks") {
			count = cfg.Chart.MaxTicks
		}
		if zero, _ := flags.GetBool("zero"); zero {
			rg, err := charts.Extent([]float64{min, max})
			if err != nil {
				return err
			}
			min, max = rg.Min(), rg.Max()
		}
		ts, err := charts.NiceTicks(min, max, count)
		if err != nil {
			return err
		}
		logger.Debug("ticks planned", "min", min, "max", max, "max_ticks", count)
		return printTicks(cmd.OutOrStdout(), ts)
	},
}

func init() {
	flags := ticksCmd.Flags()
	flags.Float64("min", 0, "lowest value of the range")
	flags.Float64("max", 0, "highest value of the range")
	flags.Uint8("max-ticks", charts.DefaultMaxTicks, "maximum number of ticks")
	flags.Bool("zero", false, "extend the range to include zero")
}

func printTicks(w io.Writer, ts charts.TickSpacing) error {
	fmt.Fprintf(w, "min: %s, max: %s, spacing: %s, ticks: %d\n",
		charts.FormatValue(ts.MinPoint),
		charts.FormatValue(ts.MaxPoint),
		charts.FormatValue(ts.Spacing),
		ts.NumTicks,
	)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, t := range ts.Ticks() {
		fmt.Fprintf(tw, "%s\t%s%%\t\n", t.Label, charts.FormatValue(t.Position))
	}
	return tw.Flush()
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "print the colors given to the elements of a chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			flags    = cmd.Flags()
			count, _ = flags.GetInt("count")
			cc       = cfg.Colors
		)
		if flags.Changed("strategy") {
			cc.Strategy, _ = flags.GetString("strategy")
		}
		if flags.Changed("palette") {
			cc.Palette, _ = flags.GetString("palette")
		}
		if flags.Changed("from") {
			cc.From, _ = flags.GetString("from")
		}
		if flags.Changed("to") {
			cc.To, _ = flags.GetString("to")
		}
		cs, err := cc.Strategy()
		if err != nil {
			return err
		}
		colors, err := charts.Colors(cs, count)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i, c := range colors {
			fmt.Fprintf(w, "%d\t%s\n", i, c)
		}
		return nil
	},
}

func init() {
	flags := colorsCmd.Flags()
	flags.Int("count", 12, "number of colors")
	flags.String("strategy", "", "color strategy (palette, gradient, linear-gradient)")
	flags.String("palette", "", "builtin palette (catppuccin, category10, tableau10)")
	flags.String("from", "", "first color of gradient")
	flags.String("to", "", "last color of gradient")
}
