// Command draw renders charts from CSV and XLSX files to SVG and inspects
// the tick plans and colors used to draw them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/midbel/chartkit/config"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "draw",
	Short:         "draw charts from data files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		c, err := config.Load(file)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			c.Logging.Level = level
		}
		cfg = c
		logger = setupLogger(cmd.ErrOrStderr(), cfg.Logging)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./chartkit.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(ticksCmd)
	rootCmd.AddCommand(colorsCmd)
}

func setupLogger(w io.Writer, c config.LoggingConfig) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: parseLevel(c.Level),
	}
	var handler slog.Handler
	if strings.ToLower(c.Format) == "json" {
		handler = slog.NewJSONHandler(w, &opts)
	} else {
		handler = slog.NewTextHandler(w, &opts)
	}
	return slog.New(handler)
}

func parseLevel(str string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(str)); err != nil {
		return slog.LevelInfo
	}
	return level
}
