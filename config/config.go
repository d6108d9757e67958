// Package config loads the settings used to draw charts from a YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charts "github.com/midbel/chartkit"
	"github.com/spf13/viper"
)

const envPrefix = "CHARTKIT"

var ErrUnknownStrategy = errors.New("unknown color strategy")

type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"   yaml:"chart"`
	Colors  ColorConfig   `mapstructure:"colors"  yaml:"colors"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type ChartConfig struct {
	Kind      string  `mapstructure:"kind"       yaml:"kind"` // "bar", "line" or "pie"
	Title     string  `mapstructure:"title"      yaml:"title"`
	MaxTicks  uint8   `mapstructure:"max_ticks"  yaml:"max_ticks"`
	Width     float64 `mapstructure:"width"      yaml:"width"`
	Height    float64 `mapstructure:"height"     yaml:"height"`
	Padding   float64 `mapstructure:"padding"    yaml:"padding"` // fraction of width and height
	WithAxis  bool    `mapstructure:"with_axis"  yaml:"with_axis"`
	WithBands bool    `mapstructure:"with_bands" yaml:"with_bands"`
	WithValue bool    `mapstructure:"with_value" yaml:"with_value"`
	Point     string  `mapstructure:"point"      yaml:"point"`
}

// ColorConfig selects how colors are given to the elements of a chart.
type ColorConfig struct {
	Strategy string   `mapstructure:"strategy" yaml:"strategy"` // "palette", "gradient" or "linear-gradient"
	Palette  string   `mapstructure:"palette"  yaml:"palette"`  // name of a builtin palette
	Colors   []string `mapstructure:"colors"   yaml:"colors"`
	From     string   `mapstructure:"from"     yaml:"from"`
	To       string   `mapstructure:"to"       yaml:"to"`
}

type OutputConfig struct {
	Dir      string `mapstructure:"dir"      yaml:"dir"`
	Parallel int    `mapstructure:"parallel" yaml:"parallel"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file. When file is empty, chartkit.yaml
// is searched in the current directory then in ~/.chartkit and defaults are
// used if none is found.
//
// Environment variables override values read from file, eg
// CHARTKIT_CHART_KIND.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("chartkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".chartkit"))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.kind", "bar")
	v.SetDefault("chart.title", "")
	v.SetDefault("chart.max_ticks", charts.DefaultMaxTicks)
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 600)
	v.SetDefault("chart.padding", 0.1)
	v.SetDefault("chart.with_axis", true)
	v.SetDefault("chart.with_bands", false)
	v.SetDefault("chart.with_value", false)
	v.SetDefault("chart.point", "")

	v.SetDefault("colors.strategy", "palette")
	v.SetDefault("colors.palette", "catppuccin")
	v.SetDefault("colors.colors", []string{})
	v.SetDefault("colors.from", "")
	v.SetDefault("colors.to", "")

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.parallel", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Strategy builds the color strategy described by c. Explicit colors take
// precedence over the named palette.
func (c ColorConfig) Strategy() (charts.ColorStrategy, error) {
	strategy := strings.ToLower(c.Strategy)
	switch strategy {
	case "", "palette":
		if len(c.Colors) > 0 {
			return charts.NewPalette(c.Colors...)
		}
		return PaletteByName(c.Palette)
	case "gradient", "linear-gradient":
		from, err := charts.Hex(c.From)
		if err != nil {
			return nil, fmt.Errorf("gradient start: %w", err)
		}
		to, err := charts.Hex(c.To)
		if err != nil {
			return nil, fmt.Errorf("gradient end: %w", err)
		}
		g := charts.Gradient{
			From:   from,
			To:     to,
			Linear: strategy == "linear-gradient",
		}
		return g, nil
	default:
		return nil, charts.ConfigError{
			Option: "strategy",
			Value:  c.Strategy,
			Err:    ErrUnknownStrategy,
		}
	}
}

// PaletteByName returns one of the builtin palettes. An empty name gives
// the default palette.
func PaletteByName(name string) (charts.Palette, error) {
	switch strings.ToLower(name) {
	case "", "catppuccin":
		return charts.Catppuccin, nil
	case "category10":
		return charts.Category10, nil
	case "tableau10":
		return charts.Tableau10, nil
	default:
		return nil, charts.ConfigError{
			Option: "palette",
			Value:  name,
			Err:    charts.ErrEmptyPalette,
		}
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
