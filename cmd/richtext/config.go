package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/decor"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/markup"
)

// config is the merged result of flags, RICHTEXT_* variables and the
// config file, in that order of precedence.
type config struct {
	Title     string   `mapstructure:"title"`
	Button    string   `mapstructure:"button"`
	Button2   string   `mapstructure:"button2"`
	Width     float64  `mapstructure:"width"`
	Height    float64  `mapstructure:"height"`
	Scroll    bool     `mapstructure:"scroll"`
	TextScale float64  `mapstructure:"text-scale"`
	FontSize  float64  `mapstructure:"font-size"`
	Fonts     []string `mapstructure:"fonts"`
	Parser    string   `mapstructure:"parser"`
	Output    string   `mapstructure:"output"`
	Scale     float64  `mapstructure:"scale"`
	Glyphs    bool     `mapstructure:"glyphs"`
	Hidden    bool     `mapstructure:"hidden"`
	Cols      int      `mapstructure:"cols"`
	Warnings  bool     `mapstructure:"warnings"`
	LogLevel  string   `mapstructure:"log-level"`
	LinkColor string   `mapstructure:"link-color"`
	Dots      float64  `mapstructure:"dot-spacing"`
	Strip     bool     `mapstructure:"strip"`
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("richtext", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "Config file (yaml, toml or json)")
	flags.StringP("title", "t", "Notice", "Dialog title")
	flags.StringP("button", "b", "OK", "Primary button label")
	flags.String("button2", "", "Secondary button label (none if empty)")
	flags.Float64P("width", "w", richtext.DefaultWidth, "Dialog width")
	flags.Float64("height", richtext.DefaultHeight, "Dialog height")
	flags.Bool("scroll", false, "Scroll the text instead of growing the dialog")
	flags.Float64("text-scale", 1, "Text scale")
	flags.Float64("font-size", font.DefaultSize, "Font size of the Go fonts")
	flags.StringSlice("fonts", nil, "Four TTF files: regular,bold,italic,bold-italic")
	flags.String("parser", font.ParserXImage, "Font parser backend: ximage|gotext")
	flags.StringP("output", "o", "", "Write a PNG to this file (- for stdout) instead of the scene dump")
	flags.Float64("scale", 1, "PNG pixels per unit")
	flags.Bool("glyphs", false, "Include glyph sprites in the scene dump")
	flags.Bool("hidden", false, "Include hidden nodes in the scene dump")
	flags.Int("cols", -1, "Truncate dump lines to this width (0 disables, -1 uses the terminal width)")
	flags.Bool("warnings", false, "Print markup warnings to stderr")
	flags.String("log-level", "", "Log to stderr at this level: debug|info|warn|error")
	flags.String("link-color", "", "Link color as RRGGBB (default cyan)")
	flags.Float64("dot-spacing", decor.DotSpacing, "Distance between the dots under links")
	flags.Bool("strip", false, "Print the markup with its tags removed and exit")
	flags.SetInterspersed(true)
	return flags
}

// loadConfig merges the parsed flags with the environment and the config
// file named by --config.
func loadConfig(flags *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix("RICHTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// logger returns a stderr logger at level, or nil when level is empty.
func (c config) logger(w io.Writer) (*slog.Logger, error) {
	if c.LogLevel == "" {
		return nil, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// decor returns the decoration options named by the config.
func (c config) decor() ([]decor.Option, error) {
	if c.Dots <= 0 {
		return nil, fmt.Errorf("dot spacing %g must be positive", c.Dots)
	}
	opts := []decor.Option{decor.WithDotSpacing(c.Dots)}
	if c.LinkColor != "" {
		col, ok := markup.DecodeColor(strings.TrimPrefix(c.LinkColor, "#"))
		if !ok {
			return nil, fmt.Errorf("link color %q is not RRGGBB", c.LinkColor)
		}
		opts = append(opts, decor.WithLinkColor(col))
	}
	return opts, nil
}

// family loads the fonts named by the config.
func (c config) family(readFile func(string) ([]byte, error)) (*font.Family, error) {
	if len(c.Fonts) == 0 {
		if c.Parser == font.ParserXImage || c.Parser == "" {
			return font.DefaultFamily(c.FontSize)
		}
		return font.LoadFamily("Go", font.GoFontData(), c.FontSize, font.WithParser(c.Parser))
	}
	if len(c.Fonts) != 4 {
		return nil, fmt.Errorf("--fonts wants 4 files, got %d", len(c.Fonts))
	}
	var data [4][]byte
	for i, path := range c.Fonts {
		b, err := readFile(path)
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return font.LoadFamily(c.Fonts[0], data, c.FontSize, font.WithParser(c.Parser))
}
