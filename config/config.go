// Package config loads gryd.yaml and GRYD_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ByLCY/gryd/layout"
)

// EnvPrefix is prepended to every environment override, e.g. GRYD_RENDER_WIDTH.
const EnvPrefix = "GRYD"

// Config is the full configuration tree.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// LoggerConfig controls the zap logger built by the observability package.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the terminal color of each log level.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// RenderConfig holds the defaults of the render command.
type RenderConfig struct {
	Width       float64 `mapstructure:"width" yaml:"width"`
	Height      float64 `mapstructure:"height" yaml:"height"`
	Format      string  `mapstructure:"format" yaml:"format"`
	Concurrency int     `mapstructure:"concurrency" yaml:"concurrency"`
	ShowGutters bool    `mapstructure:"show_gutters" yaml:"show_gutters"`
	TrackColor  string  `mapstructure:"track_color" yaml:"track_color"`
	GutterColor string  `mapstructure:"gutter_color" yaml:"gutter_color"`
	CellColor   string  `mapstructure:"cell_color" yaml:"cell_color"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "gryd")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	v.SetDefault("render.width", 1280)
	v.SetDefault("render.height", 800)
	v.SetDefault("render.format", "pdf")
	v.SetDefault("render.concurrency", 4)
	v.SetDefault("render.show_gutters", true)
	v.SetDefault("render.track_color", "#E0E0E0")
	v.SetDefault("render.gutter_color", "#DA1E28")
	v.SetDefault("render.cell_color", "#8D8D8D")
}

// BindEnv enables GRYD_SECTION_KEY overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewDefaultConfig returns the configuration made of defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path, or gryd.yaml from the working directory
// when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gryd")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// Validate checks the render section for usable values.
func (c *Config) Validate() error {
	r := c.Render
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("render.width and render.height must not be negative")
	}
	switch strings.ToLower(r.Format) {
	case "pdf", "svg":
	default:
		return fmt.Errorf("render.format must be pdf or svg, got %q", r.Format)
	}
	if r.Concurrency <= 0 {
		return fmt.Errorf("render.concurrency must be a positive integer")
	}
	for key, value := range map[string]string{
		"render.track_color":  r.TrackColor,
		"render.gutter_color": r.GutterColor,
		"render.cell_color":   r.CellColor,
	} {
		if _, err := layout.ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}
