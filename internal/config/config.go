package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Host            string `mapstructure:"host"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// CatalogConfig points at the products document.
type CatalogConfig struct {
	DataURL string `mapstructure:"data_url"` // http(s) URL or local path
	Timeout int    `mapstructure:"timeout"`  // seconds
}

// UIConfig holds the interaction and animation tuning of the page.
type UIConfig struct {
	ScrollDebounceMs   int `mapstructure:"scroll_debounce_ms"`
	BackToTopThreshold int `mapstructure:"back_to_top_threshold"`
	ScrollProbeOffset  int `mapstructure:"scroll_probe_offset"`
	CountUpDurationMs  int `mapstructure:"count_up_duration_ms"`
	CountUpFrameMs     int `mapstructure:"count_up_frame_ms"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c UIConfig) ScrollDebounce() time.Duration {
	return time.Duration(c.ScrollDebounceMs) * time.Millisecond
}

func (c UIConfig) CountUpDuration() time.Duration {
	return time.Duration(c.CountUpDurationMs) * time.Millisecond
}

func (c UIConfig) CountUpFrame() time.Duration {
	return time.Duration(c.CountUpFrameMs) * time.Millisecond
}

// Load loads configuration from config.yaml with environment variable overrides.
// The file is looked up in the given directories, or the current directory when none is given.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.yaml file not found in %s", strings.Join(paths, ", "))
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Catalog.DataURL) == "" {
		return errors.New("catalog.data_url is required")
	}
	if c.UI.ScrollDebounceMs < 0 || c.UI.CountUpDurationMs < 0 {
		return errors.New("ui durations must not be negative")
	}
	if c.UI.CountUpFrameMs <= 0 {
		return errors.New("ui.count_up_frame_ms must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("catalog.data_url", "data/products.json")
	v.SetDefault("catalog.timeout", 15)

	v.SetDefault("ui.scroll_debounce_ms", 100)
	v.SetDefault("ui.back_to_top_threshold", 500)
	v.SetDefault("ui.scroll_probe_offset", 200)
	v.SetDefault("ui.count_up_duration_ms", 1000)
	v.SetDefault("ui.count_up_frame_ms", 16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
