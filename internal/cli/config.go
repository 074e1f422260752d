package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/arbor/internal/sanitize"
	"github.com/spf13/viper"
)

// Config keys, shared by flags, environment (ARBOR_ prefix) and arbor.yaml.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyManifest  = "manifest"
	KeyMetrics   = "metrics"
	KeyStyle     = "style"
	KeyNoBanner  = "no-banner"
	KeyMaxInput  = "max-input-size"
	KeyConfig    = "config"
)

// Config holds the host settings.
type Config struct {
	LogLevel  string   `mapstructure:"log-level"`
	LogFormat string   `mapstructure:"log-format"`
	Manifests []string `mapstructure:"manifest"`
	Metrics   bool     `mapstructure:"metrics"`
	Style     string   `mapstructure:"style"`
	NoBanner  bool     `mapstructure:"no-banner"`
	MaxInput  int      `mapstructure:"max-input-size"`
}

// NewViper returns a viper instance with arbor's defaults and environment binding.
// ARBOR_LOG_LEVEL overrides log-level, and so on.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyManifest, []string{})
	v.SetDefault(KeyMetrics, false)
	v.SetDefault(KeyStyle, "")
	v.SetDefault(KeyNoBanner, false)
	v.SetDefault(KeyMaxInput, sanitize.DefaultMaxInputSize)

	v.SetEnvPrefix("ARBOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file, if any, and unmarshals the merged settings.
// An explicit config path must exist; the default arbor.yaml in the working directory is optional.
func LoadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("arbor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Manifests = splitList(c.Manifests)
	return c, nil
}

// splitList accepts both repeated values and a comma separated environment value.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
