// Package config resolves run settings from defaults, an optional config
// file, STOCKRET_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/komsit37/stockret/pkg/stockret/report"
	"github.com/komsit37/stockret/pkg/stockret/sink"
)

// EnvPrefix is prepended to every environment key, e.g. STOCKRET_TOP.
const EnvPrefix = "STOCKRET"

// Config holds the resolved settings for one run.
type Config struct {
	Top          int           `mapstructure:"top" validate:"gte=1"`
	Output       string        `mapstructure:"output" validate:"required"`
	Format       string        `mapstructure:"format" validate:"oneof=table json yaml names"`
	Color        bool          `mapstructure:"color"`
	MaxColWidth  int           `mapstructure:"max_col_width" validate:"gte=0"`
	Sector       string        `mapstructure:"sector"`
	Columns      []string      `mapstructure:"columns"`
	Source       string        `mapstructure:"source" validate:"oneof=file yahoo"`
	QuoteTimeout time.Duration `mapstructure:"quote_timeout" validate:"gt=0"`
	NoExport     bool          `mapstructure:"no_export"`
	LogLevel     string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("top", report.DefaultTopN)
	v.SetDefault("output", sink.DefaultOutput)
	v.SetDefault("format", "table")
	v.SetDefault("color", true)
	v.SetDefault("max_col_width", 0)
	v.SetDefault("sector", "")
	v.SetDefault("columns", []string{})
	v.SetDefault("source", "file")
	v.SetDefault("quote_timeout", 5*time.Second)
	v.SetDefault("no_export", false)
	v.SetDefault("log_level", "info")
}

// Load reads configuration into a validated Config. file may be empty, in
// which case stockret.yaml in the working directory is used when present.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("stockret")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

var validate = validator.New()

// Validate checks field constraints and reports them in one error.
func Validate(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag()+paramSuffix(fe.Param()), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
