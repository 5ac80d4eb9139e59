// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-matcher/internal/profile"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/textextract"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. RESUME_MATCHER_DATABASE_URL
	EnvPrefix = "RESUME_MATCHER"
	// DefaultConfigName is looked up in the working directory when no --config is given
	DefaultConfigName = "resume-matcher"
)

// Config is the runtime configuration, read from an optional file and environment variables
type Config struct {
	Weights          types.ScoringWeights `mapstructure:"weights"`
	MaxDocumentBytes int64                `mapstructure:"max_document_bytes" validate:"gt=0"`
	MaxTextChars     int                  `mapstructure:"max_text_chars" validate:"gt=0"`
	VocabularyFile   string               `mapstructure:"vocabulary_file" validate:"omitempty,file"`
	DatabaseURL      string               `mapstructure:"database_url"`
	Concurrency      int                  `mapstructure:"concurrency" validate:"gte=1,lte=64"`
	Log              LogConfig            `mapstructure:"log"`
}

// LogConfig selects the log encoding and level
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing is overridden
func Defaults() Config {
	return Config{
		Weights:          scoring.DefaultWeights(),
		MaxDocumentBytes: textextract.DefaultMaxBytes,
		MaxTextChars:     profile.DefaultMaxTextChars,
		Concurrency:      ranking.DefaultConcurrency,
	}
}

// NewViper returns a viper instance with defaults and environment bindings.
// When path is set the file must exist; otherwise resume-matcher.{yaml,json}
// in the working directory is read if present.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers every key so that environment overrides reach Unmarshal
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("weights.skills", d.Weights.Skills)
	v.SetDefault("weights.education", d.Weights.Education)
	v.SetDefault("weights.experience", d.Weights.Experience)
	v.SetDefault("weights.application_quality", d.Weights.ApplicationQuality)
	v.SetDefault("max_document_bytes", d.MaxDocumentBytes)
	v.SetDefault("max_text_chars", d.MaxTextChars)
	v.SetDefault("vocabulary_file", "")
	v.SetDefault("database_url", "")
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// FromViper decodes and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the config file at path (or the default file, if any) and the environment
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// Validate checks field ranges and that the scoring weights sum to 1.0
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation (value %v)",
				configKey(fe.StructNamespace()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if err := scoring.ValidateWeights(c.Weights); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

var fieldKeys = map[string]string{
	"MaxDocumentBytes": "max_document_bytes",
	"MaxTextChars":     "max_text_chars",
	"VocabularyFile":   "vocabulary_file",
	"Concurrency":      "concurrency",
}

// configKey maps a validator namespace such as Config.MaxTextChars to its file key
func configKey(namespace string) string {
	field := namespace[strings.LastIndex(namespace, ".")+1:]
	if key, ok := fieldKeys[field]; ok {
		return key
	}
	return field
}
