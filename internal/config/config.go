// Package config loads tag cloud options from command-line flags and an
// optional configuration file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tagcloud/internal/render"
)

// Configuration keys, as they appear in a config file.
const (
	KeySourcePath  = "source_path"
	KeyOutputPath  = "output_path"
	KeyTopN        = "top_n"
	KeyStylesheet  = "stylesheet"
	KeyClassPrefix = "class_prefix"
	KeySeparators  = "separators"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyProgress    = "progress"
)

// DefaultTopN is used when no word count is configured.
const DefaultTopN = 100

// ErrInvalidConfig is returned by Validate and by Load for values of the
// wrong type.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every recognized option.
type Config struct {
	// SourcePath is the text document to tokenize.
	SourcePath string
	// OutputPath is the HTML file to write.
	OutputPath string
	// TopN is the number of words to keep.
	TopN int

	Stylesheet  string
	ClassPrefix string
	// Separators replaces the default punctuation and digit separators.
	// ASCII whitespace always separates words. Empty keeps the defaults.
	Separators string

	LogLevel  string
	LogFormat string
	// Progress shows a progress bar while the source is read.
	Progress bool
}

// flagKeys maps each flag name to the configuration key it populates.
var flagKeys = map[string]string{
	"source":       KeySourcePath,
	"output":       KeyOutputPath,
	"top":          KeyTopN,
	"stylesheet":   KeyStylesheet,
	"class-prefix": KeyClassPrefix,
	"separators":   KeySeparators,
	"log-level":    KeyLogLevel,
	"log-format":   KeyLogFormat,
	"progress":     KeyProgress,
}

// BindFlags registers the tag cloud flags on flags and binds them to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String("config", "", "Path to a YAML, JSON or TOML file providing any of the options below.")
	flags.StringP("source", "s", "", "Text file to read words from.")
	flags.StringP("output", "o", "", "HTML file to write the tag cloud to.")
	flags.IntP("top", "n", DefaultTopN, "Number of most frequent words to include.")
	flags.String("stylesheet", render.DefaultStylesheet, "Stylesheet href referenced by the generated page.")
	flags.String("class-prefix", render.DefaultClassPrefix, "Prefix of the font-size CSS classes.")
	flags.String("separators", "", "Characters that delimit words, replacing the default punctuation and digits.")
	flags.String("log-level", "info", "Log level (debug, info, warn, error).")
	flags.String("log-format", "text", "Log format (text, json).")
	flags.Bool("progress", false, "Show a progress bar while reading the source.")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return v.BindPFlag("config", flags.Lookup("config"))
}

// Load reads the config file named by the "config" key, if any, from fs and
// returns the merged configuration. Flags that were set explicitly take
// precedence over the file.
func Load(v *viper.Viper, fs afero.Fs) (Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetFs(fs)
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// GetInt maps anything it cannot convert to 0, which is a valid top_n.
	topN, err := cast.ToIntE(v.Get(KeyTopN))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyTopN, err)
	}
	progress, err := cast.ToBoolE(v.Get(KeyProgress))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyProgress, err)
	}

	return Config{
		SourcePath:  v.GetString(KeySourcePath),
		OutputPath:  v.GetString(KeyOutputPath),
		TopN:        topN,
		Stylesheet:  v.GetString(KeyStylesheet),
		ClassPrefix: v.GetString(KeyClassPrefix),
		Separators:  v.GetString(KeySeparators),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		Progress:    progress,
	}, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var problems []string
	if c.SourcePath == "" {
		problems = append(problems, KeySourcePath+" is required")
	}
	if c.OutputPath == "" {
		problems = append(problems, KeyOutputPath+" is required")
	}
	if c.SourcePath != "" && filepath.Clean(c.SourcePath) == filepath.Clean(c.OutputPath) {
		problems = append(problems, KeyOutputPath+" must differ from "+KeySourcePath)
	}
	if c.TopN < 0 {
		problems = append(problems, fmt.Sprintf("%s must be >= 0, got %d", KeyTopN, c.TopN))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown %s %q", KeyLogLevel, c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("unknown %s %q", KeyLogFormat, c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
