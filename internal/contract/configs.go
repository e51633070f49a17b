package contract

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/scorecard/schema"
)

// Default values for configuration.
const (
	DefaultEndpoint  = "http://localhost:8765/project/assist"
	DefaultTimeout   = 30 * time.Second
	DefaultAddr      = ":8080"
	DefaultPrecision = 3
	MaxPrecision     = 6
	MaxResultLimit   = 1000
	MaxNameLength    = 60
)

// StdinInput is the input value that reads experiments from standard input.
const StdinInput = "-"

// DefaultWorkers is the default number of concurrent delete requests.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for scorecard.
// This struct is the "final, validated" config.
type Config struct {
	Endpoint  string        // assist service URL
	InputFile string        // read experiments from a file instead ("-" for stdin)
	Timeout   time.Duration // per HTTP request

	Filter       string
	Columns      schema.ColumnStrategy
	ResultLimit  int // 0 = all rows
	Disambiguate bool

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	LogLevel  schema.LogLevel
	Workers   int
	AssumeYes bool // skip delete confirmation
	Addr      string
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Endpoint     string `mapstructure:"endpoint"`
	Input        string `mapstructure:"input"`
	Timeout      string `mapstructure:"timeout"`
	Filter       string `mapstructure:"filter"`
	Columns      string `mapstructure:"columns"`
	Limit        int    `mapstructure:"limit"`
	Disambiguate bool   `mapstructure:"disambiguate"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	LogLevel     string `mapstructure:"log-level"`

	// --- Fields from deleteCmd.Flags() ---
	Workers int  `mapstructure:"workers"`
	Yes     bool `mapstructure:"yes"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// UsesFile reports whether experiments are read from a file or stdin.
func (c *Config) UsesFile() bool {
	return c.InputFile != ""
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the table and runtime fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Filter = input.Filter
	cfg.Disambiguate = input.Disambiguate
	cfg.AssumeYes = input.Yes

	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Columns Validation ---
	cfg.Columns = schema.ColumnStrategy(strings.ToLower(input.Columns))
	if cfg.Columns == "" {
		cfg.Columns = schema.FirstColumns
	}
	if _, ok := schema.ValidColumnStrategies[cfg.Columns]; !ok {
		return fmt.Errorf("invalid columns strategy '%s'. must be first, union", input.Columns)
	}

	// --- 4. Log level Validation ---
	cfg.LogLevel = schema.LogLevel(strings.ToLower(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = schema.WarnLevel
	}
	if _, ok := schema.ValidLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	return nil
}

// processSource validates where experiments come from.
func processSource(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = strings.TrimSpace(input.Input)

	cfg.Endpoint = strings.TrimSpace(input.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", cfg.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must be an http or https URL (received %q)", cfg.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q has no host", cfg.Endpoint)
	}

	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.Timeout = d
	}
	return nil
}

// processOutput validates the rendering fields.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet, html", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profilePrefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}
