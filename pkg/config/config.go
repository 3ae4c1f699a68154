// Package config defines the configuration types for texcalc.
// These types are pure data structures; loading lives in internal/configloader.
package config

// OutputFormat specifies how replacements are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for texcalc.
// Answer precision is fixed and deliberately not configurable.
type Config struct {
	// Color controls colorized output ("auto", "always", "never").
	Color ColorMode `yaml:"color,omitempty"`

	// Format is the report format for apply ("text", "json" or "diff").
	Format OutputFormat `yaml:"format,omitempty"`

	// LogLevel is the diagnostic log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level,omitempty"`

	// Write rewrites files in place instead of only reporting.
	Write bool `yaml:"write,omitempty"`

	// Backup keeps a copy of a file before it is rewritten.
	Backup bool `yaml:"backup,omitempty"`

	// ShowExpr prints the translated expression next to each answer.
	ShowExpr bool `yaml:"show_expr,omitempty"`

	// Strict makes empty answers a failing exit status.
	Strict bool `yaml:"strict,omitempty"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Color:    ColorAuto,
		Format:   FormatText,
		LogLevel: "info",
	}
}
