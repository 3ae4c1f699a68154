package configloader

import "github.com/yaklabco/texcalc/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override overwrites base if non-empty
//   - Booleans: override can only switch a value on, since false is the zero value
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	result.Write = result.Write || override.Write
	result.Backup = result.Backup || override.Backup
	result.ShowExpr = result.ShowExpr || override.ShowExpr
	result.Strict = result.Strict || override.Strict

	return result
}
