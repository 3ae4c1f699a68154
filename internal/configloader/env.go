package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/texcalc/pkg/config"
)

// envVarPrefix is the prefix for all texcalc environment variables.
const envVarPrefix = "TEXCALC_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TEXCALC_ (e.g., TEXCALC_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	bools := []struct {
		name   string
		target *bool
	}{
		{"WRITE", &cfg.Write},
		{"BACKUP", &cfg.Backup},
		{"SHOW_EXPR", &cfg.ShowExpr},
		{"STRICT", &cfg.Strict},
	}
	for _, b := range bools {
		envVar := envVarPrefix + b.name
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		*b.target = parsed
	}

	return nil
}
