package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/texcalc/internal/configloader"
	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/pkg/config"
)

// loadConfig resolves the configuration for cmd, merging cliCfg over the
// discovered files and environment. It also applies the log level and
// returns a context carrying the configured logger.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (context.Context, *config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return ctx, nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return ctx, nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ctx, nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return ctx, nil, errors.Join(errConfig, err)
	}
	cfg := loadResult.Config

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logger.SetLevel(log.DebugLevel)
	}
	logging.SetDefault(logger)

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldFormat, cfg.Format,
		logging.FieldWrite, cfg.Write,
		logging.FieldBackup, cfg.Backup,
	)

	return logging.WithLogger(ctx, logger), cfg, nil
}
