package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/filetags/internal/config"
	"github.com/harrison/filetags/internal/display"
	"github.com/harrison/filetags/internal/logger"
	"github.com/harrison/filetags/internal/registry"
	"github.com/spf13/cobra"
)

// loadConfig resolves configuration from the global flags and returns it
// with a console logger on stderr at the configured level.
// --config wins over --dir for locating the file; --dir still overrides
// the directory named inside it.
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.ConsoleLogger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")

	var cfg *config.Config
	var err error
	switch {
	case configPath != "":
		cfg, err = config.LoadConfig(configPath)
	case dir != "":
		cfg, err = config.LoadConfigFromDir(dir)
	default:
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var dirFlag, levelFlag *string
	var hiddenFlag *bool
	configDir := cfg.Dir
	if configPath != "" && cmd.Flags().Changed("dir") {
		dirFlag = &dir
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		levelFlag = &level
	}
	if cmd.Flags().Changed("include-hidden") {
		include, _ := cmd.Flags().GetBool("include-hidden")
		exclude := !include
		hiddenFlag = &exclude
	}
	cfg.MergeWithFlags(dirFlag, levelFlag, hiddenFlag, nil)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if dirFlag != nil && configDir != "." && configDir != cfg.Dir {
		log.LogWarn(fmt.Sprintf("--dir %s overrides dir %s from %s", cfg.Dir, configDir, configPath))
	}
	return cfg, log, nil
}

// buildRegistry populates a registry from cfg, logging each tag and
// warning on errOut about tags that matched nothing. The warning is
// suppressed at log level "error".
func buildRegistry(cfg *config.Config, log *logger.ConsoleLogger, errOut io.Writer) (*registry.Registry, error) {
	reg, err := registry.New(cfg.Dir,
		registry.WithLogger(log),
		registry.WithExcludeHidden(cfg.ExcludeHidden),
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(reg); err != nil {
		return nil, err
	}

	var empty []string
	for _, tag := range reg.ListTags() {
		files, err := reg.Files(tag)
		if err != nil {
			return nil, err
		}
		log.LogTagAdded(tag, len(files))
		if len(files) == 0 {
			empty = append(empty, tag)
		}
	}
	if len(empty) > 0 && log.Level() != "error" {
		display.WarnEmptyTags(empty).Display(errOut)
	}

	return reg, nil
}

// setupRegistry is loadConfig followed by buildRegistry.
func setupRegistry(cmd *cobra.Command) (*registry.Registry, *config.Config, *logger.ConsoleLogger, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	reg, err := buildRegistry(cfg, log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, err
	}
	return reg, cfg, log, nil
}
