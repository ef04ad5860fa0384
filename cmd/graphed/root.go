package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/psidex/graphed/internal/config"
	"github.com/psidex/graphed/internal/lib"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}

	root := &cobra.Command{
		Use:           "graphed",
		Short:         "graphed - an interactive point and segment editor",
		Long:          "Place points with a left click, drag them, chain them into segments\nand right click to delete them.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("graphed {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&ro.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		serveCmd(ro),
		renderCmd(ro),
	)
	return root
}

// load reads the config and builds the logger every command uses.
func (ro *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return nil, nil, err
	}
	if ro.logLevel != "" {
		cfg.Log.Level = ro.logLevel
	}

	level, err := lib.ParseSLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, lib.NiceLogger(os.Stderr, level), nil
}
