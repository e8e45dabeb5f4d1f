package main

import (
	"github.com/spf13/cobra"

	"seriesreport/internal/config"
	"seriesreport/internal/logging"
	"seriesreport/internal/run"
)

type reportFlags struct {
	dataDir  string
	format   string
	style    string
	logLevel string
	noColor  bool
	queries  []string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags reportFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "seriesreport",
		Short:         "Load TV series ratings and print the rating report",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.Apply(flags.overrides(cmd)); err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if ctx.configSeen {
				logger.Debug("config loaded", logging.String("path", ctx.configPath))
			}
			return run.Execute(cmd.Context(), run.Options{
				Config: cfg,
				Stdout: cmd.OutOrStdout(),
				Logger: logger,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the three CSV inputs")
	rootCmd.Flags().StringArrayVarP(&flags.queries, "query", "q", nil, "Run only this query ID (repeatable)")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "Output format: table or json")
	rootCmd.Flags().StringVar(&flags.style, "style", "", "Table style: grid, rounded, ascii or markdown")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable bold titles on terminals")

	rootCmd.AddCommand(newQueriesCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func (f *reportFlags) overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	changed := cmd.Flags().Changed
	if changed("data-dir") {
		o.DataDir = &f.dataDir
	}
	if changed("format") {
		o.Format = &f.format
	}
	if changed("style") {
		o.Style = &f.style
	}
	if changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	if changed("no-color") && f.noColor {
		color := false
		o.Color = &color
	}
	if changed("query") {
		o.Queries = f.queries
	}
	return o
}
