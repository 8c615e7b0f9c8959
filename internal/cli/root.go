// Package cli holds the command line entry points: the desktop calculator and
// a headless report of the saved grid.
package cli

import (
	"io"

	"charge-calculator/internal/app"
	"charge-calculator/internal/config"
	"charge-calculator/internal/logger"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DataDir    string
	LogLevel   string
	JSONLogs   bool
}

// NewRootCommand creates the root command. Without a subcommand it opens the
// calculator window.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "charge-calculator",
		Short:         "PIN-protected charge composition calculator",
		Long:          "Computes the weighted average element composition of a furnace charge\nfrom up to nine materials, behind a 4-digit PIN.",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default <user config dir>/charge-calculator/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding saved_data.json")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.JSONLogs, "json-logs", false, "write logs as JSON lines")

	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// Config loads the configuration file and environment, then applies any
// flag the user set explicitly.
func (o *RootOptions) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = o.DataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = o.JSONLogs
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Logger builds the logger described by cfg, writing to w
func (o *RootOptions) Logger(cfg config.Config, w io.Writer) logger.Logger {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		// Validate already rejected unknown levels
		return logger.NoOpLogger{}
	}
	return logger.New(w, level, cfg.JSONLogs)
}

func runGUI(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := opts.Config(cmd)
	if err != nil {
		return err
	}
	log := opts.Logger(cfg, cmd.ErrOrStderr())

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("CLI", err, nil)
		return err
	}
	return application.Run()
}
