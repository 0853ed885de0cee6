package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"saathi/internal/config"
	"saathi/internal/logging"
)

var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "saathi",
		Short: "Bilingual conversational task manager",
		Long: "Saathi is a task-management agent that understands English and Urdu.\n" +
			"Run `saathi serve` for the HTTP API or `saathi chat` for a local conversation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to saathi.yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newChatCmd(opts))
	cmd.AddCommand(newInitCmd())

	return cmd
}

// loadConfig resolves the runtime config and configures the global log sink.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if err := logging.Configure(logging.ParseLevel(level), cfg.Log.File); err != nil {
		return config.Config{}, fmt.Errorf("configure logging: %w", err)
	}
	return cfg, nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter saathi.yaml to the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteStarter("saathi.yaml"); err != nil {
				return err
			}
			cmd.Println("wrote saathi.yaml")
			return nil
		},
	}
}
