// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/instgen/cli/internal/config"
	"github.com/instgen/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	appConfig *config.Config
)

// NewRootCmd creates the root command for the instgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "instgen",
		Short:         "Install script generator",
		Long:          `instgen turns a declarative package manifest into a shell install script for a chosen Linux distribution.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: INSTGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config still work.
		loadedConfig = (&config.Config{}).WithDefaults()
	}
	appConfig = loadedConfig

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Timestamps precedence: flag (if explicitly set) > config > default (off)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if appConfig.Log.Timestamps != nil {
		logCfg.Timestamps = appConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"target", appConfig.Target,
			"scriptDir", appConfig.ScriptDir,
		)
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return (&config.Config{}).WithDefaults()
}
