package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twconfig",
	Short: "Validate and build with tailwindcss configuration files",
	Long: `Load tailwind.config.js (or YAML, JSON, TOML) configurations, check them
against the schema, lint them against the project and forward them to the
tailwindcss CLI. Several files are merged in order, later files win.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	// Default behavior: validate when no subcommand is given.
	RunE:          runValidate,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", settingsFile, "Settings file path")
	rootCmd.PersistentFlags().String("root", "", "Project root for content globs and plugins (default: config directory)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
