package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/twconfig"
)

// settingsFile is the CLI's own configuration, not a tailwind config.
const settingsFile = ".twconfig.yaml"

// defaultConfigFile is used when neither arguments nor settings name a config.
const defaultConfigFile = "tailwind.config.js"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = settingsFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set override file and env values;
	// defaults are supplied by the getXWithFallback helpers.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the settings file and environment variables.
// Kept separate from loadConfig so tests do not need a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TWCONFIG_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a settings key. The first
// underscore separates the section, the rest become hyphens:
//
//	TWCONFIG_VERBOSE             -> verbose
//	TWCONFIG_BUILD_BINARY        -> build.binary
//	TWCONFIG_LINT_OUTPUT_FORMAT  -> lint.output-format
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "TWCONFIG_"))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// configPaths returns the tailwind configs to work on: positional arguments,
// then the configs setting, then tailwind.config.js.
func configPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if paths := k.Strings("configs"); len(paths) > 0 {
		return paths
	}
	return []string{defaultConfigFile}
}

// loadOptions builds the library options shared by all commands.
func loadOptions() []twconfig.LoadOption {
	var opts []twconfig.LoadOption
	if root := getStringWithFallback("root", "root", ""); root != "" {
		opts = append(opts, twconfig.WithRoot(root))
	}
	return opts
}

// projectRoot is the directory content globs are relative to.
func projectRoot(configPath string) string {
	if root := getStringWithFallback("root", "root", ""); root != "" {
		return root
	}
	return filepath.Dir(configPath)
}

// buildReportConfig constructs the reporter settings from koanf state.
func buildReportConfig() twconfig.ReportConfig {
	return twconfig.ReportConfig{
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
