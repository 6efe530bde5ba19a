package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tailwind config and a .twconfig.yaml settings file",
	Long: `Create tailwind.config.js (or .yaml/.json/.toml with --format) scanning
./templates and a .twconfig.yaml settings file pointing at it. --prefixed
writes the variant with the tw- class prefix and the line-clamp plugin.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	f := initCmd.Flags()
	f.Bool("force", false, "Overwrite existing files")
	f.Bool("prefixed", false, "Use the tw- prefix and enable @tailwindcss/line-clamp")
	f.String("format", "js", "Config format: js|yaml|json|toml")
}

// starterConfig is the configuration init writes.
func starterConfig(prefixed bool) *twconfig.BuildConfiguration {
	cfg := &twconfig.BuildConfiguration{
		ContentGlobs:        []string{"./templates/**/*.html"},
		CorePluginOverrides: map[string]bool{"preflight": false},
		Plugins:             []twconfig.Plugin{},
	}
	if prefixed {
		cfg.ClassPrefix = "tw-"
		cfg.Plugins = []twconfig.Plugin{{Name: "@tailwindcss/line-clamp", Source: twconfig.PluginBuiltin}}
	}
	return cfg
}

func runInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	prefixed, _ := cmd.Flags().GetBool("prefixed")
	formatName, _ := cmd.Flags().GetString("format")

	format, err := twconfig.ParseFormat(formatName)
	if err != nil {
		return err
	}
	configFile := "tailwind.config" + format.Extension()

	for _, name := range []string{configFile, settingsFile} {
		if _, err := os.Stat(name); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", name)
		}
	}

	data, err := twconfig.Marshal(starterConfig(prefixed), format)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if format == twconfig.FormatJS {
		data = append([]byte("/** @type {import('tailwindcss').Config} */\n"), data...)
	}

	if err := renameio.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	settings := strings.ReplaceAll(defaultSettings, "{{config}}", configFile)
	if err := renameio.WriteFile(settingsFile, []byte(settings), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", settingsFile, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", configFile)
	fmt.Fprintf(out, "Created %s\n", settingsFile)
	return nil
}

const defaultSettings = `# twconfig settings
# Flags override these values, TWCONFIG_* environment variables too
# (TWCONFIG_LINT_STRICT=true sets lint.strict,
# TWCONFIG_LINT_OUTPUT_FORMAT=json sets lint.output-format).

# Tailwind configs, merged in order; later files win
configs:
  - {{config}}

verbose: false
color: false
# root: .                  # content globs and plugins resolve from here (default: config dir)

build:
  binary: ""               # default: tailwindcss on PATH, then npx tailwindcss
  input: ./src/input.css
  output: ./dist/output.css
  minify: false
  watch: false

lint:
  strict: false            # exit 1 on any issue, not only errors
  output-format: issues    # issues | json | markdown
  print-lines: true
  print-linter-name: true

print:
  format: js               # js | yaml | json | toml
`
