package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/format"
	"github.com/yacobolo/twconfig/internal/runner"
)

// mergedConfigFile receives the configuration handed to tailwindcss when it
// cannot read the source directly: several files, or a non-JS format. It lives
// next to the first file so that relative plugin paths still resolve.
const mergedConfigFile = ".tailwind.merged.config.js"

var buildCmd = &cobra.Command{
	Use:   "build [config...]",
	Short: "Validate the configuration and run the tailwindcss CLI",
	Long: `Validate the configuration, then run tailwindcss (or npx tailwindcss)
with it. Nothing is started when the configuration is invalid. With --watch
every edit of a configuration file is validated first; invalid edits are
reported and the running build is kept.`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringP("input", "i", "", "Input CSS file")
	f.StringP("output", "o", "", "Output CSS file")
	f.Bool("minify", false, "Minify the output")
	f.Bool("watch", false, "Rebuild on changes, reloading valid configuration edits")
	f.String("binary", "", "tailwindcss binary (default: tailwindcss on PATH, then npx)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	paths := configPaths(args)
	logger := newLogger(cmd.ErrOrStderr())

	configPath, err := prepareConfig(paths)
	if err != nil {
		return err
	}
	if configPath != paths[0] {
		defer os.Remove(configPath)
	}

	opts := runner.Options{
		ConfigPath: configPath,
		Input:      getStringWithFallback("input", "build.input", ""),
		Output:     getStringWithFallback("output", "build.output", ""),
		Minify:     getBoolWithFallback("minify", "build.minify", false),
		Binary:     getStringWithFallback("binary", "build.binary", ""),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		Logger:     logger,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !getBoolWithFallback("watch", "build.watch", false) {
		return runner.Build(ctx, opts)
	}

	return runner.Watch(ctx, runner.WatchOptions{
		Options: opts,
		Paths:   paths,
		Validate: func() error {
			_, err := prepareConfig(paths)
			return err
		},
	})
}

// prepareConfig validates the files and returns the path handed to the build
// tool: a single JS file itself, otherwise a JS rendering of the merged
// configuration.
func prepareConfig(paths []string) (string, error) {
	cfg, err := twconfig.LoadFiles(paths, loadOptions()...)
	if err != nil {
		return "", err
	}
	if len(paths) == 1 {
		if f, err := format.FromPath(paths[0]); err == nil && f == format.JS {
			return paths[0], nil
		}
	}

	data, err := twconfig.Marshal(cfg, twconfig.FormatJS)
	if err != nil {
		return "", fmt.Errorf("encoding configuration as js: %w", err)
	}
	merged := filepath.Join(filepath.Dir(paths[0]), mergedConfigFile)
	if err := renameio.WriteFile(merged, data, 0o644); err != nil {
		return "", fmt.Errorf("writing js configuration: %w", err)
	}
	return merged, nil
}
