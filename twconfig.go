// Package twconfig loads, validates and merges the configuration consumed by the
// tailwindcss utility-class build tool.
//
// A configuration declares which templates the build tool scans for class
// names, an optional class prefix, toggles for built-in core plugins and a list
// of third-party plugins. twconfig catches mistakes in that declaration before
// the external tool runs.
//
// # Loading
//
// Load a configuration file. JS, YAML, JSON and TOML declarations are accepted:
//
//	cfg, err := twconfig.Load(twconfig.FileSource("tailwind.config.js"))
//	if errors.Is(err, twconfig.ErrUnknownCorePlugin) {
//		// corePlugins lists a feature the build tool does not have
//	}
//
// # Merging
//
// Combine a base configuration with a variant (for example a prefixed one):
//
//	merged := twconfig.Merge(base, prefixed)
//
// # Linting
//
// Report configurations that load fine but will not produce useful output:
//
//	result := twconfig.Lint(cfg, twconfig.LintOptions{Root: "."})
//
// # CLI Tool
//
// twconfig also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/twconfig/cmd/twconfig@latest
package twconfig

// Public API:
// - Load(src Source, opts ...LoadOption) (*BuildConfiguration, error)
// - LoadFiles(paths []string, opts ...LoadOption) (*BuildConfiguration, error)
// - Merge(base, override *BuildConfiguration) *BuildConfiguration
// - Marshal(cfg *BuildConfiguration, format Format) ([]byte, error)
// - Lint(cfg *BuildConfiguration, opts LintOptions) *LintResult
// - WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config ReportConfig)
