// Package format maps configuration file formats to koanf parsers.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/yacobolo/twconfig/internal/jsconfig"
)

// Format names a declarative source format.
type Format string

// Supported formats
const (
	JS   Format = "js"
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// All returns every supported format.
func All() []Format {
	return []Format{JS, YAML, JSON, TOML}
}

// Parse resolves a user supplied format name.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "js", "cjs", "mjs", "javascript":
		return JS, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want js, yaml, json or toml)", name)
}

// FromPath infers the format from a file extension.
func FromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %s: no file extension", path)
	}
	return Parse(ext)
}

// Parser returns the koanf parser for f.
func (f Format) Parser() (koanf.Parser, error) {
	switch f {
	case JS:
		return jsconfig.Parser{}, nil
	case YAML:
		return yaml.Parser(), nil
	case JSON:
		return json.Parser(), nil
	case TOML:
		return TOMLParser(), nil
	}
	return nil, fmt.Errorf("unknown format %q", string(f))
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}
