package twconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/yacobolo/twconfig/internal/format"
)

// Format names a declarative source format.
type Format = format.Format

// Supported source formats
const (
	FormatJS   = format.JS
	FormatYAML = format.YAML
	FormatJSON = format.JSON
	FormatTOML = format.TOML
)

// ParseFormat resolves a format name such as "yml" or "js".
func ParseFormat(name string) (Format, error) {
	return format.Parse(name)
}

// DefaultMaxSize caps the size of a configuration source.
const DefaultMaxSize = 1 << 20

// Source is a declarative configuration: a file, raw bytes, or a decoded record.
type Source struct {
	Name   string // used in error messages
	Format Format

	path      string
	data      []byte
	record    map[string]any
	formatErr error
}

// FileSource reads a configuration file. The format comes from the extension.
func FileSource(path string) Source {
	f, err := format.FromPath(path)
	return Source{Name: path, Format: f, path: path, formatErr: err}
}

// BytesSource parses an in-memory declaration.
func BytesSource(name string, f Format, data []byte) Source {
	return Source{Name: name, Format: f, data: data}
}

// MapSource uses an already decoded record, e.g. one built in code.
func MapSource(name string, record map[string]any) Source {
	if record == nil {
		record = map[string]any{}
	}
	return Source{Name: name, record: record}
}

type loadOptions struct {
	resolver Resolver
	root     string
	maxSize  int64
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithResolver replaces the default plugin resolver.
func WithResolver(r Resolver) LoadOption {
	return func(o *loadOptions) {
		o.resolver = r
	}
}

// WithRoot sets the project root used to resolve installed and local plugins.
// It defaults to the directory of a file source, or the working directory.
func WithRoot(dir string) LoadOption {
	return func(o *loadOptions) {
		o.root = dir
	}
}

// WithMaxSize overrides DefaultMaxSize.
func WithMaxSize(n int64) LoadOption {
	return func(o *loadOptions) {
		o.maxSize = n
	}
}

// Load parses and validates a configuration source. Validation is all or
// nothing: any failure is returned as a *ConfigError and no configuration.
func Load(src Source, opts ...LoadOption) (*BuildConfiguration, error) {
	o := loadOptions{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.root == "" {
		o.root = "."
		if src.path != "" {
			o.root = filepath.Dir(src.path)
		}
	}
	if o.resolver == nil {
		o.resolver = DefaultResolver{Root: o.root}
	}

	raw, err := readSource(src, o.maxSize)
	if err != nil {
		return nil, err
	}
	return decode(src.Name, raw, o.resolver)
}

// LoadFiles loads every file and merges them in order, so later files
// override earlier ones.
func LoadFiles(paths []string, opts ...LoadOption) (*BuildConfiguration, error) {
	if len(paths) == 0 {
		return nil, errors.New("no configuration files given")
	}
	cfgs := make([]*BuildConfiguration, 0, len(paths))
	for _, path := range paths {
		cfg, err := Load(FileSource(path), opts...)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return MergeAll(cfgs...), nil
}

// readSource runs the source through its koanf provider and parser.
func readSource(src Source, maxSize int64) (map[string]any, error) {
	k := koanf.New(".")

	if src.record != nil {
		if err := k.Load(confmap.Provider(src.record, ""), nil); err != nil {
			return nil, newError(KindMalformedSource, src.Name, "", "", err)
		}
		return k.Raw(), nil
	}

	if src.formatErr != nil {
		return nil, newError(KindMalformedSource, src.Name, "", "", src.formatErr)
	}
	parser, err := src.Format.Parser()
	if err != nil {
		return nil, newError(KindMalformedSource, src.Name, "", "", err)
	}

	var provider koanf.Provider
	if src.path != "" {
		info, err := os.Stat(src.path)
		if err != nil {
			return nil, newError(KindMalformedSource, src.Name, "", "", err)
		}
		if info.Size() > maxSize {
			return nil, newError(KindMalformedSource, src.Name, "", "",
				fmt.Errorf("file size %d bytes exceeds maximum %d bytes", info.Size(), maxSize))
		}
		provider = file.Provider(src.path)
	} else {
		if int64(len(src.data)) > maxSize {
			return nil, newError(KindMalformedSource, src.Name, "", "",
				fmt.Errorf("source size %d bytes exceeds maximum %d bytes", len(src.data), maxSize))
		}
		provider = rawbytes.Provider(src.data)
	}

	if err := k.Load(provider, parser); err != nil {
		return nil, newError(KindMalformedSource, src.Name, "", "", err)
	}
	return k.Raw(), nil
}

// decode turns a parsed record into a validated configuration.
func decode(source string, raw map[string]any, resolver Resolver) (*BuildConfiguration, error) {
	if err := normalizeContent(source, raw); err != nil {
		return nil, err
	}

	doc, err := checkSchema(source, raw)
	if err != nil {
		return nil, err
	}

	var d document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &d,
		TagName:     "koanf",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("internal error: creating decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, newError(KindMalformedSource, source, "", "", err)
	}

	if err := validateContent(source, d.Content); err != nil {
		return nil, err
	}
	if err := validatePrefix(source, d.Prefix); err != nil {
		return nil, err
	}
	if err := validateCorePlugins(source, d.CorePlugins); err != nil {
		return nil, err
	}
	plugins, err := resolvePlugins(source, d.Plugins, resolver)
	if err != nil {
		return nil, err
	}

	cfg := &BuildConfiguration{
		ContentGlobs:        d.Content,
		ClassPrefix:         d.Prefix,
		CorePluginOverrides: d.CorePlugins,
		Plugins:             plugins,
	}
	cfg.normalize()
	return cfg, nil
}

// normalizeContent accepts the object form content: {files: [...], relative: bool}
// and rewrites it to the plain list form.
func normalizeContent(source string, raw map[string]any) error {
	obj, ok := raw["content"].(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k != "files" && k != "relative" {
			return newError(KindMalformedSource, source, "content."+k, "",
				errors.New("only files and relative are supported in the object form of content"))
		}
	}

	if relative, _ := obj["relative"].(bool); relative {
		return newError(KindMalformedSource, source, "content.relative", "true",
			errors.New("relative content paths are not supported, write globs relative to the project root"))
	}

	files, ok := obj["files"]
	if !ok {
		files = []any{}
	}
	raw["content"] = files
	return nil
}
