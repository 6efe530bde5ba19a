package twconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/yacobolo/twconfig/internal/jsconfig"
	"sigs.k8s.io/yaml"
)

// Marshal encodes cfg in the given format. Loading the output again yields a
// configuration equal to cfg.
func Marshal(cfg *BuildConfiguration, f Format) ([]byte, error) {
	doc := cfg.toDocument()

	switch f {
	case FormatJS:
		return marshalJS(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatTOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("unknown format %q", string(f))
}

// marshalJS writes the layout of a hand-written tailwind.config.js.
func marshalJS(doc document) ([]byte, error) {
	obj := jsconfig.Object{{Key: "content", Value: doc.Content}}
	if doc.Prefix != "" {
		obj = append(obj, jsconfig.Field{Key: "prefix", Value: doc.Prefix})
	}

	keys := make([]string, 0, len(doc.CorePlugins))
	for k := range doc.CorePlugins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	core := make(jsconfig.Object, 0, len(keys))
	for _, k := range keys {
		core = append(core, jsconfig.Field{Key: k, Value: doc.CorePlugins[k]})
	}
	obj = append(obj, jsconfig.Field{Key: "corePlugins", Value: core})

	plugins := make([]jsconfig.Require, len(doc.Plugins))
	for i, name := range doc.Plugins {
		plugins[i] = jsconfig.Require(name)
	}
	obj = append(obj, jsconfig.Field{Key: "plugins", Value: plugins})

	var buf bytes.Buffer
	if err := jsconfig.Encode(&buf, obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
