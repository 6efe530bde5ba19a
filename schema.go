package twconfig

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Schema returns the JSON schema describing the declarative shape of a
// configuration. Editors can use it for completion of YAML and JSON sources.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("twconfig.schema.json", string(schemaJSON))
	})
	return compiledSchema, schemaErr
}

// checkSchema validates the structure of a parsed source. Values are
// round-tripped through encoding/json first so that every parser hands the
// validator the same value types.
func checkSchema(source string, raw map[string]any) (map[string]any, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("internal error: compiling schema: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, newError(KindMalformedSource, source, "", "", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newError(KindMalformedSource, source, "", "", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	if err := sch.Validate(doc); err != nil {
		return nil, schemaError(source, err)
	}
	return doc, nil
}

// schemaError reports the first leaf cause of a validation failure.
func schemaError(source string, err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return newError(KindMalformedSource, source, "", "", err)
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return newError(KindMalformedSource, source, pointerToField(leaf.InstanceLocation), "", errors.New(leaf.Message))
}

// pointerToField converts a JSON pointer ("/plugins/0") to the field notation
// used in error messages ("plugins[0]").
func pointerToField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}

	var sb strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
