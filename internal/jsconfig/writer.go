package jsconfig

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Field is one property of an ordered object literal.
type Field struct {
	Key   string
	Value any
}

// Object is an object literal whose properties keep their order when written.
type Object []Field

// Require is written as require('<module>').
type Require string

// Encode writes obj as a module.exports assignment.
func Encode(w io.Writer, obj Object) error {
	var buf bytes.Buffer
	buf.WriteString("module.exports = ")
	if err := writeValue(&buf, obj, 0); err != nil {
		return err
	}
	buf.WriteString("\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func writeValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case Object:
		return writeObject(buf, val, depth)
	case map[string]any:
		return writeObject(buf, fromMap(val), depth)
	case []any:
		return writeArray(buf, val, depth)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return writeArray(buf, items, depth)
	case []Require:
		items := make([]any, len(val))
		for i, r := range val {
			items[i] = r
		}
		return writeArray(buf, items, depth)
	case map[string]bool:
		m := make(map[string]any, len(val))
		for k, b := range val {
			m[k] = b
		}
		return writeObject(buf, fromMap(m), depth)
	case string:
		buf.WriteString(quote(val))
	case Require:
		buf.WriteString("require(" + quote(string(val)) + ")")
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case int:
		buf.WriteString(strconv.Itoa(val))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case float64:
		buf.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	default:
		return fmt.Errorf("cannot encode %T", v)
	}
	return nil
}

func writeObject(buf *bytes.Buffer, obj Object, depth int) error {
	if len(obj) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for _, f := range obj {
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if isIdentifier(f.Key) {
			buf.WriteString(f.Key)
		} else {
			buf.WriteString(quote(f.Key))
		}
		buf.WriteString(": ")
		if err := writeValue(buf, f.Value, depth+1); err != nil {
			return fmt.Errorf("%s: %w", f.Key, err)
		}
		buf.WriteString(",\n")
	}
	buf.WriteString(strings.Repeat(indentUnit, depth) + "}")
	return nil
}

func writeArray(buf *bytes.Buffer, items []any, depth int) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i, item := range items {
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if err := writeValue(buf, item, depth+1); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		buf.WriteString(",\n")
	}
	buf.WriteString(strings.Repeat(indentUnit, depth) + "]")
	return nil
}

// fromMap orders map keys alphabetically.
func fromMap(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := make(Object, 0, len(keys))
	for _, k := range keys {
		obj = append(obj, Field{Key: k, Value: m[k]})
	}
	return obj
}

// quote produces a single quoted JS string literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

// Parser adapts Parse and Encode to koanf's Parser interface.
type Parser struct{}

// Unmarshal parses a JS config file.
func (Parser) Unmarshal(b []byte) (map[string]interface{}, error) {
	return Parse(b)
}

// Marshal writes m as module.exports with keys in alphabetical order.
func (Parser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, fromMap(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
