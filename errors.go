package twconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per ErrorKind. Match with errors.Is.
var (
	ErrMalformedSource   = errors.New("malformed configuration source")
	ErrInvalidGlob       = errors.New("invalid content glob")
	ErrUnknownCorePlugin = errors.New("unknown core plugin")
	ErrUnresolvedPlugin  = errors.New("unresolved plugin")
)

// ErrorKind classifies a ConfigError.
type ErrorKind int

// Error kinds
const (
	KindMalformedSource ErrorKind = iota + 1
	KindInvalidGlob
	KindUnknownCorePlugin
	KindUnresolvedPlugin
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedSource:
		return "MalformedSource"
	case KindInvalidGlob:
		return "InvalidGlob"
	case KindUnknownCorePlugin:
		return "UnknownCorePlugin"
	case KindUnresolvedPlugin:
		return "UnresolvedPlugin"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMalformedSource:
		return ErrMalformedSource
	case KindInvalidGlob:
		return ErrInvalidGlob
	case KindUnknownCorePlugin:
		return ErrUnknownCorePlugin
	case KindUnresolvedPlugin:
		return ErrUnresolvedPlugin
	}
	return nil
}

// ConfigError reports a load failure with enough context to fix the source.
type ConfigError struct {
	Kind   ErrorKind
	Source string // "tailwind.config.js"
	Field  string // "content[1]", "corePlugins.bogusFeature"; empty for whole-source errors
	Value  string // offending value, empty when not applicable
	Err    error  // underlying cause, may be nil
}

// Error formats as <source>: <field>: <problem>.
func (e *ConfigError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	return msg
}

// Is matches the sentinel for the error's kind.
func (e *ConfigError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, source, field, value string, err error) *ConfigError {
	return &ConfigError{Kind: kind, Source: source, Field: field, Value: value, Err: err}
}
