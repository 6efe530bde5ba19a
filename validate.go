package twconfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// validateContent checks every content entry is a usable glob.
// A leading "!" marks an exclusion and is not part of the pattern.
func validateContent(source string, globs []string) error {
	for i, glob := range globs {
		field := fmt.Sprintf("content[%d]", i)

		pattern := strings.TrimPrefix(glob, "!")
		if strings.TrimSpace(pattern) == "" {
			return newError(KindInvalidGlob, source, field, glob, errors.New("pattern is empty"))
		}
		if !doublestar.ValidatePattern(pattern) {
			return newError(KindInvalidGlob, source, field, glob, errors.New("malformed pattern"))
		}
	}
	return nil
}

// validatePrefix checks that prefixing a class name still yields a single
// CSS class selector. The prefix is lexed in front of a placeholder letter so
// that the first generated character is checked too.
func validatePrefix(source, prefix string) error {
	if prefix == "" {
		return nil
	}

	want := prefix + "x"
	lexer := css.NewLexer(parse.NewInputString("." + want))

	tt, text := lexer.Next()
	if tt != css.DelimToken || string(text) != "." {
		return invalidPrefix(source, prefix)
	}
	tt, text = lexer.Next()
	if tt != css.IdentToken || string(text) != want {
		return invalidPrefix(source, prefix)
	}
	if tt, _ = lexer.Next(); tt != css.ErrorToken {
		return invalidPrefix(source, prefix)
	}
	return nil
}

func invalidPrefix(source, prefix string) error {
	return newError(KindMalformedSource, source, "prefix", prefix,
		errors.New("prefix must be a valid CSS identifier fragment"))
}

// validateCorePlugins rejects keys outside the core plugin set. Keys are
// checked in sorted order so the reported key is stable.
func validateCorePlugins(source string, overrides map[string]bool) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if IsCorePlugin(k) {
			continue
		}
		var hint error
		if s := suggestCorePlugin(k); s != "" {
			hint = fmt.Errorf("did you mean %q?", s)
		}
		return newError(KindUnknownCorePlugin, source, "corePlugins."+k, k, hint)
	}
	return nil
}

// suggestCorePlugin finds a core plugin that differs only in case or separators.
func suggestCorePlugin(name string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	}
	want := norm(name)
	for _, candidate := range corePlugins {
		if norm(candidate) == want {
			return candidate
		}
	}
	return ""
}
