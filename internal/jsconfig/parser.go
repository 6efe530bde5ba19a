// Package jsconfig reads and writes tailwind.config.js style declarations.
//
// Only the declarative subset is supported: the exported value must be an
// object literal built from strings, numbers, booleans, null, nested arrays and
// objects, and require('module') calls. Anything computed is rejected.
package jsconfig

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// SyntaxError reports an unsupported or malformed construct.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// parser walks the token stream of a single config file
type parser struct {
	lexer *js.Lexer
	tt    js.TokenType
	text  string
	line  int
}

// Parse returns the object exported by module.exports = {...} or
// export default {...}. require('x') calls decode to the string "x".
func Parse(src []byte) (map[string]any, error) {
	p := &parser{
		lexer: js.NewLexer(parse.NewInputBytes(src)),
		line:  1,
	}
	p.next()

	if err := p.seekExport(); err != nil {
		return nil, err
	}
	if p.tt != js.OpenBraceToken {
		return nil, p.errorf("exported value must be an object literal, got %q", p.text)
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// next advances to the next significant token, counting lines on the way.
func (p *parser) next() {
	for {
		tt, text := p.lexer.Next()
		switch tt {
		case js.WhitespaceToken, js.CommentToken:
			continue
		case js.LineTerminatorToken, js.CommentLineTerminatorToken:
			p.line += bytes.Count(text, []byte("\n"))
			continue
		}
		p.tt, p.text = tt, string(text)
		return
	}
}

func (p *parser) atEOF() bool {
	return p.tt == js.ErrorToken
}

func (p *parser) errorf(format string, args ...any) error {
	if p.atEOF() {
		if err := p.lexer.Err(); err != nil && err != io.EOF {
			return &SyntaxError{Line: p.line, Msg: err.Error()}
		}
		return &SyntaxError{Line: p.line, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// seekExport skips statements until the token after the export assignment.
func (p *parser) seekExport() error {
	for !p.atEOF() {
		switch {
		case p.tt == js.IdentifierToken && p.text == "module":
			p.next()
			if p.tt != js.DotToken {
				continue
			}
			p.next()
			if p.tt != js.IdentifierToken || p.text != "exports" {
				continue
			}
			p.next()
			if p.tt != js.EqToken {
				continue
			}
			p.next()
			return nil

		case p.tt == js.ExportToken:
			p.next()
			if p.tt != js.DefaultToken {
				continue
			}
			p.next()
			return nil
		}
		p.next()
	}
	return &SyntaxError{Line: p.line, Msg: "no module.exports or export default found"}
}

func (p *parser) parseValue() (any, error) {
	switch p.tt {
	case js.OpenBraceToken:
		return p.parseObject()
	case js.OpenBracketToken:
		return p.parseArray()
	case js.StringToken:
		s, err := unquote(p.text)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		p.next()
		return s, nil
	case js.TrueToken:
		p.next()
		return true, nil
	case js.FalseToken:
		p.next()
		return false, nil
	case js.NullToken:
		p.next()
		return nil, nil
	case js.IdentifierToken:
		if p.text == "require" {
			return p.parseRequire()
		}
		return nil, p.errorf("unsupported identifier %q, only literal values are allowed", p.text)
	}

	if f, err := strconv.ParseFloat(p.text, 64); err == nil {
		p.next()
		return f, nil
	}
	return nil, p.errorf("unsupported expression %q", p.text)
}

func (p *parser) parseObject() (any, error) {
	obj := make(map[string]any)
	p.next() // {

	for {
		if p.tt == js.CloseBraceToken {
			p.next()
			return obj, nil
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.next()
		if p.tt != js.ColonToken {
			return nil, p.errorf("expected ':' after key %q, got %q", key, p.text)
		}
		p.next()

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = v

		switch p.tt {
		case js.CommaToken:
			p.next()
		case js.CloseBraceToken:
		default:
			return nil, p.errorf("expected ',' or '}' after value of %q, got %q", key, p.text)
		}
	}
}

func (p *parser) parseKey() (string, error) {
	if p.tt == js.StringToken {
		key, err := unquote(p.text)
		if err != nil {
			return "", p.errorf("%v", err)
		}
		return key, nil
	}
	// Reserved words are valid property names, so accept any identifier-shaped token.
	if p.tt == js.IdentifierToken || isIdentifier(p.text) {
		return p.text, nil
	}
	return "", p.errorf("expected property name, got %q", p.text)
}

func (p *parser) parseArray() (any, error) {
	arr := make([]any, 0)
	p.next() // [

	for {
		if p.tt == js.CloseBracketToken {
			p.next()
			return arr, nil
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		switch p.tt {
		case js.CommaToken:
			p.next()
		case js.CloseBracketToken:
		default:
			return nil, p.errorf("expected ',' or ']' in array, got %q", p.text)
		}
	}
}

// parseRequire handles require('module') and yields the module name.
func (p *parser) parseRequire() (any, error) {
	p.next()
	if p.tt != js.OpenParenToken {
		return nil, p.errorf("expected '(' after require, got %q", p.text)
	}
	p.next()
	if p.tt != js.StringToken {
		return nil, p.errorf("require expects a string literal, got %q", p.text)
	}
	name, err := unquote(p.text)
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	p.next()
	if p.tt != js.CloseParenToken {
		return nil, p.errorf("expected ')' after require(%q, got %q", name, p.text)
	}
	p.next()
	if p.tt == js.OpenParenToken {
		return nil, p.errorf("plugin options for %q are not supported", name)
	}
	return name, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// unquote decodes a single or double quoted JS string literal.
func unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("invalid string literal %s", lit)
	}
	q := lit[0]
	if (q != '\'' && q != '"') || lit[len(lit)-1] != q {
		return "", fmt.Errorf("invalid string literal %s", lit)
	}
	s := lit[1 : len(lit)-1]
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("unterminated escape in %s", lit)
		}
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			r, n, err := parseHex(s[i+1:], 2)
			if err != nil {
				return "", fmt.Errorf("invalid escape in %s: %w", lit, err)
			}
			sb.WriteRune(r)
			i += n
		case 'u':
			rest := s[i+1:]
			if strings.HasPrefix(rest, "{") {
				end := strings.IndexByte(rest, '}')
				if end < 0 {
					return "", fmt.Errorf("invalid escape in %s", lit)
				}
				r, _, err := parseHex(rest[1:end], end-1)
				if err != nil {
					return "", fmt.Errorf("invalid escape in %s: %w", lit, err)
				}
				sb.WriteRune(r)
				i += end + 1
				continue
			}
			r, n, err := parseHex(rest, 4)
			if err != nil {
				return "", fmt.Errorf("invalid escape in %s: %w", lit, err)
			}
			sb.WriteRune(r)
			i += n
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), nil
}

func parseHex(s string, n int) (rune, int, error) {
	if n <= 0 || len(s) < n {
		return 0, 0, fmt.Errorf("short hex escape")
	}
	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil {
		return 0, 0, err
	}
	if !utf8.ValidRune(rune(v)) {
		return 0, 0, fmt.Errorf("invalid code point %x", v)
	}
	return rune(v), n, nil
}
