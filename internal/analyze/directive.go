package analyze

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrMalformedDirective is returned for //vecop: comments that cannot be
	// parsed.
	ErrMalformedDirective = errors.New("malformed directive")
)

// IsDirective reports whether a comment is an operator directive.
func IsDirective(text string) bool {
	return strings.HasPrefix(text, DirectivePrefix)
}

// ParseDirective parses the text of a //vecop: comment. The position is
// left for the caller to fill in.
func ParseDirective(text string) (Directive, error) {
	body, ok := strings.CutPrefix(text, DirectivePrefix)
	if !ok {
		return Directive{}, fmt.Errorf("%w: %q lacks the %s prefix", ErrMalformedDirective, text, DirectivePrefix)
	}

	family, rest := body, ""
	if i := strings.IndexFunc(body, unicode.IsSpace); i >= 0 {
		family, rest = body[:i], strings.TrimSpace(body[i:])
	}

	if family == "" {
		return Directive{}, fmt.Errorf("%w: %q names no operator family", ErrMalformedDirective, text)
	}

	d := Directive{Family: family, Text: text}

	if rest == "all" {
		d.All = true
		return d, nil
	}

	if rest == "" {
		return Directive{}, fmt.Errorf("%w: %q lists no operands", ErrMalformedDirective, text)
	}

	operands := splitTopLevel(rest)
	if len(operands) > 2 {
		return Directive{}, fmt.Errorf("%w: %q lists %d operands", ErrMalformedDirective, text, len(operands))
	}

	for _, op := range operands {
		if op == "" {
			return Directive{}, fmt.Errorf("%w: %q has an empty operand", ErrMalformedDirective, text)
		}
	}

	d.Operands = operands

	return d, nil
}

// splitTopLevel splits on commas outside of brackets, so that
// "Vector[K, V], *Vector[K, V]" yields two operands.
func splitTopLevel(s string) []string {
	var (
		res   []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	return append(res, strings.TrimSpace(s[start:]))
}
