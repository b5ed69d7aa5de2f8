package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier or directive word to a comparable
// form: lower case with separators removed, so "Scale_Ref", "scaleRef"
// and "SCALEREF" all become "scaleref".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// TokenizeIdent splits an identifier into lower case words, breaking on
// separators and CamelCase boundaries: "DotProduct" -> ["dot", "product"].
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits s on separators and CamelCase boundaries.
// An acronym stays one token: "SizeMismatchError" -> ["Size", "Mismatch", "Error"],
// "parseURL" -> ["parse", "URL"].
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// startsToken reports whether runes[i] begins a new CamelCase word.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "sizeMismatch": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "URLParser": the last capital of an acronym opens the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
