// Package ingredient normalizes loosely-formatted ingredient data into clean
// token lists. Upstream values arrive in three shapes: genuine string slices,
// plain comma/newline-delimited text, and stringified Python-style list
// literals such as `['egg', 'flour']` left over from dataset exports. The
// normalizer recovers an ordered token sequence from any of them without a
// full parser; malformed input degrades to an empty or partial result, never
// an error.
package ingredient

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	delimiterRuns = regexp.MustCompile(`[,\n]+`)
	quotedSpans   = regexp.MustCompile(`'[^']*'|"[^"]*"`)
)

// tokenCutset is every character stripped from token edges: whitespace,
// brackets, quote characters and commas.
const tokenCutset = " \t\r\n[]'\"`,"

// CleanToken coerces a value to a string and strips any leading or trailing
// run of whitespace, brackets, quotes (single, double, backtick) and commas.
// nil coerces to the empty string. The result is stable under repeated
// application.
func CleanToken(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = ""
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return strings.Trim(s, tokenCutset)
}

// ParseDelimited splits text on runs of commas or newlines, trims each piece
// and drops empties, preserving order.
func ParseDelimited(text string) []string {
	var out []string
	for _, piece := range delimiterRuns.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// ExtractQuoted returns the contents of single- or double-quoted substrings
// in order of appearance. Matching is non-greedy and does not handle escaped
// quotes; each span is trimmed and dropped if empty.
func ExtractQuoted(text string) []string {
	var out []string
	for _, span := range quotedSpans.FindAllString(text, -1) {
		inner := strings.TrimSpace(span[1 : len(span)-1])
		if inner != "" {
			out = append(out, inner)
		}
	}
	return out
}

// NormalizeList converts a raw list-like value into an ordered slice of clean
// tokens. It accepts string slices, slices of arbitrary values, plain
// delimited text and stringified bracketed lists; nil and any other shape
// yield an empty result.
func NormalizeList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return cleanAll(t)
	case []any:
		cleaned := make([]string, 0, len(t))
		for _, item := range t {
			if tok := CleanToken(item); tok != "" {
				cleaned = append(cleaned, tok)
			}
		}
		return cleaned
	case string:
		return normalizeText(t)
	default:
		return nil
	}
}

func cleanAll(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if tok := CleanToken(item); tok != "" {
			cleaned = append(cleaned, tok)
		}
	}
	return cleaned
}

func normalizeText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return normalizeBracketed(text[1 : len(text)-1])
	}
	return cleanAll(ParseDelimited(text))
}

// normalizeBracketed handles the interior of a stringified list literal.
// Quoted items win and keep their position order; whatever text remains after
// blanking the quoted spans and the structural characters is parsed as a
// plain delimited remainder and appended after them.
func normalizeBracketed(interior string) []string {
	quoted := ExtractQuoted(interior)
	if len(quoted) == 0 {
		return cleanAll(ParseDelimited(interior))
	}

	remainder := quotedSpans.ReplaceAllStringFunc(interior, blank)
	remainder = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ',':
			return ' '
		}
		return r
	}, remainder)

	tokens := make([]string, 0, len(quoted))
	for _, q := range quoted {
		if tok := CleanToken(q); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return append(tokens, cleanAll(ParseDelimited(remainder))...)
}

func blank(s string) string {
	return strings.Repeat(" ", len(s))
}
