// Package textutil provides text normalization and tokenization shared by the
// extractors and scorers.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces punctuation with spaces, collapses
// repeated whitespace, and trims. It is total over any input; empty input
// yields the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text and splits it into word tokens.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// ContentTokens tokenizes text and drops stop words.
func ContentTokens(text string) []string {
	tokens := Tokenize(text)
	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsStopWord(tok) {
			result = append(result, tok)
		}
	}
	return result
}
