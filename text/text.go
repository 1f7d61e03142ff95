// Package text: string cleanup built on strings, regexp and x/text.

package text

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNegativeLimit rejects a negative truncation limit.
var ErrNegativeLimit = errors.New("text: limit must be non-negative")

var (
	// nonSlugRunes matches everything that may not appear in a slug:
	// anything but letters, digits, whitespace, underscores and hyphens.
	nonSlugRunes = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)

	// slugSeparators matches runs of whitespace, underscores and hyphens,
	// which all collapse to a single hyphen.
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
)

// foldMarks builds a transformer that decomposes to NFD, strips combining
// marks and recomposes, turning "é" into "e". Chained transformers carry
// internal buffers, so a fresh chain is built per call to stay safe for
// concurrent Slugify use.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Clean trims s and collapses every internal whitespace run to a single
// space.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify converts s into a URL-safe slug: diacritics folded, lowered,
// punctuation dropped, separator runs collapsed to single hyphens, and
// leading/trailing hyphens trimmed.
func Slugify(s string) string {
	folded, _, err := transform.String(foldMarks(), s)
	if err != nil {
		folded = s // fold is best-effort; malformed input passes through
	}
	slug := strings.ToLower(strings.TrimSpace(folded))
	slug = nonSlugRunes.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// Between returns the text between the first occurrence of left and the
// first following occurrence of right. When either marker is absent, the
// result is the empty string.
func Between(s, left, right string) string {
	i := strings.Index(s, left)
	if i < 0 {
		return ""
	}
	rest := s[i+len(left):]
	j := strings.Index(rest, right)
	if j < 0 {
		return ""
	}

	return rest[:j]
}

// Truncate shortens s to at most limit runes. Multi-byte runes are never
// split.
//
// Errors:
//   - ErrNegativeLimit when limit < 0.
func Truncate(s string, limit int) (string, error) {
	if limit < 0 {
		return "", ErrNegativeLimit
	}
	r := []rune(s)
	if len(r) <= limit {
		return s, nil
	}

	return string(r[:limit]), nil
}
