// Package slug turns human titles into URL identifiers for technologies,
// modules and posts.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFallback is returned when a title has no usable token left.
const DefaultFallback = "post"

var (
	quotePattern    = regexp.MustCompile("['\"’`´]")
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	validPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// stopWords holds the Portuguese function words dropped from slugs. Entries
// are stored already folded so accented forms (à, até, após) match too.
var stopWords = func() map[string]struct{} {
	words := []string{
		// artigos
		"o", "a", "os", "as", "um", "uma", "uns", "umas",
		// preposições
		"de", "da", "do", "das", "dos", "em", "no", "na", "nos", "nas",
		"por", "pra", "pro", "pras", "pros", "ao", "aos", "à", "às",
		"com", "sem", "sob", "sobre", "entre", "até", "após",
		// conjunções
		"e", "ou", "mas", "nem",
		"que", "para",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[removeDiacritics(w)] = struct{}{}
	}
	return set
}()

// Normalize returns the slug for title, or DefaultFallback when nothing survives.
func Normalize(title string) string {
	return NormalizeWithFallback(title, DefaultFallback)
}

// NormalizeWithFallback is Normalize with a caller supplied fallback token.
func NormalizeWithFallback(title, fallback string) string {
	cleaned := strings.ToLower(removeDiacritics(title))
	cleaned = strings.ReplaceAll(cleaned, "&", " e ")
	cleaned = quotePattern.ReplaceAllString(cleaned, "")
	cleaned = nonAlnumPattern.ReplaceAllString(cleaned, " ")

	words := make([]string, 0, 8)
	for _, w := range strings.Fields(cleaned) {
		if IsStopWord(w) {
			continue
		}
		words = append(words, w)
	}

	out := hyphenRuns.ReplaceAllString(strings.Join(words, "-"), "-")
	out = strings.Trim(out, "-")
	if out == "" {
		return fallback
	}
	return out
}

// IsStopWord reports whether word is elided during slug generation.
func IsStopWord(word string) bool {
	_, ok := stopWords[removeDiacritics(strings.ToLower(word))]
	return ok
}

// Valid reports whether s already matches the lowercase kebab pattern.
func Valid(s string) bool {
	return validPattern.MatchString(s)
}

// removeDiacritics decomposes s (NFD) and drops the combining marks block
// U+0300..U+036F. Transformers are stateful, so a fresh chain is built per call.
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningMark)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}
