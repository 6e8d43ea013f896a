package parser

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var punctuationRe = regexp.MustCompile(`[^\w\s#/]`)
var whitespaceRe = regexp.MustCompile(`\s+`)

// tokenize prepares a raw address string for the combinator pipeline:
// transliterate any non-ASCII (an OCR'd or copy-pasted "Café Street" folds
// to "Cafe Street"), strip punctuation (keeping # and / since they carry
// meaning), fold to upper case, collapse whitespace, rewrite "#" to the unit
// sentinel "APT", and rewrite "/" to "FRAC" so a fractional house number
// survives the whitespace-delimited tokenizer as one token
// ("15 1/2" -> "15 1FRAC2").
func (p *Parser) tokenize(s string) string {
	s = unidecode.Unidecode(s)
	s = punctuationRe.ReplaceAllString(strings.ToUpper(s), " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "#", "APT ")
	s = strings.ReplaceAll(s, "APT APT", "APT")
	s = strings.ReplaceAll(s, "/", "FRAC")
	if p.knownCitiesRe != nil {
		s = p.knownCitiesRe.ReplaceAllStringFunc(s, joinCityTokens)
	}
	return whitespaceRe.ReplaceAllString(s, " ")
}

// joinCityTokens replaces internal spaces in a matched multi-word known
// city with underscores, so it tokenizes as a single word; untokenize
// (cityOrig) reverses this for display.
func joinCityTokens(match string) string {
	trimmed := strings.TrimSpace(match)
	return " " + strings.ReplaceAll(trimmed, " ", "_") + " "
}

// cityOrig reverses joinCityTokens and title-cases each word, the inverse
// operation address_hammer calls __city_orig__ — used nowhere on the
// happy path (the forward pipeline's city recognizer already expands
// underscores back to spaces token by token) but kept as the single place
// that owns this inverse, for row-shaped city values doing the same join.
func cityOrig(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = titleizeWord(w)
	}
	return strings.Join(words, " ")
}

func titleizeWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
