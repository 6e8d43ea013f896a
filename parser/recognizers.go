package parser

import (
	"regexp"
	"strings"

	"github.com/lambdalogan/addresshammer/matcher"
)

var houseNumberRe = regexp.MustCompile(`^[\d/]+$|^\d+FRAC\d+$`)
var zipCodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
var digitsRe = regexp.MustCompile(`^\d+$`)

// unitIdentifierRe accepts both "A3" and "1-2A" forms, per spec.md design
// note (iii): use the more permissive of the two variants seen upstream.
var unitIdentifierRe = regexp.MustCompile(`^#?(\d+(-\d+)?[A-Z]?|[A-Z]\d*)$`)

func matchRecognizer(re *regexp.Regexp, label string, mandatory bool) Recognize {
	return func(token string) ([]ParseStep, error) {
		if re.MatchString(token) {
			return []ParseStep{{Label: label, Value: token}}, nil
		}
		if mandatory {
			return nil, &ParseError{Orig: token, Reason: label}
		}
		return nil, nil
	}
}

// cityRecognizer matches a bare word token as part of the city, stopping on
// state abbreviations and pure digit tokens (zip codes).
func cityRecognizer() Recognize {
	wordRe := regexp.MustCompile(`^\w+$`)
	return func(token string) ([]ParseStep, error) {
		if digitsRe.MatchString(token) {
			return nil, nil
		}
		if _, _, ok := stateTableSingleton.Match([]string{token}); ok {
			return nil, nil
		}
		if wordRe.MatchString(token) {
			return []ParseStep{{Label: "city", Value: strings.ReplaceAll(token, "_", " ")}}, nil
		}
		return nil, nil
	}
}

// houseNumberRecognizer, zipCodeRecognizer and the unit identifier check
// below are plain regex recognizers; they never need to consult a table.
var houseNumberRecognizer = matchRecognizer(houseNumberRe, "house_number", true)
var zipCodeRecognizer = matchRecognizer(zipCodeRe, "zip_code", false)

// chompRdNumber implements the rural-route rd-number fold: "RD 12", "HWY 9",
// "RTE 66" (suffix word immediately followed by a bare number) become part
// of the street name rather than a suffix+number split, per spec.md 4.3
// step 4.
func chompRdNumber(suffixTable *matcher.Table) func([]string) ([]ParseStep, error) {
	rdLike := map[string]bool{"RD": true, "HWY": true, "RTE": true}
	return func(words []string) ([]ParseStep, error) {
		if len(words) != 2 {
			return nil, nil
		}
		label, length, ok := suffixTable.Match(words[:1])
		if !ok || length != 1 || !rdLike[label] {
			return nil, nil
		}
		if !digitsRe.MatchString(words[1]) {
			return nil, nil
		}
		return []ParseStep{
			{Label: "st_name", Value: label},
			{Label: "st_name", Value: words[1]},
		}, nil
	}
}

// chompUnit implements the unit state machine collapsed into a two-token
// chomp: <unit-keyword-or-#> <identifier>, or a bare digit/letter pair
// treated as an implicit "APT" (address_hammer's no_N fallback).
func chompUnit(unitTable *matcher.Table) func([]string) ([]ParseStep, error) {
	bareIDRe := regexp.MustCompile(`^(\d+|[A-D]|[F-M]|[O-R]|[T-V]|[X-Z])(\d+|[A-D]|[F-M]|[O-R]|[T-V]|[X-Z])?$`)
	return func(words []string) ([]ParseStep, error) {
		if len(words) != 2 {
			return nil, nil
		}
		kw, length, ok := unitTable.Match(words[:1])
		if !ok || length != 1 {
			if bareIDRe.MatchString(words[0]) {
				return []ParseStep{{Label: "unit", Value: "APT " + words[0]}}, nil
			}
			return nil, nil
		}
		if !bareIDRe.MatchString(words[1]) {
			return nil, nil
		}
		ident := strings.TrimPrefix(words[1], "#")
		return []ParseStep{
			{Label: "unit", Value: kw},
			{Label: "unit", Value: ident},
		}, nil
	}
}
