package matcher

import (
	"strings"

	"github.com/lambdalogan/addresshammer/tables"
)

// BuildStateTable compiles the Mealy table recognizing US state names: the
// two-letter abbreviation itself as a one-token phrase, plus every spelled
// out long form from tables.USStateLongForms.
func BuildStateTable() *Table {
	t := NewTable()
	for _, abbr := range tables.USStateAbbrs {
		t.AddPhrase(abbr, abbr)
	}
	for abbr, longForms := range tables.USStateLongForms {
		for _, phrase := range longForms {
			t.AddPhrase(abbr, strings.Fields(phrase)...)
		}
	}
	return t
}

// BuildDirectionalTable compiles the Mealy table recognizing NESW
// directionals, both their compact forms (N, NE, ...) and their spelled out
// or compound phrase forms (NORTH, NORTH EAST, ...).
func BuildDirectionalTable() *Table {
	t := NewTable()
	for _, abbr := range tables.Directionals {
		t.AddPhrase(abbr, abbr)
	}
	for abbr, phrases := range tables.DirectionalPhrases {
		for _, words := range phrases {
			t.AddPhrase(abbr, words...)
		}
	}
	return t
}

// BuildUnitTable compiles the Mealy table recognizing unit-type keywords,
// both the keyword-with-identifier forms (APT, STE, ...) and the unitary
// forms that take no identifier (REAR, PH, ...).
func BuildUnitTable() *Table {
	t := NewTable()
	for _, kw := range tables.UnitKeywords {
		t.AddPhrase(kw, kw)
	}
	for kw, syns := range tables.UnitKeywordSynonyms {
		for _, syn := range syns {
			t.AddPhrase(kw, strings.Fields(syn)...)
		}
	}
	for _, kw := range tables.UnitaryKeywords {
		t.AddPhrase(kw, kw)
	}
	for kw, syns := range tables.UnitaryKeywordSynonyms {
		for _, syn := range syns {
			t.AddPhrase(kw, strings.Fields(syn)...)
		}
	}
	return t
}

// BuildSuffixTable compiles the Mealy table recognizing street suffixes,
// with their spelled-out synonym forms folded to the canonical abbreviation.
func BuildSuffixTable() *Table {
	t := NewTable()
	for _, sfx := range tables.StSuffixes() {
		t.AddPhrase(sfx, sfx)
	}
	for sfx, syns := range tables.StSuffixSynonyms {
		for _, syn := range syns {
			t.AddPhrase(sfx, strings.Fields(syn)...)
		}
	}
	return t
}

// BuildHighwayTable compiles the Mealy table recognizing highway phrase
// prefixes; the numeric/letter route tail is not part of the table. The
// parser's pipeline does not use this table.
func BuildHighwayTable() *Table {
	t := NewTable()
	for abbr, phrases := range tables.HighwayPhrases {
		for _, words := range phrases {
			t.AddPhrase(abbr, words...)
		}
	}
	return t
}

// BuildCityTable compiles the Mealy table recognizing city names: the
// built-in default city list plus any caller-supplied known cities. Multi
// word cities (e.g. "GRAND RAPIDS") are registered as their own phrase; the
// label for every entry is the literal city name so the matcher's
// greedy-extend-then-longest rule correctly prefers a longer known city over
// a shorter prefix that also happens to be a city.
func BuildCityTable(knownCities []string) *Table {
	t := NewTable()
	seen := make(map[string]bool)
	add := func(city string) {
		city = strings.ToUpper(strings.TrimSpace(city))
		if city == "" || seen[city] {
			return
		}
		seen[city] = true
		t.AddPhrase(city, strings.Fields(city)...)
	}
	for _, c := range tables.DefaultCities {
		add(c)
	}
	for _, c := range knownCities {
		add(c)
	}
	return t
}
