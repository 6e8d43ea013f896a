// Package parser implements the combinator-and-Mealy-matcher pipeline that
// labels tokens of a free-form US address string into a RawAddress: the
// pipeline (4.3) for whitespace-joined strings, the same pipeline run once
// over the joined tokens of CSV-row-shaped input, and the smart_batch retry
// policy.
package parser

import (
	"regexp"
	"strings"

	"github.com/lambdalogan/addresshammer/address"
	"github.com/lambdalogan/addresshammer/cursor"
	"github.com/lambdalogan/addresshammer/matcher"
	"go.uber.org/zap"
)

// Parser is a callable address parser. It does not correct typos or
// auto-infer street suffixes or directionals — that's Hammer's job. A
// Parser built with known_cities recognizes addresses whose city has no
// explicit separator (suffix/directional/unit) between street and city;
// without known_cities, such an address needs something to mark that
// boundary.
type Parser struct {
	knownCities   []string
	knownCitiesRe *regexp.Regexp
	cityTable     *matcher.Table
	blankParse    *Parser // tried first, with its own pipeline as the fallback, per original semantics
	logger        *zap.Logger
}

// NewParser builds a Parser. knownCities may be nil/empty. logger may be
// nil, in which case a no-op logger is used.
func NewParser(knownCities []string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	cities := make([]string, 0, len(knownCities))
	for _, c := range knownCities {
		if strings.TrimSpace(c) != "" {
			cities = append(cities, c)
		}
	}

	p := &Parser{knownCities: cities, logger: logger}
	if len(cities) > 0 {
		p.blankParse = NewParser(nil, logger)
	}

	normalized := make([]string, len(cities))
	for i, c := range cities {
		normalized[i] = normalizeCityForRegex(c)
	}
	if len(normalized) > 0 {
		p.knownCitiesRe = regexp.MustCompile(orAlternation(normalized))
	}
	p.cityTable = cityTableFor(cities)
	return p
}

// normalizeCityForRegex uppercases, strips punctuation and collapses
// whitespace the same way tokenize does, then rewrites internal spaces to
// a character class matching either a space or the join sentinel, so the
// pattern matches both "GRAND RAPIDS" and "GRAND_RAPIDS" once other known
// cities have already been joined earlier in the same pass.
func normalizeCityForRegex(city string) string {
	c := whitespaceRe.ReplaceAllString(punctuationRe.ReplaceAllString(strings.ToUpper(city), " "), " ")
	c = strings.TrimSpace(c)
	return strings.ReplaceAll(regexp.QuoteMeta(c), `\ `, `[\s_]`)
}

func orAlternation(alts []string) string {
	return "(?:" + strings.Join(alts, "|") + ")"
}

// Parse parses a single whitespace-joined address string into a RawAddress.
// If checked is false, missing required components are tolerated (used
// internally by parse_row when a caller has already promised the row is
// only partially labeled).
func (p *Parser) Parse(s string) (address.RawAddress, error) {
	return p.parse(s, true)
}

func (p *Parser) parse(s string, checked bool) (address.RawAddress, error) {
	if p.blankParse != nil {
		if a, err := p.blankParse.parseOnce(s, checked); err == nil {
			return a, nil
		}
	}
	return p.parseOnce(s, checked)
}

// parseOnce runs this Parser's own pipeline exactly once, without falling
// back to blankParse.
func (p *Parser) parseOnce(s string, checked bool) (address.RawAddress, error) {
	tok := p.tokenize(s)
	words := strings.Fields(tok)
	suffixArrow, _ := p.handleManySuffix(words)

	ops := p.outline(suffixArrow, true)
	result, err := Reduce(ops)(Result{Cursor: cursor.New(words)})
	if err != nil {
		if cursor.IsEndOfInput(err) {
			return address.RawAddress{}, newEndOfAddressError(s, "unknown")
		}
		if pe, ok := err.(*ParseError); ok {
			return address.RawAddress{}, &ParseError{Orig: s, Reason: pe.Reason}
		}
		return address.RawAddress{}, err
	}
	return p.collectResults(s, result.Steps, checked)
}

// ParseRow parses a CSV-row-shaped address, each cell already split into
// its own field (e.g. ["123 Main St", "Springfield", "OH", "45501"]). It
// runs the exact same stage order as Parse over the row's tokens joined in
// cell order, except the unit stage is only attempted at all when some
// cell looks unit-shaped — otherwise two coincidentally adjacent tokens
// from unrelated cells (say, a city name's last word and the state
// abbreviation) would never be mistaken for a unit. Required components
// are not enforced: a row is expected to come from a caller that already
// knows which cells hold what, so a partial result is still useful.
func (p *Parser) ParseRow(row []string) (address.RawAddress, error) {
	tokenizedCells := make([]string, len(row))
	for i, cell := range row {
		tokenizedCells[i] = p.tokenize(cell)
	}
	words := strings.Fields(strings.Join(tokenizedCells, " "))
	suffixArrow, _ := p.handleManySuffix(words)

	includeUnit := false
	for _, cell := range tokenizedCells {
		for _, w := range strings.Fields(cell) {
			if _, length, ok := unitTable.Match([]string{w}); ok && length == 1 {
				includeUnit = true
			}
			if unitIdentifierRe.MatchString(w) {
				includeUnit = true
			}
		}
	}

	ops := p.outline(suffixArrow, includeUnit)
	result, err := Reduce(ops)(Result{Cursor: cursor.New(words)})
	if err != nil {
		if cursor.IsEndOfInput(err) {
			return address.RawAddress{}, newEndOfAddressError(strings.Join(row, "\t"), "unknown")
		}
		if pe, ok := err.(*ParseError); ok {
			return address.RawAddress{}, &ParseError{Orig: strings.Join(row, "\t"), Reason: pe.Reason}
		}
		return address.RawAddress{}, err
	}
	return p.collectResults(strings.Join(row, "\t"), result.Steps, false)
}

// outline assembles the pipeline, per spec.md 4.3 steps 1-10. includeUnit
// gates the unit stage off entirely (rather than merely letting it decline
// to match) for ParseRow's cross-cell-boundary caution; Parse always
// passes true.
func (p *Parser) outline(suffixOverride stNameSuffixOverride, includeUnit bool) []Op {
	stopTables := []*matcher.Table{suffixTable, directionalTable, unitTable, p.cityTable}

	unitOp := Op(func(r Result) (Result, error) { return r, nil })
	if includeUnit {
		unitOp = ChompN(2, chompUnit(unitTable), swallowAll)
	}

	return []Op{
		TakeWhile(houseNumberRecognizer, false, swallowParseErrors),
		ConsumeTable(directionalTable, "st_NESW", false, swallowNone),
		stNameOp(stopTables, suffixOverride),
		ChompN(2, chompRdNumber(suffixTable), swallowAll),
		RepeatTable(suffixTable, "st_suffix", swallowParseErrors),
		ConsumeTable(directionalTable, "st_NESW", false, swallowNone),
		unitOp,
		TakeWhile(cityRecognizer(), false, swallowNone),
		ConsumeTable(stateTableSingleton, "us_state", true, swallowNone),
		ConsumeWith(zipCodeRecognizer, swallowNone),
	}
}

func swallowAll(error) bool { return true }

// handleManySuffix allows street suffixes to appear inside a street name
// ("123 Park St") by folding every suffix occurrence but the last into
// st_name. See spec.md 4.3's tie-break rule on multiple suffix tokens.
func (p *Parser) handleManySuffix(words []string) (stNameSuffixOverride, bool) {
	var labels []string
	for _, w := range words {
		if lbl, length, ok := suffixTable.Match([]string{w}); ok && length == 1 {
			labels = append(labels, lbl)
		}
	}
	if len(labels) <= 1 {
		return nil, false
	}
	rev := make([]string, len(labels))
	for i, l := range labels {
		rev[len(labels)-1-i] = l
	}
	if rev[0] == "ST" {
		return nil, false
	}
	remaining := rev
	override := func(tok string) (bool, bool) {
		if len(remaining) > 1 {
			if lbl, length, ok := suffixTable.Match([]string{tok}); ok && length == 1 && lbl == remaining[len(remaining)-1] {
				remaining = remaining[:len(remaining)-1]
				return true, true
			}
		}
		return false, false
	}
	return override, true
}

var nswSuffixPairRe = regexp.MustCompile(`^(NE|NW|SE|SW|N|S|E|W) `)

// collectResults folds the accumulated ParseSteps into a RawAddress,
// applying the NESW-into-st_name fallback, FRAC-to-/ restoration, unit "#"
// stripping, and the required-field check.
func (p *Parser) collectResults(orig string, steps []ParseStep, checked bool) (address.RawAddress, error) {
	fields := map[string][]string{
		"house_number": nil, "st_name": nil, "st_suffix": nil, "st_NESW": nil,
		"unit": nil, "city": nil, "us_state": nil, "zip_code": nil,
	}
	for _, s := range steps {
		if s.Label == "junk" {
			continue
		}
		fields[s.Label] = append(fields[s.Label], s.Value)
	}

	if len(fields["st_name"]) == 0 && len(fields["st_NESW"]) > 0 {
		upper := strings.ToUpper(orig)
		if m := nswSuffixPairRe.FindStringSubmatch(upper); m != nil {
			nesw := m[1]
			for i, v := range fields["st_NESW"] {
				if v == nesw {
					fields["st_name"] = []string{v}
					fields["st_NESW"] = append(append([]string{}, fields["st_NESW"][:i:i]...), fields["st_NESW"][i+1:]...)
					break
				}
			}
		}
	}

	if checked {
		for _, req := range address.HardFields {
			if len(fields[req]) == 0 {
				return address.RawAddress{}, &ParseError{Orig: orig, Reason: "could not identify " + req}
			}
		}
	}

	unit := strings.Join(fields["unit"], " ")
	unit = strings.ReplaceAll(unit, "#", "")

	houseNumber := strings.Join(fields["house_number"], " ")
	houseNumber = strings.ReplaceAll(houseNumber, "FRAC", "/")

	return address.RawAddress{Record: address.Record{
		HouseNumber: houseNumber,
		StName:      strings.Join(fields["st_name"], " "),
		StSuffix:    strings.Join(fields["st_suffix"], " "),
		StNESW:      strings.Join(fields["st_NESW"], " "),
		Unit:        strings.TrimSpace(unit),
		City:        strings.Join(fields["city"], " "),
		UsState:     strings.Join(fields["us_state"], " "),
		ZipCode:     strings.Join(fields["zip_code"], " "),
		Orig:        orig,
	}}, nil
}

// KnownCities returns the caller-supplied known-city list this Parser was
// built with (not including the built-in default city list).
func (p *Parser) KnownCities() []string {
	out := make([]string, len(p.knownCities))
	copy(out, p.knownCities)
	return out
}
