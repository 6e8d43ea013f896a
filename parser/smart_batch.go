package parser

import "github.com/lambdalogan/addresshammer/address"

// SmartBatch parses a batch of address strings, tolerating dirty input
// that's missing a city separator by learning city names from the
// addresses that parsed cleanly on the first pass. "123 Main, Springfield
// OH 45501" fails to parse on its own if "SPRINGFIELD" isn't already a
// known city — but if some other address in the same batch has
// "Springfield" as its city, a second pass with that city folded into
// known_cities repairs it.
//
// Every input is attempted at most twice. reportError is called, in
// order, for every address that still fails on the second pass; pass nil
// to ignore those failures entirely. Every other ParseError is swallowed.
func SmartBatch(p *Parser, adds []string, reportError func(err error, orig string)) []address.RawAddress {
	if reportError == nil {
		reportError = func(error, string) {}
	}

	var out []address.RawAddress
	var failed []string
	cities := make(map[string]bool)

	for _, add := range adds {
		a, err := p.Parse(add)
		if err != nil {
			failed = append(failed, add)
			continue
		}
		cities[a.City] = true
		out = append(out, a)
	}

	if len(failed) == 0 {
		return out
	}

	extra := make([]string, 0, len(cities))
	for c := range cities {
		extra = append(extra, c)
	}
	retry := NewParser(append(append([]string{}, p.knownCities...), extra...), p.logger)

	for _, add := range failed {
		a, err := retry.Parse(add)
		if err != nil {
			reportError(err, add)
			continue
		}
		out = append(out, a)
	}
	return out
}
