package parser

import (
	"github.com/lambdalogan/addresshammer/matcher"
	"github.com/lambdalogan/addresshammer/tables"
)

// The state/directional/suffix/unit tables never vary with a Parser's
// configuration, so they're built exactly once per process and shared by
// every Parser instance — the "acquired once per configuration and reused
// across many calls" resource-scoping rule from spec.md section 5, applied
// to the part of the configuration that's always constant.
var (
	stateTableSingleton      = matcher.BuildStateTable()
	directionalTable         = matcher.BuildDirectionalTable()
	suffixTable              = matcher.BuildSuffixTable()
	unitTable                = matcher.BuildUnitTable()
	cityTableCache           = tables.NewCompiledTableCache[*matcher.Table](64)
)

// cityTableFor returns the compiled city Mealy table for a given known-city
// list, building and caching it if this exact (order/case independent) list
// hasn't been seen before.
func cityTableFor(knownCities []string) *matcher.Table {
	key := tables.Signature(knownCities)
	return cityTableCache.GetOrBuild(key, func() *matcher.Table {
		return matcher.BuildCityTable(knownCities)
	})
}
