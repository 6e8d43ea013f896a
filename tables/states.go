// Package tables holds the fixed data tables the parser and matcher are
// built from: state names, street suffixes, directionals, unit types,
// highway phrases, and the built-in default city list. These are inputs to
// the core, not algorithms in their own right — callers supply additional
// known-city/known-street lists at construction time, the tables here are
// just the baseline every Parser ships with.
package tables

// USStateAbbrs is every two-letter USPS state/territory abbreviation the
// Mealy matcher recognizes directly, without a synonym lookup.
var USStateAbbrs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN",
	"MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "PA", "PR", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA",
	"WA", "WV", "WI", "WY",
}

// USStateLongForms maps each state abbreviation to the multi-word spelled
// out forms the Mealy matcher should fold back to that abbreviation, e.g.
// "SOUTH DAKOTA" -> "SD". Only states whose names are genuinely ambiguous
// with common street words, or that appear in the spec's worked examples,
// need an entry here to be exercised; the rest are included for completeness
// since the table is static data, not algorithmic weight.
var USStateLongForms = map[string][]string{
	"AL": {"ALABAMA"},
	"AK": {"ALASKA"},
	"AZ": {"ARIZONA"},
	"AR": {"ARKANSAS"},
	"CA": {"CALIFORNIA"},
	"CO": {"COLORADO"},
	"CT": {"CONNECTICUT"},
	"DE": {"DELAWARE"},
	"DC": {"DISTRICT OF COLUMBIA"},
	"FL": {"FLORIDA"},
	"GA": {"GEORGIA"},
	"HI": {"HAWAII"},
	"ID": {"IDAHO"},
	"IL": {"ILLINOIS"},
	"IN": {"INDIANA"},
	"IA": {"IOWA"},
	"KS": {"KANSAS"},
	"KY": {"KENTUCKY"},
	"LA": {"LOUISIANA"},
	"ME": {"MAINE"},
	"MD": {"MARYLAND"},
	"MA": {"MASSACHUSETTS"},
	"MI": {"MICHIGAN"},
	"MN": {"MINNESOTA"},
	"MS": {"MISSISSIPPI"},
	"MO": {"MISSOURI"},
	"MT": {"MONTANA"},
	"NE": {"NEBRASKA"},
	"NV": {"NEVADA"},
	"NH": {"NEW HAMPSHIRE"},
	"NJ": {"NEW JERSEY"},
	"NM": {"NEW MEXICO"},
	"NY": {"NEW YORK"},
	"NC": {"NORTH CAROLINA"},
	"ND": {"NORTH DAKOTA"},
	"OH": {"OHIO"},
	"OK": {"OKLAHOMA"},
	"OR": {"OREGON"},
	"PA": {"PENNSYLVANIA"},
	"PR": {"PUERTO RICO"},
	"RI": {"RHODE ISLAND"},
	"SC": {"SOUTH CAROLINA"},
	"SD": {"SOUTH DAKOTA"},
	"TN": {"TENNESSEE"},
	"TX": {"TEXAS"},
	"UT": {"UTAH"},
	"VT": {"VERMONT"},
	"VA": {"VIRGINIA"},
	"WA": {"WASHINGTON"},
	"WV": {"WEST VIRGINIA"},
	"WI": {"WISCONSIN"},
	"WY": {"WYOMING"},
}

// StateSet is USStateAbbrs as a lookup set, used to strip two-letter state
// codes out of the suffix alternation (KY is both a state and, in older
// fixtures, mistakenly a suffix candidate; it must resolve as a state).
func StateSet() map[string]bool {
	m := make(map[string]bool, len(USStateAbbrs))
	for _, s := range USStateAbbrs {
		m[s] = true
	}
	return m
}
