package tables

// HighwayPhrases are multi-word highway designators that precede a
// letter/number tail, e.g. "COUNTY ROAD 12", "STATE HIGHWAY 9A". A table
// built from them (matcher.BuildHighwayTable) folds the phrase to its
// canonical abbreviation. The parser's pipeline does not consult this table:
// its rd-number stage folds only a single RD/HWY/RTE suffix word followed by
// a bare number.
var HighwayPhrases = map[string][][]string{
	"CR":  {{"COUNTY", "ROAD"}, {"CO", "RD"}},
	"SH":  {{"STATE", "HIGHWAY"}, {"STATE", "HWY"}},
	"FM":  {{"FARM", "TO", "MARKET"}, {"FARM", "MARKET"}},
	"US":  {{"US", "HIGHWAY"}, {"US", "HWY"}},
	"HWY": {{"HIGHWAY"}},
	"RTE": {{"ROUTE"}},
	"RD":  {{"ROAD"}},
}
