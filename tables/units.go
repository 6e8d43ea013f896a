package tables

// UnitKeywords are unit-type tokens that take an identifier: "APT 447",
// "STE 2B", "#12". "#" itself is not in the list: the tokenizer rewrites it
// to "APT" before any table is consulted (see parser.tokenize).
var UnitKeywords = []string{"APT", "BLDG", "STE", "UNIT", "RM", "DEPT", "TRLR", "LOT", "FL"}

// UnitKeywordSynonyms maps a canonical unit keyword to the spelled-out or
// alternate forms recognized for it.
var UnitKeywordSynonyms = map[string][]string{
	"APT":  {"APARTMENT"},
	"BLDG": {"BUILDING"},
	"STE":  {"SUITE"},
	"RM":   {"ROOM"},
	"DEPT": {"DEPARTMENT"},
	"TRLR": {"TRAILER"},
	"FL":   {"FLOOR"},
}

// UnitaryKeywords are unit-type tokens that stand alone, with no
// identifier, e.g. "123 Main St Rear".
var UnitaryKeywords = []string{
	"BSMT", "FRNT", "LBBY", "LOWR", "OFC", "PH", "REAR", "SIDE", "UPPR",
}

// UnitaryKeywordSynonyms maps a canonical unitary keyword to spelled-out
// alternates.
var UnitaryKeywordSynonyms = map[string][]string{
	"BSMT": {"BASEMENT"},
	"FRNT": {"FRONT"},
	"LBBY": {"LOBBY"},
	"LOWR": {"LOWER"},
	"OFC":  {"OFFICE"},
	"UPPR": {"UPPER"},
}
