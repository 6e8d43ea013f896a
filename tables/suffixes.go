package tables

// rawStSuffixes is the canonical street-suffix list (USPS Pub 28 abbreviated
// forms); StSuffixes removes the two-letter state codes from it — "KY" is a valid
// street suffix token in the raw list but must never shadow the Kentucky
// state abbreviation.
var rawStSuffixes = []string{
	"ALY", "ANX", "ARC", "AVE", "BYU", "BCH", "BND", "BLF", "BLFS", "BTM",
	"BLVD", "BR", "BRG", "BRK", "BRKS", "BG", "BGS", "BYP", "CP", "CYN",
	"CPE", "CSWY", "CTR", "CTRS", "CIR", "CIRS", "CLF", "CLFS", "CLB",
	"CMN", "CMNS", "COR", "CORS", "CRSE", "CT", "CTS", "CV", "CVS", "CRK",
	"CRES", "CRST", "XING", "XRD", "XRDS", "CURV", "DL", "DM", "DV", "DR",
	"DRS", "EST", "ESTS", "EXPY", "EXT", "EXTS", "FALL", "FLS", "FRY",
	"FLD", "FLDS", "FLT", "FLTS", "FRD", "FRDS", "FRST", "FRG", "FRGS",
	"FRK", "FRKS", "FT", "FWY", "GDN", "GDNS", "GTWY", "GLN", "GLNS",
	"GRN", "GRNS", "GRV", "GRVS", "HBR", "HBRS", "HVN", "HTS", "HWY",
	"HL", "HLS", "HOLW", "INLT", "IS", "ISS", "ISLE", "JCT", "JCTS",
	"KY", "KYS", "KNL", "KNLS", "LK", "LKS", "LAND", "LNDG", "LN", "LGT",
	"LGTS", "LF", "LCK", "LCKS", "LDG", "LOOP", "MALL", "MNR", "MNRS",
	"MDW", "MDWS", "MEWS", "ML", "MLS", "MSN", "MTWY", "MT", "MTN",
	"MTNS", "NCK", "ORCH", "OVAL", "OPAS", "PARK", "PKWY", "PASS",
	"PSGE", "PATH", "PIKE", "PNE", "PNES", "PL", "PLN", "PLNS", "PLZ",
	"PT", "PTS", "PRT", "PRTS", "PR", "RADL", "RAMP", "RNCH", "RPD",
	"RPDS", "RST", "RDG", "RDGS", "RIV", "RD", "RDS", "RTE", "ROW",
	"RUE", "RUN", "SHL", "SHLS", "SHR", "SHRS", "SKWY", "SPG", "SPGS",
	"SPUR", "SQ", "SQS", "STA", "STRA", "STRM", "ST", "STS", "SMT",
	"TER", "TRWY", "TRCE", "TRAK", "TRFY", "TRL", "TUNL", "TPKE",
	"UPAS", "UN", "UNS", "VLY", "VLYS", "VIA", "VW", "VWS", "VLG",
	"VLGS", "VL", "VIS", "WALK", "WALL", "WAY", "WAYS", "WL", "WLS",
}

// StSuffixes returns the suffix alternation with every two-letter state
// abbreviation removed, per spec: the suffix set and the state set must
// never overlap.
func StSuffixes() []string {
	states := StateSet()
	out := make([]string, 0, len(rawStSuffixes))
	seen := make(map[string]bool, len(rawStSuffixes))
	for _, s := range rawStSuffixes {
		if states[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// StSuffixSynonyms maps a canonical suffix to additional spelled-out or
// alternate forms the Mealy matcher should normalize to it. Unlisted
// suffixes match only their own canonical token.
var StSuffixSynonyms = map[string][]string{
	"AVE":  {"AVENUE", "AV"},
	"BLVD": {"BOULEVARD"},
	"CIR":  {"CIRCLE"},
	"CT":   {"COURT"},
	"DR":   {"DRIVE"},
	"HWY":  {"HIGHWAY"},
	"LN":   {"LANE"},
	"PKWY": {"PARKWAY", "PKY"},
	"PL":   {"PLACE"},
	"RD":   {"ROAD"},
	"SQ":   {"SQUARE"},
	"ST":   {"STREET", "STR"},
	"TER":  {"TERRACE"},
	"TRL":  {"TRAIL"},
	"WAY":  {"WY"},
}
