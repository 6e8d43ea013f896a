package parser

// DifficultAddresses collects address strings that have, at one point or
// another, broken the parser: house number zero, a trailing unit with no
// separating word, a bare "#0" unit. The parser tests run every one of
// these through the full pipeline as a regression net.
var DifficultAddresses = []string{
	"000  Plymouth Rd Trlr 113  Ford MI 48000",
	"0 Joy Rd Trlr 105  Red MI 48000",
	"0  Stoepel St #0  Detroit MI 48000",
	"0 W Boston Blvd # 7  Detroit MI 48000",
}
