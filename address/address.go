// Package address defines the address record: the hard/soft component
// split, non-transitive equality, ordering, canonical string rendering, and
// the distinction between a raw (parser output) and canonical (hammer
// output) record.
package address

import (
	"sort"
	"strings"
)

// HardFields names the four required components, in the tuple order used
// for ordering and checksum determinism.
var HardFields = []string{"house_number", "st_name", "city", "us_state"}

// SoftFields names the four optional components, in the order spec.md's
// soft_components() uses.
var SoftFields = []string{"st_suffix", "st_NESW", "unit", "zip_code"}

// InvalidAddressError is raised by a post-construction semantic check, e.g.
// a corrupted directional field holding more than two meaningful tokens.
type InvalidAddressError struct {
	Orig   string
	Reason string
}

func (e *InvalidAddressError) Error() string {
	return "invalid address '" + e.Orig + "': " + e.Reason
}

// Record holds the ten fields common to both RawAddress and Address. It is
// never used directly by callers; Record is embedded in the two tagged
// wrapper types below so the type system (not a runtime flag) distinguishes
// "not yet canonical" from "canonical."
type Record struct {
	HouseNumber string
	StName      string
	StSuffix    string // "" means absent
	StNESW      string
	Unit        string
	City        string
	UsState     string
	ZipCode     string
	Orig        string
	BatchChecksum string
}

// HardKey is the comparable tuple used as a map key wherever records need to
// be grouped by their required components (the canonicalizer's fill-in and
// unit tables, the ambiguous-group reporter).
type HardKey struct {
	HouseNumber string
	StName      string
	City        string
	UsState     string
}

// Hard returns the record's hard-component key.
func (r Record) Hard() HardKey {
	return HardKey{r.HouseNumber, r.StName, r.City, r.UsState}
}

// HardComponents returns the four hard fields in tuple order, used for
// ordering and checksum hashing.
func (r Record) HardComponents() [4]string {
	return [4]string{r.HouseNumber, r.StName, r.City, r.UsState}
}

// SoftComponents returns the four soft fields in tuple order, empty string
// standing in for "absent."
func (r Record) SoftComponents() [4]string {
	return [4]string{r.StSuffix, r.StNESW, r.Unit, r.ZipCode}
}

// equalSofts implements the "agree or one absent" half of record equality.
func equalSofts(a, b [4]string) bool {
	for i := range a {
		if a[i] != "" && b[i] != "" && a[i] != b[i] {
			return false
		}
	}
	return true
}

// Less orders two records lexicographically over their hard component
// tuple, matching spec.md's checksum-determinism ordering requirement.
func Less(a, b Record) bool {
	ah, bh := a.HardComponents(), b.HardComponents()
	for i := range ah {
		if ah[i] != bh[i] {
			return ah[i] < bh[i]
		}
	}
	return false
}

// SortRecords sorts a slice of records in place using Less.
func SortRecords(rs []Record) {
	sort.Slice(rs, func(i, j int) bool { return Less(rs[i], rs[j]) })
}

// softString renders an optional soft value for display, "" when absent.
func softString(s string) string { return s }

// Pretty renders the canonical string form of a record, porting
// address_hammer's Address.pretty() exactly: a single-character leading
// directional (e.g. "N Main St") and a longer trailing directional word
// (e.g. "Main St SW") are both carried in the st_NESW field and split apart
// here by token length.
func Pretty(r Record) (string, error) {
	neswTokens := strings.Fields(r.StNESW)
	sort.Slice(neswTokens, func(i, j int) bool { return len(neswTokens[i]) < len(neswTokens[j]) })

	var lead, trail string
	switch len(neswTokens) {
	case 0:
		// both empty
	case 1:
		if len(neswTokens[0]) == 1 {
			lead = neswTokens[0]
		} else {
			trail = neswTokens[0]
		}
	case 2:
		a, b := neswTokens[0], neswTokens[1]
		if len(a) > 1 && len(b) > 1 {
			return "", &InvalidAddressError{Orig: r.Orig, Reason: "NESW"}
		}
		lead, trail = a, b
	default:
		return "", &InvalidAddressError{Orig: r.Orig, Reason: "NESW"}
	}

	unitParts := strings.Fields(r.Unit)
	var unit string
	switch len(unitParts) {
	case 0:
		unit = ""
	case 2:
		unit = titleize(unitParts[0]) + " " + strings.ToUpper(unitParts[1])
	default:
		return "", &InvalidAddressError{Orig: r.Orig, Reason: "unit"}
	}

	parts := []string{
		r.HouseNumber,
		lead,
		titleizeWords(r.StName),
		titleize(r.StSuffix),
		trail,
		unit,
		titleizeWords(r.City),
		strings.ToUpper(r.UsState),
		r.ZipCode,
	}
	return normalizeWhitespace(strings.Join(parts, " ")), nil
}

func titleize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleize(w)
	}
	return strings.Join(words, " ")
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// optSum is the monoidal "prefer the left value" combinator address_hammer
// calls opt_sum: if a is present (non-empty), keep it; otherwise fall back
// to b.
func optSum(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// CombineSoft merges the soft components of two records that are already
// known to be Equals, preferring a's value for each field. Hard components
// and metadata are taken from a.
func CombineSoft(a, b Record) Record {
	out := a
	out.StSuffix = optSum(a.StSuffix, b.StSuffix)
	out.StNESW = optSum(a.StNESW, b.StNESW)
	out.Unit = optSum(a.Unit, b.Unit)
	out.ZipCode = optSum(a.ZipCode, b.ZipCode)
	return out
}

// SoftFillIn is a per-field fill-in value, keyed by SoftFields name, used by
// CombineSoftMap. An absent entry or empty string leaves the field as a did
// not supply a value.
type SoftFillIn map[string]string

// CombineSoftMap merges a's soft components with a table of externally
// observed fill-in values (the canonicalizer's fill-in table), preferring
// a's own value for each field.
func CombineSoftMap(a Record, fillIn SoftFillIn) Record {
	out := a
	out.StSuffix = optSum(a.StSuffix, fillIn["st_suffix"])
	out.StNESW = optSum(a.StNESW, fillIn["st_NESW"])
	out.Unit = optSum(a.Unit, fillIn["unit"])
	out.ZipCode = optSum(a.ZipCode, fillIn["zip_code"])
	return out
}
