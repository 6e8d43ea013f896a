package address

import "strings"

// RawAddress is what a Parser emits: structurally identical to Address but
// tagged as not-yet-canonical. It must never be used as a map or set key —
// unlike address_hammer's runtime check on __hash__, that rule is enforced
// here at compile time: RawAddress has no Key method, so nothing can
// accidentally hash one.
type RawAddress struct {
	Record
}

// Address is a canonical record, produced only by a Hammer. It is safe to
// use as a map key via Key(), and safe to compare with Equals.
type Address struct {
	Record
}

// Equals implements the non-transitive equality rule from spec.md: hard
// components must match exactly, and every soft component must either
// agree or have at least one side absent. Only records of the same
// canonical-ness are compared — Address.Equals never compares against a
// RawAddress without an explicit conversion.
func (a Address) Equals(b Address) bool {
	if a.Hard() != b.Hard() {
		return false
	}
	return equalSofts(a.SoftComponents(), b.SoftComponents())
}

// Equals is the RawAddress analogue of Address.Equals, used during batch
// analysis before records are promoted to canonical form.
func (a RawAddress) Equals(b RawAddress) bool {
	if a.Hard() != b.Hard() {
		return false
	}
	return equalSofts(a.SoftComponents(), b.SoftComponents())
}

// Key renders a string uniquely identifying this canonical record's full
// content (hard plus soft components, absent rendered as empty), suitable
// as a Go map key or set element. Two records that are Equals but differ in
// which soft fields are filled in will NOT share a Key — the canonicalizer
// is responsible for filling in softs consistently across a batch before
// records reach a set, per spec.md's design notes on the hash/equality
// relationship.
func (a Address) Key() string {
	h := a.HardComponents()
	s := a.SoftComponents()
	return strings.Join(append(h[:], s[:]...), "\x1f")
}

// Less orders two addresses by hard component tuple.
func (a Address) Less(b Address) bool { return Less(a.Record, b.Record) }

// Pretty renders the canonical string form of a canonical record.
func (a Address) Pretty() (string, error) { return Pretty(a.Record) }

// Pretty renders the canonical string form of a raw record. Raw records are
// rarely pretty-printed (they may be missing required fields), but it's
// useful for diagnostics.
func (a RawAddress) Pretty() (string, error) { return Pretty(a.Record) }

// WithUnit returns a copy of a with Unit replaced, used by Hammer.Get's
// ambiguous-unit fallback (stripping the unit) and by batch fill-in.
func (a Address) WithUnit(unit string) Address {
	a.Unit = unit
	return a
}

// WithBatchChecksum returns a copy of a stamped with the given checksum.
func (a Address) WithBatchChecksum(checksum string) Address {
	a.BatchChecksum = checksum
	return a
}

// ToCanonical promotes a RawAddress to an Address without modification. It
// is the caller's responsibility to have already filled in soft components
// consistently (normally done by Hammer, not called directly).
func (a RawAddress) ToCanonical() Address {
	return Address{Record: a.Record}
}
