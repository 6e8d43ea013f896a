package address

// Get holds field-accessor functions usable with map/filter style code,
// mirroring address_hammer's Address.Get namespace (e.g.
// `map(Address.Get.city, addresses)`).
var Get = struct {
	HouseNumber func(Address) string
	StName      func(Address) string
	StSuffix    func(Address) string
	StNESW      func(Address) string
	Unit        func(Address) string
	City        func(Address) string
	UsState     func(Address) string
	ZipCode     func(Address) string
}{
	HouseNumber: func(a Address) string { return a.HouseNumber },
	StName:      func(a Address) string { return a.StName },
	StSuffix:    func(a Address) string { return a.StSuffix },
	StNESW:      func(a Address) string { return a.StNESW },
	Unit:        func(a Address) string { return a.Unit },
	City:        func(a Address) string { return a.City },
	UsState:     func(a Address) string { return a.UsState },
	ZipCode:     func(a Address) string { return a.ZipCode },
}

// Mutator transforms address fields and returns a new Address, never
// mutating its argument — the same "immutable field update" contract
// spec.md's Lifecycle section requires of canonical records.
type Mutator func(Address) Address

// FieldMutators names the per-field rewrite functions Set accepts. A nil
// entry leaves that field untouched.
type FieldMutators struct {
	City          func(string) string
	StName        func(string) string
	BatchChecksum func(string) string
}

// Set builds a Mutator that rewrites the named fields using the supplied
// per-field functions, mirroring address_hammer's Address.Set(field=fn)
// builder. Unspecified fields are left untouched.
func Set(m FieldMutators) Mutator {
	return func(a Address) Address {
		if m.City != nil {
			a.City = m.City(a.City)
		}
		if m.StName != nil {
			a.StName = m.StName(a.StName)
		}
		if m.BatchChecksum != nil {
			a.BatchChecksum = m.BatchChecksum(a.BatchChecksum)
		}
		return a
	}
}

// SetUnit builds a Mutator that rewrites only the Unit field, used by
// Hammer's ambiguous-unit fallback (RemoveUnit).
func SetUnit(f func(string) string) Mutator {
	return func(a Address) Address {
		a.Unit = f(a.Unit)
		return a
	}
}

// RemoveUnit is the Mutator address_hammer calls `remove_unit`: it strips
// whatever unit a record carries.
var RemoveUnit = SetUnit(func(string) string { return "" })

// RoundTrips implements spec.md invariant 2: re-parsing a canonical record's
// pretty-printed form must give a record equal to it under the record
// equality rule — identical hard components, and each soft component either
// identical or absent on one side. Orig and BatchChecksum are not compared.
// parse is injected so this package has no dependency on the parser
// package.
func RoundTrips(a Address, parse func(string) (RawAddress, error)) (bool, error) {
	pretty, err := a.Pretty()
	if err != nil {
		return false, err
	}
	reparsed, err := parse(pretty)
	if err != nil {
		return false, err
	}
	return a.Hard() == reparsed.Hard() && equalSofts(a.SoftComponents(), reparsed.SoftComponents()), nil
}
