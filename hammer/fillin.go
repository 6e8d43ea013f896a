package hammer

import "github.com/lambdalogan/addresshammer/address"

// fillInSoftFields names the three soft fields fill-in considers; "unit" is
// handled separately via unitStore, per spec.md 4.5 step 5's "other than
// unit" carve-out.
var fillInSoftFields = []string{"st_suffix", "st_NESW", "zip_code"}

func softValue(a address.Address, label string) string {
	switch label {
	case "st_suffix":
		return a.StSuffix
	case "st_NESW":
		return a.StNESW
	case "zip_code":
		return a.ZipCode
	default:
		return ""
	}
}

// fillInFactory is the batch-wide fill-in/unit table described by spec.md
// 4.5 steps 5-6: given one address, it expands it into every canonical
// Address the batch's siblings make plausible.
type fillInFactory struct {
	softs     map[address.HardKey]map[string]map[string]bool
	unitStore map[address.HardKey]map[string][]address.Address

	ambiguousGroups [][]address.Address
}

func newFillInFactory(addresses []address.Address) *fillInFactory {
	f := &fillInFactory{
		softs:     make(map[address.HardKey]map[string]map[string]bool),
		unitStore: make(map[address.HardKey]map[string][]address.Address),
	}

	for _, a := range addresses {
		hard := a.Hard()
		set, ok := f.softs[hard]
		if !ok {
			set = newSoftSet()
			f.softs[hard] = set
		}
		for _, label := range fillInSoftFields {
			if v := softValue(a, label); v != "" {
				set[label][v] = true
			}
		}
		if a.Unit != "" {
			byUnit, ok := f.unitStore[hard]
			if !ok {
				byUnit = make(map[string][]address.Address)
				f.unitStore[hard] = byUnit
			}
			byUnit[a.Unit] = append(byUnit[a.Unit], a)
		}
	}

	// Rewrite every stored unit address through fillIn once so it carries
	// whatever soft fields the rest of the batch can supply, mirroring
	// address_hammer's two-pass unit_store construction.
	for hard, byUnit := range f.unitStore {
		for unit, adds := range byUnit {
			var filled []address.Address
			for _, a := range adds {
				filled = append(filled, f.fillIn(a)...)
			}
			f.unitStore[hard][unit] = filled
		}
	}

	f.ambiguousGroups = computeAmbiguousGroups(addresses, f.softs)
	return f
}

func newSoftSet() map[string]map[string]bool {
	m := make(map[string]map[string]bool, len(fillInSoftFields))
	for _, label := range fillInSoftFields {
		m[label] = make(map[string]bool)
	}
	return m
}

// fillIn expands a into every canonical Address its hard key and the
// batch's accumulated soft-field knowledge make plausible. Returns nil if
// the hard key was never seen by this factory, or if some non-unit soft
// field is ambiguous across the batch and a doesn't specify a value for it
// itself — per spec.md 4.5's lookup contract.
func (f *fillInFactory) fillIn(a address.Address) []address.Address {
	hard := a.Hard()
	softs, ok := f.softs[hard]
	if !ok {
		return nil
	}

	fill := address.SoftFillIn{}
	for _, label := range fillInSoftFields {
		vals := softs[label]
		val := softValue(a, label)
		if val != "" {
			vals[val] = true
			fill[label] = val
			continue
		}
		if len(vals) == 1 {
			for v := range vals {
				fill[label] = v
			}
			continue
		}
		if len(vals) > 1 {
			return nil
		}
	}

	if a.Unit != "" {
		return []address.Address{{Record: address.CombineSoftMap(a.Record, fill)}}
	}

	byUnit, ok := f.unitStore[hard]
	if !ok || len(byUnit) == 0 {
		return []address.Address{{Record: address.CombineSoftMap(a.Record, fill)}}
	}

	var out []address.Address
	for _, adds := range byUnit {
		for _, b := range adds {
			if a.Equals(b) {
				out = append(out, address.Address{Record: address.CombineSoft(a.Record, b.Record)})
			}
		}
	}
	return out
}

// computeAmbiguousGroups collects, per hard key, every address whose batch
// has more than one distinct non-empty value for some non-unit soft field —
// groups fill-in couldn't resolve unassisted, per spec.md 4.5 step 5.
func computeAmbiguousGroups(addresses []address.Address, softs map[address.HardKey]map[string]map[string]bool) [][]address.Address {
	isAmbig := func(hard address.HardKey) bool {
		set, ok := softs[hard]
		if !ok {
			return false
		}
		for _, label := range fillInSoftFields {
			if len(set[label]) > 1 {
				return true
			}
		}
		return false
	}

	groups := make(map[address.HardKey][]address.Address)
	var order []address.HardKey
	for _, a := range addresses {
		hard := a.Hard()
		if !isAmbig(hard) {
			continue
		}
		if _, ok := groups[hard]; !ok {
			order = append(order, hard)
		}
		groups[hard] = append(groups[hard], a)
	}

	out := make([][]address.Address, 0, len(order))
	for _, hard := range order {
		out = append(out, groups[hard])
	}
	return out
}
