// Package hammer implements the canonicalizer: it turns a batch of raw or
// canonical addresses into a deduplicated, typo-repaired, hole-filled set of
// canonical Address records, per spec.md 4.5.
package hammer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/lambdalogan/addresshammer/address"
	"github.com/lambdalogan/addresshammer/fuzzy"
	"github.com/lambdalogan/addresshammer/parser"
	"go.uber.org/zap"
)

// ChecksumMismatchError is raised when two records stamped with different
// batch checksums are compared, per spec.md 4.5's guard against mixing
// records drawn from two different Hammer batches.
type ChecksumMismatchError struct {
	A, B string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: '%s' and '%s'", e.A, e.B)
}

// ChecksumIgnore is a sentinel batch checksum value that disables the
// mismatch check entirely (used by callers that don't care about batch
// provenance, e.g. hand-built test fixtures).
const ChecksumIgnore = ""

func checkChecksum(a, b string) error {
	if a == ChecksumIgnore || b == ChecksumIgnore {
		return nil
	}
	if a != b {
		return &ChecksumMismatchError{A: a, B: b}
	}
	return nil
}

// ErrKeyNotFound is returned by Get when an address (or its equivalence
// class) has no match in the Hammer's batch.
type ErrKeyNotFound struct {
	Orig string
}

func (e *ErrKeyNotFound) Error() string { return "no address matching '" + e.Orig + "'" }

// ParseFailure pairs a discarded input with the reason it never made it into
// the batch — a parse error, or a junk-city/junk-street rejection.
type ParseFailure struct {
	Orig   string
	Reason error
}

// Config bundles Hammer's construction-time parameters, per spec.md 4.5's
// input list.
type Config struct {
	KnownCities       []string
	KnownStreets      []string
	JunkCities        []string
	JunkStreets       []string
	CityRepairLevel   int // 0-10
	StreetRepairLevel int // 0-10
	MakeBatchChecksum bool
	Logger            *zap.Logger
}

// Hammer normalizes a batch of addresses so every address in (or looked up
// against) the batch is hashable, typo-repaired, and as complete as its
// siblings in the batch allow. A Hammer should be built once per batch and
// reused for every lookup against that batch.
type Hammer struct {
	parser        *parser.Parser
	repairCity    *fuzzy.FixTypos
	repairSt      *fuzzy.FixTypos
	batchChecksum string
	logger        *zap.Logger

	factory       *fillInFactory
	addresses     map[string]address.Address
	parseFailures []ParseFailure
	ambiguous     [][]address.Address
}

// NewHammer builds a Hammer from a mix of raw address strings and
// already-parsed addresses. Strings are parsed via smart_batch; parse
// failures and junk-city/junk-street rejections are collected into
// ParseFailures rather than raised.
func NewHammer(inputs []string, preparsed []address.Address, cfg Config) (*Hammer, error) {
	if cfg.CityRepairLevel < 0 || cfg.CityRepairLevel > 10 {
		return nil, fmt.Errorf("hammer: city repair level must be 0-10, not %d", cfg.CityRepairLevel)
	}
	if cfg.StreetRepairLevel < 0 || cfg.StreetRepairLevel > 10 {
		return nil, fmt.Errorf("hammer: street repair level must be 0-10, not %d", cfg.StreetRepairLevel)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := parser.NewParser(cfg.KnownCities, logger)

	var parseFailures []ParseFailure
	parsed := parser.SmartBatch(p, inputs, func(err error, orig string) {
		parseFailures = append(parseFailures, ParseFailure{Orig: orig, Reason: err})
		logger.Warn("hammer: discarding unparseable address", zap.String("orig", orig), zap.Error(err))
	})

	junkCities := toSet(cfg.JunkCities)
	junkStreets := toSet(cfg.JunkStreets)

	ok := func(a address.RawAddress) bool {
		if junkCities[a.City] {
			parseFailures = append(parseFailures, ParseFailure{Orig: a.Orig, Reason: fmt.Errorf("junk city")})
			return false
		}
		if junkStreets[a.StName] {
			parseFailures = append(parseFailures, ParseFailure{Orig: a.Orig, Reason: fmt.Errorf("junk street")})
			return false
		}
		return true
	}

	addresses := make([]address.Address, 0, len(parsed)+len(preparsed))
	for _, a := range parsed {
		if ok(a) {
			addresses = append(addresses, a.ToCanonical())
		}
	}
	for _, a := range preparsed {
		if ok(address.RawAddress{Record: a.Record}) {
			addresses = append(addresses, a)
		}
	}

	cutoff := math.Log(math.Max(float64(len(addresses)), 1))

	cityBag := bagFrom(mapField(addresses, func(a address.Address) string { return a.City }))
	var repairCity *fuzzy.FixTypos
	if cfg.CityRepairLevel == 0 {
		repairCity = fuzzy.NewFixTypos(nil, 0, logger)
	} else {
		vocab := append(append([]string{}, cfg.KnownCities...), frequentWords(cityBag, cutoff)...)
		repairCity = fuzzy.NewFixTypos(vocab, float64(cfg.CityRepairLevel), logger)
	}

	var repairSt *fuzzy.FixTypos
	if cfg.StreetRepairLevel == 0 {
		repairSt = fuzzy.NewFixTypos(nil, 0, logger)
	} else {
		stBag := bagFrom(mapField(addresses, func(a address.Address) string { return a.StName }))
		vocab := append(append([]string{}, cfg.KnownStreets...), frequentWords(stBag, cutoff)...)
		repairSt = fuzzy.NewFixTypos(vocab, float64(cfg.StreetRepairLevel), logger)
	}

	checksum := ""
	if cfg.MakeBatchChecksum {
		checksum = computeChecksum(cfg.JunkCities, cfg.JunkStreets, cfg.KnownCities, cfg.KnownStreets, addresses)
	}

	fixTypos := func(a address.Address) address.Address {
		a.City = repairCity.Fix(a.City)
		a.StName = repairSt.Fix(a.StName)
		a.BatchChecksum = checksum
		return a
	}
	for i, a := range addresses {
		addresses[i] = fixTypos(a)
	}

	factory := newFillInFactory(addresses)

	h := &Hammer{
		parser:        parser.NewParser(keys(cityBag), logger),
		repairCity:    repairCity,
		repairSt:      repairSt,
		batchChecksum: checksum,
		logger:        logger,
		factory:       factory,
		addresses:     make(map[string]address.Address),
		parseFailures: parseFailures,
		ambiguous:     factory.ambiguousGroups,
	}
	for _, a := range addresses {
		for _, out := range factory.fillIn(a) {
			h.addresses[out.Key()] = out
		}
	}
	return h, nil
}

// BatchChecksum returns the MD5 digest stamped into every Address this
// Hammer produces, or "" if checksums were disabled at construction.
func (h *Hammer) BatchChecksum() string { return h.batchChecksum }

// ParseFailures returns every input discarded during construction, paired
// with the reason it was discarded.
func (h *Hammer) ParseFailures() []ParseFailure {
	out := make([]ParseFailure, len(h.parseFailures))
	copy(out, h.parseFailures)
	return out
}

// AmbiguousGroups returns the groups of addresses sharing a hard key but
// disagreeing on some soft field, which fill-in could not resolve
// automatically — candidates for manual review.
func (h *Hammer) AmbiguousGroups() [][]address.Address {
	out := make([][]address.Address, len(h.ambiguous))
	copy(out, h.ambiguous)
	return out
}

// Len returns the number of distinct canonical addresses in the batch.
func (h *Hammer) Len() int { return len(h.addresses) }

// AsList returns every canonical address in the batch, order unspecified.
func (h *Hammer) AsList() []address.Address {
	out := make([]address.Address, 0, len(h.addresses))
	for _, a := range h.addresses {
		out = append(out, a)
	}
	return out
}

// Get maps a raw string or an already-canonical Address to the single
// canonical Address it resolves to. If the lookup resolves to more than one
// unit (the input's unit was ambiguous within the building), Get strips the
// unit and returns the first match, logging a warning — mirroring the
// original's warn-and-pick behavior (callers that care should use GetAll).
func (h *Hammer) Get(a interface{}) (address.Address, error) {
	adds, err := h.GetAll(a)
	if err != nil {
		return address.Address{}, err
	}
	if len(adds) == 1 {
		return adds[0], nil
	}
	h.logger.Warn("hammer: address linked to more than one unit in the building; stripping unit",
		zap.String("orig", adds[0].Orig))
	return adds[0].WithUnit(""), nil
}

// GetAll maps a raw string or Address to every canonical Address it resolves
// to (more than one when the input's unit is ambiguous and candidate units
// in the batch can't be disambiguated further).
func (h *Hammer) GetAll(a interface{}) ([]address.Address, error) {
	var addr address.Address
	switch v := a.(type) {
	case address.Address:
		if err := checkChecksum(h.batchChecksum, v.BatchChecksum); err != nil {
			return nil, err
		}
		addr = v
	case string:
		raw, err := h.parser.Parse(v)
		if err != nil {
			return nil, err
		}
		addr = raw.ToCanonical()
	default:
		return nil, fmt.Errorf("hammer: Get expects a string or address.Address, got %T", a)
	}
	addr.City = h.repairCity.Fix(addr.City)
	addr.StName = h.repairSt.Fix(addr.StName)

	adds := h.factory.fillIn(addr)
	if len(adds) == 0 {
		return nil, &ErrKeyNotFound{Orig: addr.Orig}
	}
	return adds, nil
}

// Map returns a new Hammer whose batch is f applied to every address in
// this one, sharing this Hammer's checksum, parse failures, parser and
// fill-in tables. Used for bulk post-processing (e.g. re-titleizing) without
// reparsing the batch.
func (h *Hammer) Map(f func(address.Address) address.Address) *Hammer {
	out := &Hammer{
		parser:        h.parser,
		repairCity:    h.repairCity,
		repairSt:      h.repairSt,
		batchChecksum: h.batchChecksum,
		logger:        h.logger,
		factory:       h.factory,
		parseFailures: h.parseFailures,
		ambiguous:     h.ambiguous,
		addresses:     make(map[string]address.Address, len(h.addresses)),
	}
	for _, a := range h.addresses {
		b := f(a)
		out.addresses[b.Key()] = b
	}
	return out
}

// MergeDuplicates deduplicates a standalone slice of addresses by the same
// fill-in/hard-key logic a Hammer uses internally, without constructing a
// full Hammer (no typo repair, no checksum). Useful for one-off dedup passes
// over records that are already known-clean.
func MergeDuplicates(addresses []address.Address) []address.Address {
	factory := newFillInFactory(addresses)
	seen := make(map[string]address.Address)
	for _, a := range addresses {
		for _, out := range factory.fillIn(a) {
			seen[out.Key()] = out
		}
	}
	out := make([]address.Address, 0, len(seen))
	for _, a := range seen {
		out = append(out, a)
	}
	return out
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func mapField(addresses []address.Address, f func(address.Address) string) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = f(a)
	}
	return out
}

func bagFrom(ss []string) map[string]int {
	m := make(map[string]int, len(ss))
	for _, s := range ss {
		m[s]++
	}
	return m
}

// frequentWords returns the bag's keys whose frequency exceeds cutoff, per
// spec.md 4.4's vocabulary rule.
func frequentWords(bag map[string]int, cutoff float64) []string {
	var out []string
	for w, n := range bag {
		if cutoff < float64(n) {
			out = append(out, w)
		}
	}
	return out
}

// computeChecksum reproduces address_hammer's batch_checksum exactly: an
// MD5 digest over the junk/known lists (concatenated with no separators, in
// this order) followed by every address's hard then non-empty soft
// components, addresses visited in Less order for determinism.
func computeChecksum(junkCities, junkStreets, knownCities, knownStreets []string, addresses []address.Address) string {
	m := md5.New()
	for _, group := range [][]string{junkCities, junkStreets, knownCities, knownStreets} {
		for _, s := range group {
			m.Write([]byte(s))
		}
	}
	sorted := make([]address.Address, len(addresses))
	copy(sorted, addresses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	for _, a := range sorted {
		for _, s := range a.HardComponents() {
			m.Write([]byte(s))
		}
		for _, s := range a.SoftComponents() {
			if s != "" {
				m.Write([]byte(s))
			}
		}
	}
	return hex.EncodeToString(m.Sum(nil))
}
