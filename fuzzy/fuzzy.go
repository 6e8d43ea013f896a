// Package fuzzy implements the skip-gram/weighted-Jaccard typo repairer used
// by the canonicalizer to clean up city and street-name spelling before
// records are grouped by hard key, per spec.md 4.4.
package fuzzy

import (
	"math"
	"regexp"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"
)

// Bow is a bag of skip-gram features mapped to accumulated weight.
type Bow map[string]float64

// Skipgram yields every unordered character-pair feature "chr[i]_chr[j]" for
// 0 <= i < j < len(s), each with weight 1, per spec.md 4.4's feature
// extraction rule.
func Skipgram(s string) Bow {
	bow := make(Bow)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		for j := i + 1; j < len(runes); j++ {
			key := string(runes[i]) + "_" + string(runes[j])
			bow[key]++
		}
	}
	return bow
}

// WeightedJaccard computes the weighted Jaccard similarity of two bags of
// features: sum of per-feature minimums over sum of per-feature maximums,
// across the union of keys. Returns NaN if both bags are empty.
func WeightedJaccard(a, b Bow) float64 {
	var n, d float64
	for k, av := range a {
		bv := b[k]
		n += math.Min(av, bv)
		d += math.Max(av, bv)
	}
	for k, bv := range b {
		if _, ok := a[k]; ok {
			continue
		}
		n += math.Min(0, bv)
		d += math.Max(0, bv)
	}
	if d == 0 {
		return math.NaN()
	}
	return n / d
}

// levelToDec maps a 0-10 repair level onto a similarity cutoff in [0.5, 1.0]:
// level 0 (never used here — callers short-circuit at level 0) would be 1.0,
// level 10 is 0.5, linear in between.
func levelToDec(level float64) float64 {
	const lo, hi = 0.5, 1.0
	step := (hi - lo) / 10.0
	return hi - level*step
}

var upperRe = regexp.MustCompile(`[A-Z]`)
var digitsRe = regexp.MustCompile(`\d+`)

// RepairTrace records the diagnostic Levenshtein/Jaro-Winkler signals for an
// accepted repair. These never participate in the accept/reject decision —
// spec.md 4.4's weighted-Jaccard cutoff is the sole criterion — they are
// attached purely for observability.
type RepairTrace struct {
	Input           string
	Replacement     string
	JaccardSim      float64
	LevenshteinDist int
	JaroWinkler     float64
}

// FixTypos is a callable typo repairer built from a fixed vocabulary. Its
// repair level (0-10, given to NewFixTypos) sets cutoff via levelToDec: 0
// makes Fix the identity function, 10 is maximally permissive. Construct
// with NewFixTypos; the zero value is not usable.
type FixTypos struct {
	cutoff   float64
	disabled bool
	bowOf    map[string]Bow
	withTri  map[string]map[string]bool
	logger   *zap.Logger

	lastTrace *RepairTrace
}

// NewFixTypos builds a repairer over the given vocabulary words (already
// expected to be uppercase; FixTypos does not case-fold its vocabulary).
// logger may be nil.
func NewFixTypos(words []string, level float64, logger *zap.Logger) *FixTypos {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &FixTypos{logger: logger}
	if level <= 0 {
		f.disabled = true
		return f
	}
	f.cutoff = levelToDec(level)
	f.bowOf = make(map[string]Bow, len(words)+1)
	f.withTri = make(map[string]map[string]bool)

	add := func(w string) {
		if _, seen := f.bowOf[w]; seen {
			return
		}
		bow := Skipgram(w)
		f.bowOf[w] = bow
		for tri := range bow {
			set, ok := f.withTri[tri]
			if !ok {
				set = make(map[string]bool)
				f.withTri[tri] = set
			}
			set[w] = true
		}
	}
	for _, w := range words {
		add(w)
	}
	// a dummy vocabulary entry covering the full alphabet plus space, as the
	// original seeds its word-feature index with, so short or unusual
	// vocabularies still have *some* skip-gram coverage to compare against.
	add("QWERTYUIOPASDFGHJKLZXCVBNM ")
	return f
}

// shouldMaybeFix rejects candidates with fewer than 4 uppercase letters or
// candidates already present verbatim in the vocabulary.
func (f *FixTypos) shouldMaybeFix(s string) bool {
	if len(upperRe.FindAllString(s, -1)) < 4 {
		return false
	}
	_, known := f.bowOf[s]
	return !known
}

// Fix repairs a single token against the configured vocabulary, returning it
// unchanged if no candidate clears the cutoff or no candidate exists at all.
func (f *FixTypos) Fix(s string) string {
	if f.disabled {
		return s
	}
	f.lastTrace = nil
	if !f.shouldMaybeFix(s) {
		return s
	}

	sBow := Skipgram(s)
	sDigits := digitsRe.FindAllString(s, -1)

	candidates := make(map[string]bool)
	for tri := range sBow {
		for w := range f.withTri[tri] {
			candidates[w] = true
		}
	}

	bestWord := ""
	bestSim := math.Inf(-1)
	for w := range candidates {
		if w == s {
			continue
		}
		if !sameDigits(sDigits, digitsRe.FindAllString(w, -1)) {
			continue
		}
		sim := WeightedJaccard(f.bowOf[w], sBow)
		if sim > bestSim {
			bestSim = sim
			bestWord = w
		}
	}
	if bestWord == "" {
		return s
	}

	similarity := math.Sqrt(bestSim)
	if similarity <= f.cutoff {
		return s
	}

	f.lastTrace = &RepairTrace{
		Input:           s,
		Replacement:     bestWord,
		JaccardSim:      bestSim,
		LevenshteinDist: levenshtein.ComputeDistance(s, bestWord),
		JaroWinkler:     smetrics.JaroWinkler(s, bestWord, 0.7, 4),
	}
	f.logger.Debug("fuzzy: repaired token",
		zap.String("input", s), zap.String("replacement", bestWord),
		zap.Float64("similarity", similarity))
	return bestWord
}

// LastTrace returns the diagnostic trace for the most recent Fix call that
// actually accepted a repair, or nil if the last call made no change.
func (f *FixTypos) LastTrace() *RepairTrace {
	return f.lastTrace
}

func sameDigits(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
