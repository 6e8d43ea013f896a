package fuzzy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixTyposRepairsCloseMisspelling(t *testing.T) {
	vocab := []string{"MICHIGAN", "SCALIFORNIA", "OHIO", "ONTARIO", "NUMERIC12"}
	f := NewFixTypos(vocab, 5, nil)
	assert.Equal(t, "MICHIGAN", f.Fix("MMICHYIGAN"))
}

func TestFixTyposLeavesFarMisspellingUnchanged(t *testing.T) {
	vocab := []string{"MICHIGAN", "SCALIFORNIA", "OHIO", "ONTARIO", "NUMERIC12"}
	f := NewFixTypos(vocab, 5, nil)
	assert.Equal(t, "MUICHZIGAAN", f.Fix("MUICHZIGAAN"))
}

// Invariant 9: level 0 is the identity function.
func TestFixTyposLevelZeroIsIdentity(t *testing.T) {
	vocab := []string{"MICHIGAN"}
	f := NewFixTypos(vocab, 0, nil)
	assert.Equal(t, "MMICHYIGAN", f.Fix("MMICHYIGAN"))
}

// Invariant 9: level 10 never introduces a word outside the vocabulary —
// every repair Fix ever returns is either the input unchanged or a vocab word.
func TestFixTyposLevelTenOnlyReturnsVocabOrInput(t *testing.T) {
	vocab := []string{"MICHIGAN", "OHIO", "ONTARIO"}
	inVocab := make(map[string]bool, len(vocab))
	for _, w := range vocab {
		inVocab[w] = true
	}
	f := NewFixTypos(vocab, 10, nil)
	for _, in := range []string{"MMICHYIGAN", "ZZZZZZZZZZ", "OHHIO", "ONTARIOO"} {
		out := f.Fix(in)
		assert.True(t, out == in || inVocab[out], "unexpected repair %q -> %q", in, out)
	}
}

func TestFixTyposRejectsShortCandidate(t *testing.T) {
	f := NewFixTypos([]string{"OHIO"}, 10, nil)
	// fewer than 4 uppercase letters: never touched regardless of similarity.
	assert.Equal(t, "OHI", f.Fix("OHI"))
}

func TestFixTyposPreservesDigitMismatch(t *testing.T) {
	f := NewFixTypos([]string{"NUMERIC12"}, 10, nil)
	assert.Equal(t, "NUMRIC34", f.Fix("NUMRIC34"))
}

func TestFixTyposRecordsDiagnosticTrace(t *testing.T) {
	f := NewFixTypos([]string{"MICHIGAN"}, 5, nil)
	out := f.Fix("MMICHYIGAN")
	assert.Equal(t, "MICHIGAN", out)
	trace := f.LastTrace()
	if assert.NotNil(t, trace) {
		assert.Equal(t, "MICHIGAN", trace.Replacement)
		assert.Greater(t, trace.JaroWinkler, 0.0)
		assert.GreaterOrEqual(t, trace.LevenshteinDist, 0)
	}
}

func TestWeightedJaccardEmptyBagsIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(WeightedJaccard(Bow{}, Bow{})))
}

func TestWeightedJaccardIdenticalBagsIsOne(t *testing.T) {
	bow := Skipgram("HELLO")
	assert.InDelta(t, 1.0, WeightedJaccard(bow, bow), 1e-9)
}

func TestLevelToDecBounds(t *testing.T) {
	assert.InDelta(t, 1.0, levelToDec(0), 1e-9)
	assert.InDelta(t, 0.5, levelToDec(10), 1e-9)
}
