// Package matcher implements the Mealy-style multi-word phrase recognizer
// the parser uses for state names, directionals, unit keywords, highway
// phrases, and city names. A Table is built once from a label -> phrase-list
// mapping (plus optional per-token synonym normalizers) and reused across
// every call to Match — building it is the expensive part, matching is not.
package matcher

import "strings"

// Table is a compiled two-key Mealy table: continuePrefixes records every
// strict prefix of a configured phrase (so the matcher knows whether
// extending the current match is worth attempting), endLabels records full
// phrases and the label they produce.
type Table struct {
	continuePrefixes map[string]bool
	endLabels        map[string]string
	normalizeToken   map[string]string
}

// NewTable returns an empty table ready for AddPhrase/AddSynonym calls.
func NewTable() *Table {
	return &Table{
		continuePrefixes: make(map[string]bool),
		endLabels:        make(map[string]string),
		normalizeToken:   make(map[string]string),
	}
}

// AddPhrase registers a word sequence (already in canonical/normalized
// token form) as yielding label. Every strict prefix becomes a continue
// entry; the full sequence becomes an end entry.
func (t *Table) AddPhrase(label string, words ...string) {
	if len(words) == 0 {
		return
	}
	for i := 1; i < len(words); i++ {
		prefix := strings.Join(words[:i], " ")
		t.continuePrefixes[prefix] = true
	}
	full := strings.Join(words, " ")
	t.endLabels[full] = label
}

// AddSynonym registers that the literal input token form should be treated
// as canonical when building or probing phrase keys. Multiple forms may map
// to the same canonical token; a token not registered here normalizes to
// itself.
func (t *Table) AddSynonym(canonical string, forms ...string) {
	for _, f := range forms {
		t.normalizeToken[f] = canonical
	}
}

func (t *Table) normalize(token string) string {
	if canon, ok := t.normalizeToken[token]; ok {
		return canon
	}
	return token
}

// Match runs the greedy-extend-then-longest-accepting-match algorithm over
// tokens starting at index 0. It returns the recognized label, the number of
// input tokens consumed, and whether any match was found at all. If ok is
// false, len is 0 and the caller must not advance its cursor.
func (t *Table) Match(tokens []string) (label string, length int, ok bool) {
	var prefix []string
	for _, tok := range tokens {
		norm := t.normalize(tok)
		candidate := make([]string, len(prefix)+1)
		copy(candidate, prefix)
		candidate[len(prefix)] = norm
		key := strings.Join(candidate, " ")

		if lbl, has := t.endLabels[key]; has {
			label = lbl
			length = len(candidate)
			ok = true
		}
		if !t.continuePrefixes[key] {
			break
		}
		prefix = candidate
	}
	return label, length, ok
}
