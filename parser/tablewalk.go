package parser

import (
	"regexp"

	"github.com/lambdalogan/addresshammer/matcher"
)

// maxPhraseWords bounds how far the table-driven stages look ahead for a
// multi-word phrase ("SOUTH DAKOTA", "COUNTY ROAD"). Nothing in the fixed
// tables needs more than three words.
const maxPhraseWords = 3

// ConsumeTable advances the cursor past the longest phrase table.Match
// recognizes starting at the cursor, emitting one ParseStep carrying the
// table's canonical label (not the literal matched text) as its value —
// so a synonym like "SOUTH DAKOTA" or "APARTMENT" canonicalizes to "SD" or
// "APT" the moment it's recognized, rather than leaking the spelled-out
// form downstream.
func ConsumeTable(table *matcher.Table, label string, mandatory bool, swallow Swallow) Op {
	return func(r Result) (Result, error) {
		window := r.Cursor.PeekUpTo(maxPhraseWords)
		if len(window) == 0 {
			return failTable(r, r.Cursor.OrigString(), label, mandatory, swallow)
		}
		lbl, length, ok := table.Match(window)
		if !ok {
			tok := window[0]
			return failTable(r, tok, label, mandatory, swallow)
		}
		newCursor, err := r.Cursor.Advance(length)
		if err != nil {
			return r, err
		}
		return withStep(r, newCursor, ParseStep{Label: label, Value: lbl}), nil
	}
}

func failTable(r Result, orig, label string, mandatory bool, swallow Swallow) (Result, error) {
	if !mandatory {
		return r, nil
	}
	err := &ParseError{Orig: orig, Reason: label}
	if swallow(err) {
		return r, nil
	}
	return r, err
}

// RepeatTable applies ConsumeTable(table, label, true, swallow) repeatedly
// until it stops advancing the cursor, mirroring TakeWhile's contract but
// for table-driven (possibly multi-word) matches.
func RepeatTable(table *matcher.Table, label string, swallow Swallow) Op {
	step := ConsumeTable(table, label, true, swallow)
	return func(r Result) (Result, error) {
		cur := r
		for {
			if cur.Cursor.Empty() {
				break
			}
			beforeLen := cur.Cursor.Len()
			next, err := step(cur)
			if err != nil {
				return cur, err
			}
			if next.Cursor.Len() == beforeLen {
				break
			}
			cur = next
		}
		return cur, nil
	}
}

var stNameWordRe = regexp.MustCompile(`^\w+$`)

// stNameSuffixOverride lets handleManySuffix redirect a specific upcoming
// suffix token into st_name instead of letting it stop the stage; returning
// handled=false falls through to the normal stop-table check.
type stNameSuffixOverride func(tok string) (consume bool, handled bool)

// stNameOp is the street-name stage: repeatedly consume a bare word token,
// stopping as soon as the upcoming window matches a suffix, directional,
// unit keyword, or known-city phrase (any of which may span more than one
// token, e.g. "NORTH WEST" or a two-word known city) — per spec.md 4.3
// step 3 and 4.2's requirement that the stop check itself go through the
// same multi-word Mealy matcher as everything else.
func stNameOp(stopTables []*matcher.Table, override stNameSuffixOverride) Op {
	return func(r Result) (Result, error) {
		cur := r
		for {
			if cur.Cursor.Empty() {
				break
			}
			tok, _ := cur.Cursor.Item()

			if override != nil {
				if consume, handled := override(tok); handled {
					if !consume {
						break
					}
					cur = withStep(cur, cur.Cursor.Rest(), ParseStep{Label: "st_name", Value: tok})
					continue
				}
			}

			window := cur.Cursor.PeekUpTo(maxPhraseWords)
			stopped := false
			for _, t := range stopTables {
				if _, _, ok := t.Match(window); ok {
					stopped = true
					break
				}
			}
			if stopped {
				break
			}

			if !stNameWordRe.MatchString(tok) {
				return cur, &ParseError{Orig: tok, Reason: "st_name"}
			}
			cur = withStep(cur, cur.Cursor.Rest(), ParseStep{Label: "st_name", Value: tok})
		}
		return cur, nil
	}
}
