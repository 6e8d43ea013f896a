// Package cursor implements an immutable positional view over a token
// sequence, the substrate the parser's combinator engine runs on.
package cursor

import (
	"errors"
	"strings"
)

// ErrEndOfInput is returned whenever an operation needs a token that isn't
// there. It carries the original input so callers can build a useful
// diagnostic without threading the string through every call site.
type ErrEndOfInput struct {
	Orig string
}

func (e *ErrEndOfInput) Error() string {
	if e.Orig == "" {
		return "cursor: reached end of input"
	}
	return "cursor: '" + e.Orig + "' reached end of input"
}

// Is lets errors.Is(err, ErrEndOfInput) match any instance, mirroring the
// sentinel-style checks used around the rest of the codebase.
func (e *ErrEndOfInput) Is(target error) bool {
	_, ok := target.(*ErrEndOfInput)
	return ok
}

func endOfInput(orig string) error { return &ErrEndOfInput{Orig: orig} }

// Cursor is an immutable index into a shared token slice. Advancing never
// mutates the receiver; it returns a new Cursor pointing further along the
// same backing array, so earlier cursors remain valid for backtracking.
type Cursor struct {
	data []string
	pos  int
}

// New builds a cursor positioned at the start of data. The slice is not
// copied; callers must not mutate it afterward.
func New(data []string) Cursor {
	return Cursor{data: data, pos: 0}
}

// FromString tokenizes s on whitespace after folding to uppercase, the same
// convention GenericInput.from_str used.
func FromString(s string) Cursor {
	return New(strings.Fields(strings.ToUpper(s)))
}

// Empty reports whether the cursor has no current item.
func (c Cursor) Empty() bool {
	return c.pos >= len(c.data)
}

// Len returns the number of tokens remaining from the cursor's position.
func (c Cursor) Len() int {
	if c.Empty() {
		return 0
	}
	return len(c.data) - c.pos
}

// Item returns the token at the cursor's current position.
func (c Cursor) Item() (string, error) {
	if c.Empty() {
		return "", endOfInput(c.OrigString())
	}
	return c.data[c.pos], nil
}

// Rest returns a cursor advanced by one token.
func (c Cursor) Rest() Cursor {
	return Cursor{data: c.data, pos: c.pos + 1}
}

// Advance returns a cursor moved forward by step tokens. Advancing past the
// end of input (not merely to it) fails.
func (c Cursor) Advance(step int) (Cursor, error) {
	newPos := c.pos + step
	if newPos > len(c.data) {
		return Cursor{}, endOfInput(c.OrigString())
	}
	return Cursor{data: c.data, pos: newPos}, nil
}

// View returns the current item and the cursor advanced past it.
func (c Cursor) View() (string, Cursor, error) {
	item, err := c.Item()
	if err != nil {
		return "", c, err
	}
	return item, c.Rest(), nil
}

// Peek returns exactly n tokens starting at the cursor without advancing.
// It fails if fewer than n tokens remain.
func (c Cursor) Peek(n int) ([]string, error) {
	if c.pos+n > len(c.data) {
		return nil, endOfInput(c.OrigString())
	}
	out := make([]string, n)
	copy(out, c.data[c.pos:c.pos+n])
	return out, nil
}

// PeekUpTo returns up to n tokens starting at the cursor without advancing
// and without failing when fewer than n remain — callers that want a
// lookahead window for phrase matching, tolerating a short tail at the end
// of input, use this instead of Peek.
func (c Cursor) PeekUpTo(n int) []string {
	end := c.pos + n
	if end > len(c.data) {
		end = len(c.data)
	}
	if c.pos >= end {
		return nil
	}
	out := make([]string, end-c.pos)
	copy(out, c.data[c.pos:end])
	return out
}

// OrigString renders the full original token sequence, independent of the
// cursor's current position, for diagnostics.
func (c Cursor) OrigString() string {
	return strings.Join(c.data, " ")
}

// RestString renders the remaining (unconsumed) tokens.
func (c Cursor) RestString() string {
	if c.Empty() {
		return ""
	}
	return strings.Join(c.data[c.pos:], " ")
}

// AsSlice returns the remaining tokens as a plain slice.
func (c Cursor) AsSlice() []string {
	if c.Empty() {
		return nil
	}
	out := make([]string, len(c.data)-c.pos)
	copy(out, c.data[c.pos:])
	return out
}

// Step pairs an item with the cursor positioned just after it, the unit
// as_steps() yields.
type Step struct {
	Item string
	Rest Cursor
}

// Steps walks the cursor to exhaustion, eagerly, since Go has no generator
// sugar worth reaching for here over a bounded token list.
func (c Cursor) Steps() []Step {
	var out []Step
	cur := c
	for !cur.Empty() {
		item, rest, err := cur.View()
		if err != nil {
			break
		}
		out = append(out, Step{Item: item, Rest: rest})
		cur = rest
	}
	return out
}

// IsEndOfInput reports whether err is (or wraps) an end-of-input condition.
func IsEndOfInput(err error) bool {
	return errors.Is(err, &ErrEndOfInput{})
}
