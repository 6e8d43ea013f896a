package parser

import "github.com/lambdalogan/addresshammer/cursor"

// ParseStep is one labeled value a recognizer contributed — e.g.
// {Label: "st_suffix", Value: "AVE"}. The pipeline threads a growing
// slice of these alongside the cursor; collectResults
// folds them into a RawAddress at the end.
type ParseStep struct {
	Label string
	Value string
}

// Result is the (cursor, accumulated results) pair every combinator
// operation threads through, per spec.md 4.1.
type Result struct {
	Cursor cursor.Cursor
	Steps  []ParseStep
}

func withStep(r Result, c cursor.Cursor, steps ...ParseStep) Result {
	out := Result{Cursor: c, Steps: make([]ParseStep, len(r.Steps)+len(steps))}
	copy(out.Steps, r.Steps)
	copy(out.Steps[len(r.Steps):], steps)
	return out
}

// Op is a single combinator-engine operation: a pure function of a Result,
// producing a new Result or failing.
type Op func(Result) (Result, error)

// Recognize labels a single token, or reports no match. A mandatory
// recognizer signals "no match" by returning a non-nil *ParseError; an
// optional recognizer signals it by returning (nil, nil).
type Recognize func(token string) ([]ParseStep, error)

// Swallow decides whether an operation should treat an error as "stop, but
// don't fail" versus propagate it to the caller. swallowParseErrors is the
// common case: a repeated stage (take_while) uses a mandatory recognizer and
// relies on its ParseError to signal "no more of these here."
type Swallow func(error) bool

func swallowNone(error) bool { return false }

func swallowParseErrors(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

// ConsumeWith applies f to the current token. If f matches, the step(s) are
// appended and the cursor advances by one; if f reports no match (nil
// steps, nil error) the pair is returned unchanged; if f (or running off
// the end of input) errors and swallow accepts it, the pair is returned
// unchanged; otherwise the error propagates.
func ConsumeWith(f Recognize, swallow Swallow) Op {
	return func(r Result) (Result, error) {
		tok, err := r.Cursor.Item()
		if err != nil {
			if swallow(err) {
				return r, nil
			}
			return r, err
		}
		steps, ferr := f(tok)
		if ferr != nil {
			if swallow(ferr) {
				return r, nil
			}
			return r, ferr
		}
		if len(steps) == 0 {
			return r, nil
		}
		return withStep(r, r.Cursor.Rest(), steps...), nil
	}
}

// TakeWhile repeats ConsumeWith(f) until f stops matching or input is
// exhausted. With single=true it performs at most one step, the "optional
// single recognizer" shape used for pre/post directionals.
func TakeWhile(f Recognize, single bool, swallow Swallow) Op {
	step := ConsumeWith(f, swallow)
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
				// unchanged: f didn't match, stop looping.
				break
			}
			cur = next
			if single {
				break
			}
		}
		return cur, nil
	}
}

// ChompN reads the next n tokens as a list and applies g. If fewer than n
// tokens remain, it fails with the cursor's end-of-input error (callers
// wanting to treat a short remainder as "nothing to chomp" pass a swallow
// that accepts cursor.ErrEndOfInput, e.g. for a trailing unit that's simply
// absent).
func ChompN(n int, g func([]string) ([]ParseStep, error), swallow Swallow) Op {
	return func(r Result) (Result, error) {
		peek, err := r.Cursor.Peek(n)
		if err != nil {
			if swallow(err) {
				return r, nil
			}
			return r, err
		}
		steps, gerr := g(peek)
		if gerr != nil {
			if swallow(gerr) {
				return r, nil
			}
			return r, gerr
		}
		if len(steps) == 0 {
			return r, nil
		}
		newCursor, advErr := r.Cursor.Advance(n)
		if advErr != nil {
			return r, advErr
		}
		return withStep(r, newCursor, steps...), nil
	}
}

// Or tries each recognizer on the current token in order; the first to
// match consumes one token and appends its steps. If every recognizer
// declines (or errors and swallow accepts the error), the pair is returned
// unchanged.
func Or(fs []Recognize, swallow Swallow) Op {
	return func(r Result) (Result, error) {
		tok, err := r.Cursor.Item()
		if err != nil {
			if swallow(err) {
				return r, nil
			}
			return r, err
		}
		for _, f := range fs {
			steps, ferr := f(tok)
			if ferr != nil {
				if swallow(ferr) {
					continue
				}
				return r, ferr
			}
			if len(steps) > 0 {
				return withStep(r, r.Cursor.Rest(), steps...), nil
			}
		}
		return r, nil
	}
}

// Reduce sequences operations, short-circuiting once the cursor is
// exhausted (later mandatory stages then surface as missing-component
// errors in collectResults, not as a hard failure here).
func Reduce(ops []Op) Op {
	return func(r Result) (Result, error) {
		cur := r
		for _, op := range ops {
			if cur.Cursor.Empty() {
				break
			}
			next, err := op(cur)
			if err != nil {
				return cur, err
			}
			cur = next
		}
		return cur, nil
	}
}
