// Package ilist defines the two-level value model the evaluator works with:
// a dictionary entry flows through a chain of operations as an IList (an
// ordered list of strings), and each individual operation invocation
// produces a Result that is either N/A or a (possibly empty) IList.
//
// The N/A-vs-empty-ilist distinction matters to the combinators in
// ops/combinators: a Filter leaf rejects by returning N/A, while an
// Extractor that legitimately finds nothing returns an empty, non-N/A
// IList. Both drop their element from a chain's output, but
// ilist_if_all/ilist_if_any treat the two differently when the sentinel
// clauses ("N/A = False", "[] = False") are present.
package ilist

// IList is an ordered list of dictionary-entry strings. A nil IList and an
// IList{} are equivalent and both considered "empty, not N/A".
type IList []string

// Result is the outcome of applying one operation to one string: either
// N/A, or a list of zero or more strings.
type Result struct {
	na   bool
	list IList
}

// NA is the sentinel "not applicable" result: the operation could not be
// meaningfully evaluated for this input (e.g. a Transformer with nothing to
// transform, or a Filter's reject path when rejects are represented as N/A
// rather than as an empty list per §4.3's table).
var NA = Result{na: true}

// Of wraps an existing IList as a Result.
func Of(l IList) Result { return Result{list: l} }

// One wraps a single string as a one-element Result.
func One(s string) Result { return Result{list: IList{s}} }

// Empty is the empty, non-N/A Result.
func Empty() Result { return Result{list: IList{}} }

// IsNA reports whether r is the N/A sentinel.
func (r Result) IsNA() bool { return r.na }

// List returns r's list. Calling it on an N/A result returns nil; callers
// that need to distinguish the two must check IsNA first.
func (r Result) List() IList {
	if r.na {
		return nil
	}
	return r.list
}

// Len reports the number of elements in r's list, or 0 for N/A.
func (r Result) Len() int { return len(r.List()) }

// MapElements applies fn to every element of in, in order, concatenating
// the lists of the non-N/A results. This is the element-wise "next
// operation consumes the ilist" step of the two-level pipeline: fn's N/A
// results drop their input element entirely, fn's empty results drop it
// just as silently but are visible to MapElementsKeepingNA for callers
// that care about the distinction. The empty string is never a member of
// an ilist passed downstream (spec §3/§4.5): it is filtered out here, in
// situ, rather than left for a later stage to catch.
func MapElements(in IList, fn func(string) Result) IList {
	out := make(IList, 0, len(in))
	for _, s := range in {
		r := fn(s)
		if r.IsNA() {
			continue
		}
		for _, v := range r.List() {
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// MapElementsKeepingNA applies fn to every element of in and returns the
// per-element results without flattening, for callers (ops.Chain's
// EvalWithNA, used by ilist_if_all/ilist_if_any) that must inspect each element's own
// N/A-vs-empty-vs-nonempty outcome rather than just the concatenation.
func MapElementsKeepingNA(in IList, fn func(string) Result) []Result {
	out := make([]Result, len(in))
	for i, s := range in {
		out[i] = fn(s)
	}
	return out
}

// Dedup returns a copy of l with duplicate elements removed, keeping the
// first occurrence of each distinct string.
func Dedup(l IList) IList {
	seen := make(map[string]bool, len(l))
	out := make(IList, 0, len(l))
	for _, s := range l {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Longest returns the longest element of l by rune count, or ("", false)
// if l is empty. Ties keep the first-seen longest element.
func Longest(l IList) (string, bool) {
	if len(l) == 0 {
		return "", false
	}
	best := l[0]
	bestLen := len([]rune(best))
	for _, s := range l[1:] {
		n := len([]rune(s))
		if n > bestLen {
			best, bestLen = s, n
		}
	}
	return best, true
}
