// Package combinators implements the MetaOperation combinators of
// spec.md §4.7: or, ilist_if_all, ilist_if_any, ilist_foreach,
// ilist_concat, ilist_unique/iset_unique, ilist_max/iset_max, ilist_ratio,
// restart, and the select_longest family. Each registers itself into
// ops' global registry via init(), the same plugin-by-import pattern
// ops/leaves uses.
package combinators

// sentinelPasses resolves one of ilist_if_all/ilist_if_any's "N/A = ..."
// or "[] = ..." clauses: whether an element whose own sub-chain produced
// N/A (or, for the other clause, legitimately nothing) should count as
// satisfying the predicate. Absent a clause, it does not.
func sentinelPasses(set, isFalse bool) bool {
	if !set {
		return false
	}
	return !isFalse
}
