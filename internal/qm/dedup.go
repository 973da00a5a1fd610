package qm

// dedupByPattern implements §4.4: duplicate detection compares terms by
// bit-pattern identity only — Covers and Flag are not part of the
// identity. The first occurrence of each pattern is retained; later
// occurrences are dropped even if their Covers differ. Without this,
// the engine's work grows factorially, since one implicant is typically
// produced by several (k, k+1) bucket pairs.
func dedupByPattern(terms []Term) []Term {
	seen := make(map[string]bool, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		key := t.Pattern.key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
