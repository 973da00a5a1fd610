package qm

// bucketByWeight implements §4.2's Table Indexer: it groups terms by
// Hamming weight into buckets 0..m, where m is the pattern width shared by
// every term.
//
// The source parameterizes this by a "disregarded bit count" d, skipping
// d leading positions that encode combination provenance rather than bit
// values (§4.2 Rationale). Because Term here carries Covers as a separate
// field instead of a positional prefix (§9, "Provenance encoding"), every
// position in Pattern is a real bit position and there is nothing to
// disregard — d is structurally always 0 under this model.
func bucketByWeight(terms []Term) (buckets [][]Term, nonEmpty int) {
	m := 0
	if len(terms) > 0 {
		m = len(terms[0].Pattern)
	}
	buckets = make([][]Term, m+1)
	for _, t := range terms {
		w := t.Pattern.weight()
		buckets[w] = append(buckets[w], t)
	}
	for _, b := range buckets {
		if len(b) > 0 {
			nonEmpty++
		}
	}
	return buckets, nonEmpty
}
