package qm

import "sort"

// Result is the engine's output: the complete set of prime implicants
// covering the ON-set (§1 Non-goals: no cover selection is performed).
type Result struct {
	Bits  int
	Primes []Term
}

// Minimize runs the full pipeline described by §2 components 1-4 over an
// already-canonicalized, gap-filled row list: build the initial singleton
// term table, then reduce it to prime implicants.
func Minimize(rows []Row) (Result, error) {
	if len(rows) == 0 {
		return Result{}, newError(KindInternalInvariant, "Minimize called with no rows")
	}

	n := len(rows[0].Bits)
	terms := make([]Term, 0, len(rows))
	for idx, row := range rows {
		if len(row.Bits) != n {
			return Result{}, newError(KindInternalInvariant, "row %d has %d bits, expected %d", idx, len(row.Bits), n)
		}
		switch row.Output {
		case Out1:
			terms = append(terms, NewTerm(idx, bitsToPattern(row.Bits), FlagOn))
		case OutX:
			terms = append(terms, NewTerm(idx, bitsToPattern(row.Bits), FlagDC))
		case Out0:
			// not a minterm of the ON∪DC set; excluded from the term table.
		default:
			return Result{}, newError(KindInternalInvariant, "row %d has unrecognized output value", idx)
		}
	}

	if len(terms) == 0 {
		return Result{Bits: n}, nil
	}

	primes := FindPrimeImplicants(terms)
	primes = dedupByPattern(primes)
	sortTerms(primes)

	return Result{Bits: n, Primes: primes}, nil
}

func bitsToPattern(bits []int) Pattern {
	p := make(Pattern, len(bits))
	for i, b := range bits {
		if b == 1 {
			p[i] = Bit1
		} else {
			p[i] = Bit0
		}
	}
	return p
}

// sortTerms orders primes deterministically by pattern so that callers
// see a stable ordering regardless of emission order (§4.3 "Ordering &
// tie-breaks": the set of primes is independent of iteration order, but a
// stable presentation order is still useful to callers/tests).
func sortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Pattern.key() < terms[j].Pattern.key()
	})
}
