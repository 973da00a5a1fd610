package tablefmt

import (
	"fmt"
	"strings"

	"github.com/adastra1826/Quine-McCluskey-Algorithm-Digital-Logic/internal/qm"
)

// RowsToCells converts canonicalized rows back into the cell-grid shape
// FormatTable/WriteFile expect, letting a caller round-trip a
// canonicalized table out to disk (SPEC_FULL §4: "Truth-table output
// formatting", useful for inspecting what the Canonicalizer produced
// before minimization runs — the P6 gap-fill idempotence property is
// exactly what this round-trip exercises).
func RowsToCells(rows []qm.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, 0, len(r.Bits)+1)
		for _, b := range r.Bits {
			cells = append(cells, fmt.Sprintf("%d", b))
		}
		cells = append(cells, r.Output.String())
		out[i] = cells
	}
	return out
}

// FormatPrimes renders a Result's prime implicants one per line. When
// labels is non-empty it names each bit position (SPEC_FULL §4: "-l/--
// labels propagate to output formatting", the source's --labels flag
// from global_constants.py's OPTIONS string, whose effect spec.md §6
// leaves unspecified), and a position with no supplied label is named by
// its index (x0, x1, ...); when labels is empty only the raw pattern is
// written.
func FormatPrimes(result qm.Result, labels []string) string {
	var sb strings.Builder
	for _, p := range result.Primes {
		sb.WriteString(p.Pattern.String())
		if len(labels) > 0 {
			sb.WriteString("  (")
			sb.WriteString(labeledPattern(p.Pattern, labels))
			sb.WriteString(")")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func labeledPattern(pattern qm.Pattern, labels []string) string {
	parts := make([]string, 0, len(pattern))
	for i, b := range pattern {
		name := fmt.Sprintf("x%d", i)
		if i < len(labels) && labels[i] != "" {
			name = labels[i]
		}
		parts = append(parts, fmt.Sprintf("%s=%s", name, b.String()))
	}
	return strings.Join(parts, " ")
}
