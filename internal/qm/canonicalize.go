package qm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CanonicalizeTruthTable implements §4.1's truth-table ingestion contract.
// rawRows is already split into cells (by comma, tab, or run of spaces —
// see internal/tablefmt for the raw-text tokenizer); this function owns
// everything from header/label stripping through gap-fill.
func CanonicalizeTruthTable(rawRows [][]string) ([]Row, int, error) {
	rows := copyCells(rawRows)

	if len(rows) == 0 {
		return nil, 0, newError(KindInputFormat, "input file contains no content")
	}
	if len(rows) == 1 {
		return nil, 0, newError(KindInputFormat, "input file contains only one row; each row must be separated by a new line")
	}

	// Step 3: drop header row if cell (1,1) isn't 0/1/x.
	if !isBitCell(rows[0][0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, 0, newError(KindInputFormat, "input file contains no data rows after removing header")
	}

	// Step 4: drop label column if cell (1,1) is still not 0/1/x.
	if !isBitCell(rows[0][0]) {
		for i := range rows {
			if len(rows[i]) == 0 {
				return nil, 0, newError(KindInputFormat, "row %d is empty", i+1)
			}
			rows[i] = rows[i][1:]
		}
	}

	rowLength := len(rows[0])
	if rowLength < 2 {
		return nil, 0, newError(KindInputFormat, "rows must contain at least one input bit and one output cell")
	}
	n := rowLength - 1
	maxRows := 1 << n

	if len(rows) > maxRows {
		return nil, 0, newError(KindCapacity, "input table contains %d rows; maximum for %d input bits is %d", len(rows), n, maxRows)
	}

	parsed := make([]Row, 0, len(rows))
	for i, cells := range rows {
		if len(cells) != rowLength {
			return nil, 0, newError(KindInputFormat, "row %d has %d cells, expected %d", i+1, len(cells), rowLength)
		}
		bits := make([]int, n)
		for j, cell := range cells[:n] {
			v, ok := parseBitCell(cell)
			if !ok {
				return nil, 0, newError(KindInputFormat, "row %d, cell %d: %q is not 0, 1, or x", i+1, j+1, cell)
			}
			if v == OutX {
				return nil, 0, newError(KindInputFormat, "row %d, cell %d: 'x' may only appear in the final column", i+1, j+1)
			}
			bits[j] = int(v)
		}
		out, ok := parseBitCell(cells[n])
		if !ok {
			return nil, 0, newError(KindInputFormat, "row %d, cell %d: %q is not 0, 1, or x", i+1, rowLength, cells[n])
		}
		parsed = append(parsed, Row{Bits: bits, Output: out})
	}

	sorted := radixPartitionSort(parsed, 0)
	return fillGaps(sorted, n, OutX), n, nil
}

// CanonicalizeSoP implements §4.1's SoP ingestion contract: onSet and,
// optionally, dcSet are strings of minterm indices separated by any
// non-digit, non-hyphen run. bits, if non-zero, fixes n explicitly
// (§9 Open Question 3); otherwise n is inferred from the largest index.
func CanonicalizeSoP(onSetSpec string, dcSetSpec string, bits int) ([]Row, int, error) {
	onSet, err := parseIndexList(onSetSpec)
	if err != nil {
		return nil, 0, wrapError(KindInputFormat, err, "invalid minterm list")
	}
	if len(onSet) == 0 {
		return nil, 0, newError(KindInputFormat, "minterm list must contain at least one index")
	}

	var dcSet []int
	if strings.TrimSpace(dcSetSpec) != "" {
		dcSet, err = parseIndexList(dcSetSpec)
		if err != nil {
			return nil, 0, wrapError(KindInputFormat, err, "invalid don't-care list")
		}
	}

	onLookup := make(map[int]struct{}, len(onSet))
	for _, v := range onSet {
		onLookup[v] = struct{}{}
	}
	for _, v := range dcSet {
		if _, ok := onLookup[v]; ok {
			return nil, 0, newError(KindInputFormat, "index %d specified as both a minterm and a don't-care", v)
		}
	}

	type indexedOutput struct {
		index  int
		output OutputValue
	}
	merged := make([]indexedOutput, 0, len(onSet)+len(dcSet))
	for _, v := range onSet {
		merged = append(merged, indexedOutput{v, Out1})
	}
	for _, v := range dcSet {
		merged = append(merged, indexedOutput{v, OutX})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].index < merged[j].index })

	n := bits
	if n == 0 {
		maxIndex := merged[len(merged)-1].index
		n = bitsForIndex(maxIndex)
	}
	maxRows := 1 << n

	rows := make([]Row, 0, len(merged))
	for _, m := range merged {
		if m.index < 0 {
			return nil, 0, newError(KindInputFormat, "negative minterm index: %d", m.index)
		}
		if m.index >= maxRows {
			return nil, 0, newError(KindCapacity, "minterm index %d exceeds addressable range for %d input bits (max %d)", m.index, n, maxRows-1)
		}
		rows = append(rows, Row{Bits: toBigEndianBits(m.index, n), Output: m.output})
	}

	// Unlike truth-table ingestion, an index absent from both the ON-set
	// and the DC-set in a sum-of-products specification is OFF by the
	// ordinary meaning of SoP notation, not a don't-care: §8's worked
	// scenarios only hold if unlisted indices are excluded from the term
	// table (the original source's parse_sum_of_products_input.py never
	// synthesizes them at all, and the downstream indexer already drops
	// Output-0 rows — see generate_minterm_table_index's `if outputBit in
	// {1, "x"}` guard). §4.1 step 6 reuses the truth-table gap-fill
	// wording ("fill gaps with x rows as above"), but doing so literally
	// would make Scenario A's "--1" result impossible (every index would
	// be ON or DC, and the engine would instead return the single
	// all-"-" implicant). We fill with Output 0 here and document this
	// as a resolved inconsistency (DESIGN.md).
	return fillGaps(rows, n, Out0), n, nil
}

// bitsForIndex implements ceil(log2(maxIndex+1)), the §9.3 inference rule.
func bitsForIndex(maxIndex int) int {
	n := 0
	for (1 << n) <= maxIndex {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

func toBigEndianBits(value, n int) []int {
	bits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		bits[i] = value & 1
		value >>= 1
	}
	return bits
}

func isBitCell(cell string) bool {
	_, ok := parseBitCell(cell)
	return ok
}

func parseBitCell(cell string) (OutputValue, bool) {
	switch strings.TrimSpace(cell) {
	case "0":
		return Out0, true
	case "1":
		return Out1, true
	case "x", "X":
		return OutX, true
	default:
		return 0, false
	}
}

func copyCells(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// parseIndexList splits on any non-digit, non-hyphen run, drops empties,
// deduplicates, sorts ascending, and coerces to int (§4.1 SoP step 1).
func parseIndexList(spec string) ([]int, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '-'
	})

	seen := make(map[int]struct{})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" || f == "-" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative index: %d", v)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// radixPartitionSort sorts rows ascending by the integer value of their n
// bits via successive column partitioning (§4.1.1: "a radix-style
// partition by successive columns works and is the source's choice"),
// grounded on the original source's recursive_binary_partition_sort.
func radixPartitionSort(rows []Row, col int) []Row {
	if len(rows) <= 1 {
		return rows
	}
	if col >= len(rows[0].Bits) {
		return rows
	}

	var zeros, ones []Row
	for _, r := range rows {
		if r.Bits[col] == 0 {
			zeros = append(zeros, r)
		} else {
			ones = append(ones, r)
		}
	}
	zeros = radixPartitionSort(zeros, col+1)
	ones = radixPartitionSort(ones, col+1)
	return append(zeros, ones...)
}

// fillGaps synthesizes rows for any of the 2^n indices absent from
// sortedRows (§4.1 step 8 / SoP step 6), grounded on the original
// source's generate_missing_rows, using fillValue as the synthesized
// output (OutX for truth-table ingestion, Out0 for SoP ingestion; see the
// call site comment in CanonicalizeSoP).
func fillGaps(sortedRows []Row, n int, fillValue OutputValue) []Row {
	maxRows := 1 << n
	out := make([]Row, 0, maxRows)
	next := 0
	for idx := 0; idx < maxRows; idx++ {
		if next < len(sortedRows) && rowIndex(sortedRows[next]) == idx {
			out = append(out, sortedRows[next])
			next++
			continue
		}
		out = append(out, Row{Bits: toBigEndianBits(idx, n), Output: fillValue})
	}
	return out
}

func rowIndex(r Row) int {
	v := 0
	for _, b := range r.Bits {
		v = v<<1 | b
	}
	return v
}
