package qm

import (
	"reflect"
	"sort"
	"testing"
)

func patternSet(t *testing.T, result Result) []string {
	t.Helper()
	out := make([]string, len(result.Primes))
	for i, p := range result.Primes {
		out[i] = p.Pattern.String()
	}
	sort.Strings(out)
	return out
}

func mustMinimize(t *testing.T, rows []Row) Result {
	t.Helper()
	r, err := Minimize(rows)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	return r
}

func mustSoP(t *testing.T, on, dc string, bits int) []Row {
	t.Helper()
	rows, _, err := CanonicalizeSoP(on, dc, bits)
	if err != nil {
		t.Fatalf("CanonicalizeSoP: %v", err)
	}
	return rows
}

// Scenario A: n=3, ON={1,3,5,7}, DC=∅ -> unique prime "--1".
func TestScenarioA(t *testing.T) {
	rows := mustSoP(t, "1,3,5,7", "", 3)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"--1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Scenario B: n=4, ON={4,8,10,11,12,15}, DC={9,14}.
func TestScenarioB(t *testing.T) {
	rows := mustSoP(t, "4,8,10,11,12,15", "9,14", 4)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"10--", "1--0", "1-1-", "-100"}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Scenario C: n=2, ON={0}, DC=∅ -> single prime "00".
func TestScenarioC(t *testing.T) {
	rows := mustSoP(t, "0", "", 2)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Scenario D: n=2, ON={0,1,2,3}, DC=∅ -> single prime "--".
func TestScenarioD(t *testing.T) {
	rows := mustSoP(t, "0,1,2,3", "", 2)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"--"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Scenario E: n=4, ON={5}, DC={4,6,7,13}. The spec explicitly declines to
// commit to one expected set here; we assert soundness (P1) and coverage
// (P2) rather than a hard-coded pattern, and separately pin down the
// specific set this implementation commits to (DESIGN.md).
func TestScenarioE(t *testing.T) {
	onSet := map[int]bool{5: true}
	dcSet := map[int]bool{4: true, 6: true, 7: true, 13: true}

	rows := mustSoP(t, "5", "4,6,13,7", 4)
	result := mustMinimize(t, rows)

	assertSound(t, result, onSet, dcSet)
	assertCovers(t, result, onSet)

	got := patternSet(t, result)
	want := []string{"-101", "01--"}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (implementation-committed set for scenario E)", got, want)
	}
}

// Scenario F: truth-table rows [[0,0,1],[0,1,0],[1,0,1],[1,1,1]] -> ON =
// {0,2,3}; primes "-0" and "1-".
func TestScenarioF(t *testing.T) {
	raw := [][]string{
		{"0", "0", "1"},
		{"0", "1", "0"},
		{"1", "0", "1"},
		{"1", "1", "1"},
	}
	rows, n, err := CanonicalizeTruthTable(raw)
	if err != nil {
		t.Fatalf("CanonicalizeTruthTable: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"-0", "1-"}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Boundary: single minterm, no DC.
func TestBoundary_SingleMinterm(t *testing.T) {
	rows := mustSoP(t, "6", "", 3)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"110"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Boundary: all minterms ON.
func TestBoundary_AllOn(t *testing.T) {
	rows := mustSoP(t, "0,1,2,3,4,5,6,7", "", 3)
	result := mustMinimize(t, rows)
	got := patternSet(t, result)
	want := []string{"---"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Boundary: all entries DC -> empty result.
func TestBoundary_AllDontCare(t *testing.T) {
	rows := make([]Row, 4)
	for i := range rows {
		rows[i] = Row{Bits: toBigEndianBits(i, 2), Output: OutX}
	}
	result := mustMinimize(t, rows)
	if len(result.Primes) != 0 {
		t.Errorf("got %v primes, want 0", len(result.Primes))
	}
}

// P6: canonicalizing an already-complete truth table is idempotent.
func TestGapFillIdempotence(t *testing.T) {
	raw := [][]string{
		{"0", "0", "1"},
		{"0", "1", "0"},
		{"1", "0", "1"},
		{"1", "1", "1"},
	}
	once, _, err := CanonicalizeTruthTable(raw)
	if err != nil {
		t.Fatalf("CanonicalizeTruthTable: %v", err)
	}

	reRaw := make([][]string, len(once))
	for i, r := range once {
		cells := make([]string, 0, len(r.Bits)+1)
		for _, b := range r.Bits {
			cells = append(cells, itoa(b))
		}
		cells = append(cells, r.Output.String())
		reRaw[i] = cells
	}
	twice, _, err := CanonicalizeTruthTable(reRaw)
	if err != nil {
		t.Fatalf("CanonicalizeTruthTable (second pass): %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("gap-fill not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	return "1"
}

// --- property helpers (P1, P2) ---

func assertSound(t *testing.T, result Result, onSet, dcSet map[int]bool) {
	t.Helper()
	for _, p := range result.Primes {
		for _, m := range expandPattern(p.Pattern) {
			if !onSet[m] && !dcSet[m] {
				t.Errorf("prime %s expands to minterm %d, which is in neither ON nor DC", p.Pattern, m)
			}
		}
	}
}

func assertCovers(t *testing.T, result Result, onSet map[int]bool) {
	t.Helper()
	covered := make(map[int]bool)
	for _, p := range result.Primes {
		for _, m := range expandPattern(p.Pattern) {
			covered[m] = true
		}
	}
	for m := range onSet {
		if !covered[m] {
			t.Errorf("ON minterm %d is not covered by any returned prime", m)
		}
	}
}

// expandPattern substitutes '-' with both 0 and 1, enumerating every
// minterm index the pattern evaluates true on.
func expandPattern(p Pattern) []int {
	var dcPositions []int
	base := 0
	for i, b := range p {
		base <<= 1
		switch b {
		case Bit1:
			base |= 1
		case BitDC:
			dcPositions = append(dcPositions, len(p)-1-i)
		}
	}
	out := []int{base}
	for _, pos := range dcPositions {
		next := make([]int, 0, len(out)*2)
		for _, v := range out {
			next = append(next, v, v|(1<<pos))
		}
		out = next
	}
	return out
}
