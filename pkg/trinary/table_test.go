package trinary

import (
	"errors"
	"testing"
)

func TestBuildLookupTableDigitReversal(t *testing.T) {
	// Digits read least-significant first govern the canonical
	// neighborhoods in order: digit "rule mod 3" is (0,0), the
	// most-significant digit is (2,2).
	table, err := BuildLookupTable("012012012")
	if err != nil {
		t.Fatalf("BuildLookupTable: %v", err)
	}
	want := []State{2, 1, 0, 2, 1, 0, 2, 1, 0}
	for k, nb := range Neighborhoods() {
		if got := table.Output(nb); got != want[k] {
			t.Fatalf("neighborhood (%d,%d) -> %d, want %d", nb.Left, nb.Self, got, want[k])
		}
	}
}

func TestBuildLookupTableLeastSignificantGovernsFirst(t *testing.T) {
	// Rule 1 has trinary "000000001": only (0,0) maps to 1.
	digits, err := ToTrinary(1)
	if err != nil {
		t.Fatalf("ToTrinary: %v", err)
	}
	table, err := BuildLookupTable(digits)
	if err != nil {
		t.Fatalf("BuildLookupTable: %v", err)
	}
	for _, nb := range Neighborhoods() {
		want := State(0)
		if nb.Left == 0 && nb.Self == 0 {
			want = 1
		}
		if got := table.Output(nb); got != want {
			t.Fatalf("rule 1: neighborhood (%d,%d) -> %d, want %d", nb.Left, nb.Self, got, want)
		}
	}
}

func TestBuildLookupTableDeterministic(t *testing.T) {
	for _, rule := range []int{0, 7, 1110, 9841, MaxRuleNumber} {
		digits, err := ToTrinary(rule)
		if err != nil {
			t.Fatalf("ToTrinary(%d): %v", rule, err)
		}
		a, err := BuildLookupTable(digits)
		if err != nil {
			t.Fatalf("BuildLookupTable(%d): %v", rule, err)
		}
		b, err := BuildLookupTable(digits)
		if err != nil {
			t.Fatalf("BuildLookupTable(%d) repeat: %v", rule, err)
		}
		for _, nb := range Neighborhoods() {
			if a.Output(nb) != b.Output(nb) {
				t.Fatalf("rule %d: repeated builds disagree on (%d,%d)", rule, nb.Left, nb.Self)
			}
		}
	}
}

func TestBuildLookupTableRejectsMalformedDigits(t *testing.T) {
	for _, digits := range []string{"", "0120", "0120120120", "012012013", "01201201x"} {
		if _, err := BuildLookupTable(digits); !errors.Is(err, ErrMalformedDigits) {
			t.Fatalf("BuildLookupTable(%q) err = %v, want ErrMalformedDigits", digits, err)
		}
	}
}

func TestNeighborhoodsCanonicalOrder(t *testing.T) {
	want := []Neighborhood{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	got := Neighborhoods()
	if len(got) != len(want) {
		t.Fatalf("Neighborhoods() yields %d entries, want %d", len(got), len(want))
	}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("neighborhood %d = (%d,%d), want (%d,%d)", k, got[k].Left, got[k].Self, want[k].Left, want[k].Self)
		}
	}
}
