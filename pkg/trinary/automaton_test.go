package trinary

import (
	"errors"
	"slices"
	"testing"
)

func TestNewInstallsDefaultRule(t *testing.T) {
	a := New()
	if a.Rule() != DefaultRule {
		t.Fatalf("Rule() = %d, want %d", a.Rule(), DefaultRule)
	}
	if a.Digits() != "000000000" {
		t.Fatalf("Digits() = %q, want nine zeros", a.Digits())
	}
	if a.Table() == nil {
		t.Fatal("Table() must be built on construction")
	}
}

func TestNewWithRule(t *testing.T) {
	a, err := NewWithRule(9841)
	if err != nil {
		t.Fatalf("NewWithRule: %v", err)
	}
	if a.Rule() != 9841 || a.Digits() != "111111111" {
		t.Fatalf("got rule %d digits %q", a.Rule(), a.Digits())
	}

	if _, err := NewWithRule(MaxRuleNumber + 1); !errors.Is(err, ErrInvalidRuleNumber) {
		t.Fatalf("NewWithRule(19683) err = %v, want ErrInvalidRuleNumber", err)
	}
}

func TestSetRuleAtomicOnFailure(t *testing.T) {
	a, err := NewWithRule(1110)
	if err != nil {
		t.Fatalf("NewWithRule: %v", err)
	}
	digits := a.Digits()
	table := a.Table()

	if err := a.SetRule(-1); !errors.Is(err, ErrInvalidRuleNumber) {
		t.Fatalf("SetRule(-1) err = %v, want ErrInvalidRuleNumber", err)
	}
	if a.Rule() != 1110 || a.Digits() != digits || a.Table() != table {
		t.Fatal("failed SetRule must leave prior state untouched")
	}

	if err := a.SetRule(42); err != nil {
		t.Fatalf("SetRule(42): %v", err)
	}
	if a.Rule() != 42 || a.Table() == table {
		t.Fatal("successful SetRule must rebuild derived state")
	}
}

func TestRunMatchesDirectEvolve(t *testing.T) {
	a, err := NewWithRule(7070)
	if err != nil {
		t.Fatalf("NewWithRule: %v", err)
	}
	initial := Configuration{2, 1, 0, 1, 2}

	viaFacade, err := a.Run(initial, 6)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	direct, err := a.Table().Evolve(initial, 6)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	for step := range viaFacade {
		if !slices.Equal(viaFacade[step], direct[step]) {
			t.Fatalf("facade and engine disagree at step %d", step)
		}
	}
}

func TestParseConfiguration(t *testing.T) {
	cfg, err := ParseConfiguration("0120")
	if err != nil {
		t.Fatalf("ParseConfiguration: %v", err)
	}
	if !slices.Equal(cfg, Configuration{0, 1, 2, 0}) {
		t.Fatalf("ParseConfiguration(\"0120\") = %v", cfg)
	}
	if cfg.String() != "0120" {
		t.Fatalf("String() = %q, want round trip", cfg.String())
	}

	if _, err := ParseConfiguration("0130"); !errors.Is(err, ErrInvalidCellState) {
		t.Fatalf("ParseConfiguration(\"0130\") err = %v, want ErrInvalidCellState", err)
	}
}

func TestSingleSeed(t *testing.T) {
	cfg, err := SingleSeed(5)
	if err != nil {
		t.Fatalf("SingleSeed: %v", err)
	}
	if !slices.Equal(cfg, Configuration{0, 0, 1, 0, 0}) {
		t.Fatalf("SingleSeed(5) = %v", cfg)
	}
	if _, err := SingleSeed(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("SingleSeed(0) err = %v, want ErrInvalidLength", err)
	}
}
