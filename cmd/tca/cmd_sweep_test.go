package main

import (
	"slices"
	"testing"
)

func TestParseRuleList(t *testing.T) {
	cases := []struct {
		spec string
		want []int
	}{
		{"0", []int{0}},
		{"0,1110,9841", []int{0, 1110, 9841}},
		{"5..8", []int{5, 6, 7, 8}},
		{"2, 4..6 ,2", []int{2, 4, 5, 6}},
		{"19682", []int{19682}},
	}
	for _, c := range cases {
		got, err := parseRuleList(c.spec)
		if err != nil {
			t.Fatalf("parseRuleList(%q): %v", c.spec, err)
		}
		if !slices.Equal(got, c.want) {
			t.Fatalf("parseRuleList(%q) = %v, want %v", c.spec, got, c.want)
		}
	}
}

func TestParseRuleListRejectsBadSpecs(t *testing.T) {
	for _, spec := range []string{"", ",", "-1", "19683", "abc", "5..3", "1..19683", "1..x"} {
		if _, err := parseRuleList(spec); err == nil {
			t.Fatalf("parseRuleList(%q) accepted, want error", spec)
		}
	}
}
