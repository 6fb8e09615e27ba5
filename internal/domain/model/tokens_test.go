package model

import "testing"

func TestEstimateTokens(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"abcd", 1},
		{"exactly sixteen.", 4},
	}
	for _, tc := range cases {
		if got := EstimateTokens(tc.text); got != tc.want {
			t.Fatalf("EstimateTokens(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEstimateUsage(t *testing.T) {
	usage := EstimateUsage("12345678", "1234")
	if usage.Prompt != 2 || usage.Completion != 1 || usage.Total != 3 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}
