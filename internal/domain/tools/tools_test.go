package tools

import (
	"errors"
	"math"
	"testing"
)

func TestCallMathTools(t *testing.T) {
	cases := []struct {
		name string
		args string
		want float64
	}{
		{"math.add", "18, 50", 68},
		{"math.subtract", "10, 4", 6},
		{"math.multiply", "6, 7", 42},
		{"math.divide", "10, 4", 2.5},
		{"math.power", "2, 10", 1024},
		{"math.square_root", "34", math.Sqrt(34)},
		{"math.average", "[18, 50]", 34},
		{"math.average", "18, 50", 34},
		{"math.median", "[1, 3, 2]", 2},
		{"math.median", "[1, 2, 3, 4]", 2.5},
		{"math.maximum", "[3, 9, 1]", 9},
		{"math.minimum", "[3, 9, 1]", 1},
	}
	for _, tc := range cases {
		got, err := Call(tc.name, tc.args)
		if err != nil {
			t.Fatalf("%s(%s): unexpected error %v", tc.name, tc.args, err)
		}
		if got.(float64) != tc.want {
			t.Fatalf("%s(%s) = %v, want %v", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestCallStringTools(t *testing.T) {
	cases := []struct {
		name string
		args string
		want any
	}{
		{"string.count_vowels", `"Multimodality"`, 5},
		{"string.count_consonants", `"machine"`, 4},
		{"string.count_letters", `"hello, world!"`, 10},
		{"string.count_words", `"one two three"`, 3},
		{"string.count_sentences", `"First. Second! Third?"`, 3},
		{"string.count_characters", `"abc"`, 3},
		{"string.reverse_string", `"abc"`, "cba"},
		{"string.is_palindrome", `"Never odd or even"`, true},
	}
	for _, tc := range cases {
		got, err := Call(tc.name, tc.args)
		if err != nil {
			t.Fatalf("%s(%s): unexpected error %v", tc.name, tc.args, err)
		}
		if got != tc.want {
			t.Fatalf("%s(%s) = %v, want %v", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestCallUnknownTool(t *testing.T) {
	for _, name := range []string{"math.cosine", "string.shout", "image.resize"} {
		if _, err := Call(name, "1"); !errors.Is(err, ErrUnknownTool) {
			t.Fatalf("%s: expected ErrUnknownTool, got %v", name, err)
		}
	}
}

func TestCallInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		args string
	}{
		{"math.add", "1"},
		{"math.add", "one, two"},
		{"math.divide", "1, 0"},
		{"math.square_root", "-4"},
		{"math.average", ""},
		{"math.average", "[1, 2"},
	}
	for _, tc := range cases {
		if _, err := Call(tc.name, tc.args); !errors.Is(err, ErrInvalidArguments) {
			t.Fatalf("%s(%s): expected ErrInvalidArguments, got %v", tc.name, tc.args, err)
		}
	}
}

func TestNamesAreNamespaced(t *testing.T) {
	names := Names()
	if len(names) != len(mathTools)+len(stringTools) {
		t.Fatalf("expected %d names, got %d", len(mathTools)+len(stringTools), len(names))
	}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate tool name %s", name)
		}
		seen[name] = true
	}
	if !seen["math.add"] || !seen["string.count_vowels"] {
		t.Fatalf("expected namespaced names, got %v", names)
	}
}
