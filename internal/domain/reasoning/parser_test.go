package reasoning

import (
	"errors"
	"testing"
)

const sampleResponse = `REASONING:
The query asks for the square root of the average of 18 and 50.
First compute the average, then its square root.

TOOL_NEEDED:
math.average to combine the numbers

TOOL_CALL:
math.average([18, 50])

FINAL_ANSWER:
The square root of the average of 18 and 50 is about 5.83.`

func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleResponse)

	if sections.Reasoning == "" || sections.ToolNeeded == "" {
		t.Fatalf("missing sections: %+v", sections)
	}
	if sections.ToolCall != "math.average([18, 50])" {
		t.Fatalf("unexpected tool call: %q", sections.ToolCall)
	}
	if sections.FinalAnswer != "The square root of the average of 18 and 50 is about 5.83." {
		t.Fatalf("unexpected final answer: %q", sections.FinalAnswer)
	}
	if !sections.NeedsTool() {
		t.Fatal("expected NeedsTool to be true")
	}
}

func TestParseSectionsMissingHeaders(t *testing.T) {
	sections := ParseSections("just some freeform text with no headers")
	if sections.Reasoning != "" || sections.ToolCall != "" || sections.FinalAnswer != "" {
		t.Fatalf("expected empty sections, got %+v", sections)
	}
	if sections.NeedsTool() {
		t.Fatal("no tool call should mean no tool")
	}
}

func TestParseSectionsToolNotNeeded(t *testing.T) {
	sections := ParseSections(`REASONING:
Simple arithmetic, no tool required.

TOOL_NEEDED:
NONE

TOOL_CALL:

FINAL_ANSWER:
4`)
	if sections.NeedsTool() {
		t.Fatal("NONE must disable the tool call")
	}
	if sections.FinalAnswer != "4" {
		t.Fatalf("unexpected final answer: %q", sections.FinalAnswer)
	}
}

func TestParseToolCall(t *testing.T) {
	inv, err := ParseToolCall("math.average([18, 50])")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Name != "math.average" || inv.RawArgs != "[18, 50]" {
		t.Fatalf("unexpected invocation: %+v", inv)
	}

	inv, err = ParseToolCall(`string.count_vowels("Multimodality")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Name != "string.count_vowels" || inv.RawArgs != `"Multimodality"` {
		t.Fatalf("unexpected invocation: %+v", inv)
	}
}

func TestParseToolCallMalformed(t *testing.T) {
	for _, call := range []string{"", "no parens", "add(1, 2)", "math.add 1 2"} {
		if _, err := ParseToolCall(call); !errors.Is(err, ErrMalformedToolCall) {
			t.Fatalf("%q: expected ErrMalformedToolCall, got %v", call, err)
		}
	}
}
