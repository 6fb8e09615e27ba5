package reasoning

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedToolCall is returned when a TOOL_CALL line does not look like
// name(args).
var ErrMalformedToolCall = errors.New("malformed tool call")

// Sections is the structured form of a model's reasoning response. Missing
// headers leave their field empty rather than failing the parse.
type Sections struct {
	Reasoning   string
	ToolNeeded  string
	ToolCall    string
	FinalAnswer string
}

// NeedsTool reports whether the model asked for a tool invocation.
func (s Sections) NeedsTool() bool {
	return s.ToolCall != "" && !strings.EqualFold(strings.TrimSpace(s.ToolNeeded), "NONE")
}

// Invocation is a parsed TOOL_CALL line. RawArgs keeps the argument text
// unparsed; the tool registry owns argument interpretation.
type Invocation struct {
	Name    string
	RawArgs string
}

var (
	reasoningRe   = regexp.MustCompile(`(?s)REASONING:\s*(.*?)(?:TOOL_NEEDED:|$)`)
	toolNeededRe  = regexp.MustCompile(`(?s)TOOL_NEEDED:\s*(.*?)(?:TOOL_CALL:|$)`)
	toolCallRe    = regexp.MustCompile(`(?s)TOOL_CALL:\s*(.*?)(?:FINAL_ANSWER:|$)`)
	finalAnswerRe = regexp.MustCompile(`(?s)FINAL_ANSWER:\s*(.*)$`)
	invocationRe  = regexp.MustCompile(`(\w+\.\w+)\((.*?)\)`)
)

// ParseSections extracts the four labeled sections from a model response.
func ParseSections(response string) Sections {
	return Sections{
		Reasoning:   extract(reasoningRe, response),
		ToolNeeded:  extract(toolNeededRe, response),
		ToolCall:    extract(toolCallRe, response),
		FinalAnswer: extract(finalAnswerRe, response),
	}
}

func extract(re *regexp.Regexp, response string) string {
	m := re.FindStringSubmatch(response)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseToolCall splits a TOOL_CALL line such as `math.add(18, 50)` into its
// tool name and raw argument text.
func ParseToolCall(call string) (Invocation, error) {
	m := invocationRe.FindStringSubmatch(call)
	if m == nil {
		return Invocation{}, fmt.Errorf("%w: %q", ErrMalformedToolCall, call)
	}
	return Invocation{Name: m[1], RawArgs: m[2]}, nil
}
