// Package tools holds the deterministic helpers the reasoning loop can
// dispatch to. Tools are addressed by a namespaced name such as "math.add"
// or "string.count_vowels" and receive the raw argument text the language
// model produced.
package tools

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrUnknownTool is returned when the requested name is not registered.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidArguments is returned when the argument text cannot be
	// parsed or violates a tool's domain.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Names returns every registered tool name, sorted.
func Names() []string {
	names := make([]string, 0, len(mathTools)+len(stringTools))
	for name := range mathTools {
		names = append(names, "math."+name)
	}
	for name := range stringTools {
		names = append(names, "string."+name)
	}
	sort.Strings(names)
	return names
}

// Call dispatches a tool by its namespaced name. rawArgs is the text between
// the parentheses of the model's tool call, still unparsed.
func Call(name, rawArgs string) (any, error) {
	switch {
	case strings.HasPrefix(name, "math."):
		tool, ok := mathTools[strings.TrimPrefix(name, "math.")]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
		}
		args, err := parseMathArgs(rawArgs)
		if err != nil {
			return nil, err
		}
		return tool.call(args)
	case strings.HasPrefix(name, "string."):
		tool, ok := stringTools[strings.TrimPrefix(name, "string.")]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
		}
		return tool(parseStringArg(rawArgs)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// parseMathArgs accepts either a bracketed list "[18, 50]" or a comma
// separated scalar list "18, 50".
func parseMathArgs(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		end := strings.Index(raw, "]")
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated list %q", ErrInvalidArguments, raw)
		}
		raw = raw[1:end]
	}

	parts := strings.Split(raw, ",")
	args := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArguments, part)
		}
		args = append(args, n)
	}
	return args, nil
}

// parseStringArg strips surrounding quotes from a single text argument.
func parseStringArg(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"'`)
	return raw
}
