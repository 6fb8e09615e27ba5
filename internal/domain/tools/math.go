package tools

import (
	"fmt"
	"math"
	"sort"
)

// mathTool pairs a function over floats with its expected argument count.
// arity -1 means the tool consumes the whole argument list.
type mathTool struct {
	arity int
	fn    func(args []float64) (float64, error)
}

func (t mathTool) call(args []float64) (float64, error) {
	if t.arity >= 0 && len(args) != t.arity {
		return 0, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidArguments, t.arity, len(args))
	}
	if t.arity < 0 && len(args) == 0 {
		return 0, fmt.Errorf("%w: expected a non-empty list", ErrInvalidArguments)
	}
	return t.fn(args)
}

var mathTools = map[string]mathTool{
	"add": {2, func(args []float64) (float64, error) {
		return args[0] + args[1], nil
	}},
	"subtract": {2, func(args []float64) (float64, error) {
		return args[0] - args[1], nil
	}},
	"multiply": {2, func(args []float64) (float64, error) {
		return args[0] * args[1], nil
	}},
	"divide": {2, func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, fmt.Errorf("%w: cannot divide by zero", ErrInvalidArguments)
		}
		return args[0] / args[1], nil
	}},
	"power": {2, func(args []float64) (float64, error) {
		return math.Pow(args[0], args[1]), nil
	}},
	"square_root": {1, func(args []float64) (float64, error) {
		if args[0] < 0 {
			return 0, fmt.Errorf("%w: cannot take square root of a negative number", ErrInvalidArguments)
		}
		return math.Sqrt(args[0]), nil
	}},
	"average": {-1, func(args []float64) (float64, error) {
		var sum float64
		for _, n := range args {
			sum += n
		}
		return sum / float64(len(args)), nil
	}},
	"median": {-1, func(args []float64) (float64, error) {
		sorted := append([]float64(nil), args...)
		sort.Float64s(sorted)
		n := len(sorted)
		if n%2 == 0 {
			return (sorted[n/2-1] + sorted[n/2]) / 2, nil
		}
		return sorted[n/2], nil
	}},
	"maximum": {-1, func(args []float64) (float64, error) {
		max := args[0]
		for _, n := range args[1:] {
			if n > max {
				max = n
			}
		}
		return max, nil
	}},
	"minimum": {-1, func(args []float64) (float64, error) {
		min := args[0]
		for _, n := range args[1:] {
			if n < min {
				min = n
			}
		}
		return min, nil
	}},
}
