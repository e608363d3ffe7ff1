package floatexpr

import (
	"maps"
	"math"
	"strconv"
)

// Func is a function of one real variable. Out-of-domain arguments should
// produce NaN, as in package math.
type Func func(x float64) float64

var globalfuncs = map[string]Func{
	"sin": math.Sin,
	"cos": math.Cos,
}

// DefaultFuncs returns a copy of the functions that a new context can call.
func DefaultFuncs() map[string]Func {
	return maps.Clone(globalfuncs)
}

// NameError is an error from a call to a function that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unresolved reference: " + strconv.Quote(err.Name)
}
