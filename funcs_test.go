package floatexpr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/floatexpr"
)

func TestDefaultFuncs(t *testing.T) {
	fns := floatexpr.DefaultFuncs()
	require.Len(t, fns, 2)
	assert.Contains(t, fns, "sin")
	assert.Contains(t, fns, "cos")

	delete(fns, "sin")
	fns["tan"] = math.Tan
	again := floatexpr.DefaultFuncs()
	assert.Contains(t, again, "sin")
	assert.NotContains(t, again, "tan")
	_, err := floatexpr.EvalString("tan(0)")
	assert.Error(t, err)
}

func TestContextFuncs(t *testing.T) {
	ctx := floatexpr.NewContext()
	assert.NotNil(t, ctx.Func("sin"))
	assert.NotNil(t, ctx.Func("cos"))
	assert.Nil(t, ctx.Func("tan"))

	tan := ctx.Clone(floatexpr.SetFunc("tan", math.Tan))
	assert.NotNil(t, tan.Func("tan"))
	assert.Nil(t, ctx.Func("tan"), "clone must not modify its source")

	a, err := floatexpr.Parse("tan(0) + cos(0)")
	require.NoError(t, err)
	r, err := tan.Eval(a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	nocos := tan.Clone(floatexpr.SetFunc("cos", nil))
	_, err = nocos.Eval(a)
	var nerr *floatexpr.NameError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "cos", nerr.Name)
}

func TestContextSetFuncs(t *testing.T) {
	ctx := floatexpr.NewContext(floatexpr.SetFuncs(map[string]floatexpr.Func{
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"sin":  nil,
	}))
	assert.Nil(t, ctx.Func("sin"))
	r, err := floatexpr.EvalString("sqrt(abs(-16)) + cos(0)", floatexpr.SetFuncs(map[string]floatexpr.Func{
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
	}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, r)

	a, err := floatexpr.Parse("sin(0)")
	require.NoError(t, err)
	_, err = ctx.Eval(a)
	assert.EqualError(t, err, `unresolved reference: "sin"`)
}

func TestZeroContext(t *testing.T) {
	var ctx floatexpr.Context
	a, err := floatexpr.Parse("1 + 2")
	require.NoError(t, err)
	r, err := ctx.Eval(a)
	require.NoError(t, err)
	assert.Equal(t, 3.0, r)

	a, err = floatexpr.Parse("cos(0)")
	require.NoError(t, err)
	_, err = ctx.Eval(a)
	var nerr *floatexpr.NameError
	assert.ErrorAs(t, err, &nerr)
}

func TestContextNilOption(t *testing.T) {
	ctx := floatexpr.NewContext(nil, floatexpr.WithLogger(nil), floatexpr.WithLogHandler(nil))
	r, err := floatexpr.EvalString("sin(0)")
	require.NoError(t, err)
	a, err := floatexpr.Parse("sin(0)")
	require.NoError(t, err)
	r2, err := ctx.Eval(a)
	require.NoError(t, err)
	assert.Equal(t, r, r2)
}

func ExampleSetFunc() {
	ctx := floatexpr.NewContext(floatexpr.SetFunc("sqrt", math.Sqrt))
	a, err := floatexpr.Parse("sqrt(2 ** 4) * cos(0)")
	if err != nil {
		panic(err)
	}
	r, err := ctx.Eval(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Funcs(), r)

	// Output:
	// [cos sqrt] 4
}
