package extcall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koopa-ir/koopa/internal/ir"
)

func TestSymbolNameStripsSigil(t *testing.T) {
	name, err := SymbolName("@getchar")
	require.NoError(t, err)
	require.Equal(t, "getchar", name)

	_, err = SymbolName("getchar")
	require.Error(t, err)
}

func TestInvokeMarshalsIntegerArgsAndCallsResolvedSymbol(t *testing.T) {
	prog := ir.NewProgram()
	decl := prog.NewFunc("@add2", []ir.Type{ir.Int32(), ir.Int32()}, ir.Int32())
	fd, err := prog.Func(decl)
	require.NoError(t, err)

	builder, err := prog.NewValue()
	require.NoError(t, err)
	a := builder.Integer(3)
	b := builder.Integer(4)

	var gotArgs []Word
	resolver := MapResolver{
		"add2": func(args []Word) (Word, error) {
			gotArgs = args
			return Word(uint32(int32(args[0]) + int32(args[1]))), nil
		},
	}

	result, err := Invoke(resolver, fd, []ir.Value{a, b}, prog.Value)
	require.NoError(t, err)
	require.Equal(t, Word(7), result)
	require.Equal(t, []Word{3, 4}, gotArgs)
}

func TestInvokeSignExtendsNegativeIntegerArgs(t *testing.T) {
	prog := ir.NewProgram()
	decl := prog.NewFunc("@negate", []ir.Type{ir.Int32()}, ir.Int32())
	fd, err := prog.Func(decl)
	require.NoError(t, err)

	builder, err := prog.NewValue()
	require.NoError(t, err)
	neg := builder.Integer(-1)

	var gotArgs []Word
	resolver := MapResolver{
		"negate": func(args []Word) (Word, error) {
			gotArgs = args
			return 0, nil
		},
	}

	_, err = Invoke(resolver, fd, []ir.Value{neg}, prog.Value)
	require.NoError(t, err)
	require.Equal(t, []Word{Word(0xFFFFFFFFFFFFFFFF)}, gotArgs, "-1 must sign-extend to all-ones, not zero-extend")
}

func TestInvokeRejectsTooManyArgs(t *testing.T) {
	prog := ir.NewProgram()
	decl := prog.NewFunc("@variadicish", nil, ir.Unit())
	fd, err := prog.Func(decl)
	require.NoError(t, err)

	args := make([]ir.Value, MaxArgs+1)
	builder, err := prog.NewValue()
	require.NoError(t, err)
	for i := range args {
		args[i] = builder.Integer(int32(i))
	}

	_, err = Invoke(MapResolver{}, fd, args, prog.Value)
	require.ErrorIs(t, err, ErrArgCountExceeded)
}

func TestInvokeRejectsUnknownSymbol(t *testing.T) {
	prog := ir.NewProgram()
	decl := prog.NewFunc("@missing", nil, ir.Unit())
	fd, err := prog.Func(decl)
	require.NoError(t, err)

	_, err = Invoke(MapResolver{}, fd, nil, prog.Value)
	require.ErrorIs(t, err, ErrSymbolNotFound)
	require.True(t, strings.Contains(err.Error(), "missing"))
}
