package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildAdd constructs S1: @add(i32, i32) -> i32 with a single
// parameterless block %entry computing %z = %x + %y; return %z, where
// %x and %y are the function's own parameters.
func buildAdd(t *testing.T) (*Program, Function, *FunctionData, BasicBlock, Value, Value, Value, Value) {
	t.Helper()
	prog := NewProgram()
	fn := prog.NewFunc("@add", []Type{Int32(), Int32()}, Int32())
	fd, err := prog.Func(fn)
	require.NoError(t, err)

	dfg := fd.DFG()
	entry := dfg.NewBB()
	require.NoError(t, dfg.SetBBName(entry, "%entry"))
	fd.Layout().AppendBB(entry)

	x, y := fd.Params()[0], fd.Params()[1]

	z := dfg.Binary(BinaryAdd, x, y)
	require.NoError(t, dfg.SetValueName(z, "%z"))
	zData, err := dfg.Value(z)
	require.NoError(t, err)
	fd.Layout().AppendInst(entry, z, zData)

	ret := dfg.Return(z)
	retData, err := dfg.Value(ret)
	require.NoError(t, err)
	fd.Layout().AppendInst(entry, ret, retData)

	return prog, fn, fd, entry, x, y, z, ret
}

func TestS1TwoAddFunction(t *testing.T) {
	_, _, fd, entry, x, y, z, ret := buildAdd(t)
	dfg := fd.DFG()

	zData, err := dfg.Value(z)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{ret}, zData.UsedBy())

	xData, err := dfg.Value(x)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{z}, xData.UsedBy())

	yData, err := dfg.Value(y)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{z}, yData.UsedBy())

	insts := fd.Layout().Insts(entry)
	require.Equal(t, []Value{z, ret}, insts)
}

func TestS2ReplaceAllUsesWith(t *testing.T) {
	_, _, fd, _, x, y, z, ret := buildAdd(t)
	dfg := fd.DFG()

	zAlt := dfg.Binary(BinaryAdd, y, x)
	require.NoError(t, dfg.SetValueName(zAlt, "%z2"))

	require.NoError(t, ReplaceValueWith(dfg, z, zAlt))

	zData, err := dfg.Value(z)
	require.NoError(t, err)
	require.Empty(t, zData.UsedBy())

	zAltData, err := dfg.Value(zAlt)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{ret}, zAltData.UsedBy())

	// z is no longer referenced by `ret`'s operand slot, and has no
	// remaining users, so it can now be removed.
	fd.Layout().RemoveInst(z)
	require.NoError(t, dfg.RemoveValue(z))
}

func TestS5BranchArgumentShape(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()

	trueBB := dfg.NewBBWithParams([]Type{Int32()}, nil)
	falseBB := dfg.NewBBWithParams(nil, nil)
	fd.Layout().AppendBB(trueBB)
	fd.Layout().AppendBB(falseBB)

	cond := dfg.Integer(1)
	a := dfg.Integer(2)

	require.NotPanics(t, func() {
		dfg.Branch(cond, trueBB, []Value{a}, falseBB, nil)
	})

	ptr := dfg.Alloc(Int32())
	require.Panics(t, func() {
		dfg.Branch(cond, trueBB, []Value{ptr}, falseBB, nil)
	})
}

func TestS6RemovalGuards(t *testing.T) {
	_, _, fd, _, _, _, z, ret := buildAdd(t)
	dfg := fd.DFG()

	err := dfg.RemoveValue(z)
	require.ErrorIs(t, err, ErrStillInUse)

	fd.Layout().RemoveInst(ret)
	require.NoError(t, dfg.RemoveValue(ret))
	fd.Layout().RemoveInst(z)
	require.NoError(t, dfg.RemoveValue(z))
}

func TestProgramBorrowValuesBlocksMutation(t *testing.T) {
	prog := NewProgram()
	b, err := prog.BorrowValues()
	require.NoError(t, err)

	_, err = prog.NewValue()
	require.ErrorIs(t, err, ErrGlobalsBorrowed)

	b.Release()
	builder, err := prog.NewValue()
	require.NoError(t, err)
	require.NotNil(t, builder)
}

func TestGlobalAllocAndCall(t *testing.T) {
	prog := NewProgram()
	builder, err := prog.NewValue()
	require.NoError(t, err)

	zero := builder.ZeroInit(ArrayOf(Int32(), 4))
	g := prog.GlobalAlloc(zero, ArrayOf(Int32(), 4))
	require.NoError(t, prog.SetValueName(g, "@g"))

	gData, err := prog.Value(g)
	require.NoError(t, err)
	require.True(t, gData.Type().IsPointer())
	require.True(t, gData.Type().Elem().IsArray())

	callee := prog.NewFunc("@callee", nil, Int32())
	fn := prog.NewFunc("@caller", nil, Int32())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()

	call := dfg.Call(callee, nil)
	callData, err := dfg.Value(call)
	require.NoError(t, err)
	require.True(t, callData.Type().IsInt32())
}
