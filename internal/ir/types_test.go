package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestInternerHashCons(t *testing.T) {
	in := NewInterner()

	a1 := in.ArrayOf(in.Int32(), 8)
	a2 := in.ArrayOf(in.Int32(), 8)
	require.True(t, a1 == a2, "equal array types must be pointer-identical")

	p1 := in.PointerTo(a1)
	p2 := in.PointerTo(a2)
	require.True(t, p1 == p2, "equal pointer types must be pointer-identical")

	a3 := in.ArrayOf(in.Int32(), 9)
	require.False(t, a1 == a3, "arrays of different length must not unify")
}

func TestUnitIsSharedZeroValue(t *testing.T) {
	in1 := NewInterner()
	in2 := NewInterner()
	require.Equal(t, in1.Unit(), in2.Unit())
	require.True(t, in1.Unit().IsUnit())
	require.Equal(t, Type{}, in1.Unit())
}

func TestUnitExclusion(t *testing.T) {
	in := NewInterner()
	require.Panics(t, func() { in.ArrayOf(in.Unit(), 4) })
	require.Panics(t, func() { in.FunctionOf([]Type{in.Unit()}, in.Int32()) })
	require.Panics(t, func() { in.BasicBlockOf([]Type{in.Unit()}) })
}

func TestTypeString(t *testing.T) {
	in := NewInterner()
	require.Equal(t, "i32", in.Int32().String())
	require.Equal(t, "unit", in.Unit().String())
	require.Equal(t, "i32[4]", in.ArrayOf(in.Int32(), 4).String())
	require.Equal(t, "*i32", in.PointerTo(in.Int32()).String())

	fnVoid := in.FunctionOf([]Type{in.Int32(), in.Int32()}, in.Unit())
	require.Equal(t, "(i32, i32)", fnVoid.String())

	fnRet := in.FunctionOf([]Type{in.Int32()}, in.Int32())
	require.Equal(t, "i32(i32)", fnRet.String())
}

func TestFunctionUnitReturnVsBasicBlockDoNotCollideInInterner(t *testing.T) {
	in := NewInterner()
	fn := in.FunctionOf([]Type{in.Int32()}, in.Unit())
	bb := in.BasicBlockOf([]Type{in.Int32()})

	require.Equal(t, fn.String(), bb.String(), "both print as the same bare tuple")
	require.False(t, fn == bb, "but must not have unified in the intern table")
	require.Equal(t, KindFunction, fn.Kind())
	require.Equal(t, KindBasicBlock, bb.Kind())
}

func TestFunctionOfParamsOrderPreservedViaGoCmp(t *testing.T) {
	in := NewInterner()
	params := []Type{in.Int32(), in.PointerTo(in.Int32())}
	fn := in.FunctionOf(params, in.Unit())

	// Params() must hand back exactly what was interned, in order; a
	// sorted-set comparison would hide an ordering bug, so diff the
	// slices element by element (no cmpopts.SortSlices), comparing each
	// Type handle with ==.
	if diff := cmp.Diff(params, fn.Params(), cmpopts.EquateComparable(Type{})); diff != "" {
		t.Errorf("Params() mismatch (-want +got):\n%s", diff)
	}
}
