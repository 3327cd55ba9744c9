package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceValueWithIdempotent(t *testing.T) {
	_, _, fd, _, _, _, z, _ := buildAdd(t)
	dfg := fd.DFG()

	zData, err := dfg.Value(z)
	require.NoError(t, err)
	before := zData.UsedBy()

	require.NoError(t, ReplaceValueWith(dfg, z, z))

	after, err := dfg.Value(z)
	require.NoError(t, err)
	require.ElementsMatch(t, before, after.UsedBy())
}

func TestReplaceValueWithRejectsTypeMismatch(t *testing.T) {
	_, _, fd, _, _, _, z, _ := buildAdd(t)
	dfg := fd.DFG()

	ptr := dfg.Alloc(Int32())

	err := ReplaceValueWith(dfg, z, ptr)
	require.Error(t, err, "z is i32, ptr is *i32: replace must reject the type mismatch")
}

func TestReplaceBBWith(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()

	a := dfg.NewBB()
	b := dfg.NewBB()
	entry := dfg.NewBB()
	fd.Layout().AppendBB(a)
	fd.Layout().AppendBB(b)
	fd.Layout().AppendBB(entry)

	j := dfg.Jump(a, nil)
	jData, err := dfg.Value(j)
	require.NoError(t, err)
	fd.Layout().AppendInst(entry, j, jData)

	require.NoError(t, ReplaceBBWith(dfg, a, b))

	aData, err := dfg.BB(a)
	require.NoError(t, err)
	require.Empty(t, aData.UsedBy())

	bData, err := dfg.BB(b)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{j}, bData.UsedBy())

	jumpKind := jData.Kind().(*Jump)
	require.Equal(t, b, jumpKind.Target)
}

func TestRemoveUndoRoundTrip(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()

	x := dfg.Alloc(Int32())
	before, err := dfg.Value(x)
	require.NoError(t, err)
	require.Empty(t, before.UsedBy())

	loaded := dfg.Load(x)
	loadedData, err := dfg.Value(loaded)
	require.NoError(t, err)
	fd.Layout().AppendBB(dfg.NewBB())

	afterConstruct, err := dfg.Value(x)
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{loaded}, afterConstruct.UsedBy())

	require.NoError(t, dfg.RemoveValue(loaded))
	_ = loadedData

	afterRemove, err := dfg.Value(x)
	require.NoError(t, err)
	require.Empty(t, afterRemove.UsedBy())
}
