package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutInsertBeforeAfter(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	bb := dfg.NewBB()
	layout.AppendBB(bb)

	a := dfg.Integer(1)
	// Integer is a constant, not an instruction; use Alloc values as
	// stand-ins for instructions under test.
	i1 := dfg.Alloc(Int32())
	i1Data, _ := dfg.Value(i1)
	layout.AppendInst(bb, i1, i1Data)

	i3 := dfg.Alloc(Int32())
	i3Data, _ := dfg.Value(i3)
	layout.AppendInst(bb, i3, i3Data)

	i2 := dfg.Alloc(Int32())
	i2Data, _ := dfg.Value(i2)
	layout.InsertInstBefore(i3, i2, i2Data)

	require.Equal(t, []Value{i1, i2, i3}, layout.Insts(bb))

	i0 := dfg.Alloc(Int32())
	i0Data, _ := dfg.Value(i0)
	layout.InsertInstAfter(i1, i0, i0Data)
	require.Equal(t, []Value{i1, i0, i2, i3}, layout.Insts(bb))

	_ = a
}

func TestLayoutPrevNext(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	bb := dfg.NewBB()
	layout.AppendBB(bb)

	i1 := dfg.Alloc(Int32())
	i1Data, _ := dfg.Value(i1)
	layout.AppendInst(bb, i1, i1Data)

	i2 := dfg.Alloc(Int32())
	i2Data, _ := dfg.Value(i2)
	layout.AppendInst(bb, i2, i2Data)

	_, ok := layout.Prev(i1)
	require.False(t, ok)

	prev, ok := layout.Prev(i2)
	require.True(t, ok)
	require.Equal(t, i1, prev)

	next, ok := layout.Next(i1)
	require.True(t, ok)
	require.Equal(t, i2, next)

	_, ok = layout.Next(i2)
	require.False(t, ok)
}

func TestLayoutRejectsDoubleOccupancy(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	bb := dfg.NewBB()
	layout.AppendBB(bb)

	i1 := dfg.Alloc(Int32())
	i1Data, _ := dfg.Value(i1)
	layout.AppendInst(bb, i1, i1Data)

	require.Panics(t, func() { layout.AppendInst(bb, i1, i1Data) })
	require.Panics(t, func() { layout.AppendBB(bb) })
}

func TestLayoutRejectsNonInstructionKinds(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	bb := dfg.NewBB()
	layout.AppendBB(bb)

	c := dfg.Integer(1)
	cData, _ := dfg.Value(c)
	require.Panics(t, func() { layout.AppendInst(bb, c, cData) })
}

func TestLayoutInsertBBBefore(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	entry := dfg.NewBB()
	layout.AppendBB(entry)
	exit := dfg.NewBB()
	layout.AppendBB(exit)

	mid := dfg.NewBB()
	layout.InsertBBBefore(exit, mid)

	require.Equal(t, []BasicBlock{entry, mid, exit}, layout.BBs())
	require.True(t, layout.Contains(mid))

	require.Panics(t, func() { layout.InsertBBBefore(exit, mid) })
	other := dfg.NewBB()
	require.Panics(t, func() { layout.InsertBBBefore(BasicBlock{}, other) })
}

func TestLayoutRemoveBBRequiresEmpty(t *testing.T) {
	prog := NewProgram()
	fn := prog.NewFunc("@f", nil, Unit())
	fd, err := prog.Func(fn)
	require.NoError(t, err)
	dfg := fd.DFG()
	layout := fd.Layout()

	bb := dfg.NewBB()
	layout.AppendBB(bb)
	i1 := dfg.Alloc(Int32())
	i1Data, _ := dfg.Value(i1)
	layout.AppendInst(bb, i1, i1Data)

	require.Panics(t, func() { layout.RemoveBB(bb) })

	layout.RemoveInst(i1)
	require.NotPanics(t, func() { layout.RemoveBB(bb) })
}
