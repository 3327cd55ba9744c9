package ir

// Layout records the order in which a function's basic blocks execute
// and, within each block, the order in which its instructions run.
// Ordering lives here and only here: DataFlowGraph owns the entities
// and their use-def links, Layout owns nothing but sequence, so moving
// an instruction never touches the DFG and removing a value from the
// DFG never implicitly reorders anything (spec §4's separation of
// ownership from order).
type Layout struct {
	blocks []BasicBlock
	insts  map[BasicBlock][]Value
	owner  map[Value]BasicBlock // which block (if any) currently holds a given instruction
}

func newLayout() *Layout {
	return &Layout{insts: make(map[BasicBlock][]Value), owner: make(map[Value]BasicBlock)}
}

// BBs returns the function's basic blocks in execution order.
func (l *Layout) BBs() []BasicBlock { return append([]BasicBlock(nil), l.blocks...) }

// Insts returns bb's instructions in execution order. Returns nil if
// bb has never been appended to the layout.
func (l *Layout) Insts(bb BasicBlock) []Value {
	return append([]Value(nil), l.insts[bb]...)
}

// Contains reports whether bb currently occupies a slot in the block
// order.
func (l *Layout) Contains(bb BasicBlock) bool {
	_, ok := l.insts[bb]
	return ok
}

// AppendBB adds bb to the end of the block order. Panics if bb is
// already present (spec's no-double-occupancy precondition).
func (l *Layout) AppendBB(bb BasicBlock) {
	if _, ok := l.insts[bb]; ok {
		invalid("AppendBB", "basic block %v is already in the layout", bb)
	}
	l.blocks = append(l.blocks, bb)
	l.insts[bb] = nil
}

// InsertBBBefore splices bb into the block order immediately before
// anchor. Panics if bb is already present or anchor is not.
func (l *Layout) InsertBBBefore(anchor, bb BasicBlock) {
	if _, ok := l.insts[bb]; ok {
		invalid("InsertBBBefore", "basic block %v is already in the layout", bb)
	}
	for i, b := range l.blocks {
		if b == anchor {
			l.blocks = append(l.blocks, BasicBlock{})
			copy(l.blocks[i+1:], l.blocks[i:])
			l.blocks[i] = bb
			l.insts[bb] = nil
			return
		}
	}
	invalid("InsertBBBefore", "anchor %v is not in the layout", anchor)
}

// RemoveBB drops bb from the block order. Panics if bb still holds any
// instructions (they must be removed first) or was never present.
func (l *Layout) RemoveBB(bb BasicBlock) {
	insts, ok := l.insts[bb]
	if !ok {
		invalid("RemoveBB", "basic block %v is not in the layout", bb)
	}
	if len(insts) != 0 {
		invalid("RemoveBB", "basic block %v still has %d instruction(s)", bb, len(insts))
	}
	delete(l.insts, bb)
	for i, b := range l.blocks {
		if b == bb {
			l.blocks = append(l.blocks[:i], l.blocks[i+1:]...)
			break
		}
	}
}

// AppendInst appends inst to the end of bb's instruction list. Panics
// if bb is not in the layout, inst is already placed somewhere, or
// data says inst is not an instruction kind (spec's is_inst guard).
func (l *Layout) AppendInst(bb BasicBlock, inst Value, data *ValueData) {
	l.checkInsertable(bb, inst, data)
	l.insts[bb] = append(l.insts[bb], inst)
	l.owner[inst] = bb
}

// InsertInstBefore inserts inst immediately before anchor within
// anchor's block. Panics if anchor is not currently placed.
func (l *Layout) InsertInstBefore(anchor, inst Value, data *ValueData) {
	bb, ok := l.owner[anchor]
	if !ok {
		invalid("InsertInstBefore", "anchor %v is not in the layout", anchor)
	}
	l.checkInsertable(bb, inst, data)
	l.insertAt(bb, inst, anchor, 0)
}

// InsertInstAfter inserts inst immediately after anchor within
// anchor's block. Panics if anchor is not currently placed.
func (l *Layout) InsertInstAfter(anchor, inst Value, data *ValueData) {
	bb, ok := l.owner[anchor]
	if !ok {
		invalid("InsertInstAfter", "anchor %v is not in the layout", anchor)
	}
	l.checkInsertable(bb, inst, data)
	l.insertAt(bb, inst, anchor, 1)
}

func (l *Layout) insertAt(bb BasicBlock, inst, anchor Value, offset int) {
	insts := l.insts[bb]
	for i, v := range insts {
		if v == anchor {
			idx := i + offset
			insts = append(insts, Value{})
			copy(insts[idx+1:], insts[idx:])
			insts[idx] = inst
			l.insts[bb] = insts
			l.owner[inst] = bb
			return
		}
	}
	invalid("insertAt", "anchor %v not found in basic block %v", anchor, bb)
}

// RemoveInst removes inst from whichever block currently holds it.
// Panics if inst is not currently placed.
func (l *Layout) RemoveInst(inst Value) {
	bb, ok := l.owner[inst]
	if !ok {
		invalid("RemoveInst", "instruction %v is not in the layout", inst)
	}
	insts := l.insts[bb]
	for i, v := range insts {
		if v == inst {
			l.insts[bb] = append(insts[:i], insts[i+1:]...)
			delete(l.owner, inst)
			return
		}
	}
}

// Prev returns the instruction immediately before inst in its block,
// and false if inst is first or not placed.
func (l *Layout) Prev(inst Value) (Value, bool) {
	bb, ok := l.owner[inst]
	if !ok {
		return Value{}, false
	}
	insts := l.insts[bb]
	for i, v := range insts {
		if v == inst {
			if i == 0 {
				return Value{}, false
			}
			return insts[i-1], true
		}
	}
	return Value{}, false
}

// Next returns the instruction immediately after inst in its block,
// and false if inst is last or not placed.
func (l *Layout) Next(inst Value) (Value, bool) {
	bb, ok := l.owner[inst]
	if !ok {
		return Value{}, false
	}
	insts := l.insts[bb]
	for i, v := range insts {
		if v == inst {
			if i == len(insts)-1 {
				return Value{}, false
			}
			return insts[i+1], true
		}
	}
	return Value{}, false
}

func (l *Layout) checkInsertable(bb BasicBlock, inst Value, data *ValueData) {
	if _, ok := l.insts[bb]; !ok {
		invalid("Layout", "basic block %v is not in the layout", bb)
	}
	if _, placed := l.owner[inst]; placed {
		invalid("Layout", "value %v is already placed in the layout", inst)
	}
	if data != nil && !data.IsInst() {
		invalid("Layout", "value %v is not an instruction kind", inst)
	}
}
