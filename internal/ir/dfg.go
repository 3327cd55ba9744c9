package ir

// BasicBlockData is the entity a BasicBlock handle refers to: its
// parameter types (as a BasicBlock-kinded Type), a debug name, the
// ordered list of BlockArgRef values standing for its parameters, and
// the set of Branch/Jump values that currently target it.
type BasicBlockData struct {
	ty     Type
	name   string
	params []Value
	usedBy map[Value]struct{}
}

// Type returns the block's BasicBlock-kinded parameter-list type.
func (d *BasicBlockData) Type() Type { return d.ty }

// Name returns the block's debug name, or "" if unnamed.
func (d *BasicBlockData) Name() string { return d.name }

// Params returns the block's parameter values, in declaration order.
// Each is a BlockArgRef value owned by the same DataFlowGraph.
func (d *BasicBlockData) Params() []Value { return d.params }

// UsedBy returns a snapshot of the values (Branch/Jump instructions)
// that currently target this block.
func (d *BasicBlockData) UsedBy() []Value {
	out := make([]Value, 0, len(d.usedBy))
	for v := range d.usedBy {
		out = append(out, v)
	}
	return out
}

func (d *BasicBlockData) addUser(user Value)    { d.usedBy[user] = struct{}{} }
func (d *BasicBlockData) removeUser(user Value) { delete(d.usedBy, user) }

// DataFlowGraph owns one function's local values and basic blocks. It
// also holds a read-through view of the owning Program's global value
// map: Go's map type is itself a reference, so "share the globals
// with every function's DFG" needs no Rc<RefCell<...>>/Weak machinery
// the way the Rust original's Program does — a DataFlowGraph simply
// keeps the same map value Program does (see program.go).
type DataFlowGraph struct {
	ids     *idAllocator
	types   *Interner
	values  map[Value]*ValueData
	globals map[Value]*ValueData
	blocks  map[BasicBlock]*BasicBlockData
	vstore  *valueStore
	prog    *Program // for resolving a Call's callee signature
	retType Type     // enclosing function's declared return type, for Return
}

func newDataFlowGraph(ids *idAllocator, types *Interner, globals map[Value]*ValueData, prog *Program) *DataFlowGraph {
	values := make(map[Value]*ValueData)
	return &DataFlowGraph{
		ids:     ids,
		types:   types,
		values:  values,
		globals: globals,
		blocks:  make(map[BasicBlock]*BasicBlockData),
		vstore:  newValueStore(ids, values),
		prog:    prog,
	}
}

// NewValue returns a builder for constructing a local value owned by
// this DFG. Values built this way have their BasicBlock operands
// (Branch/Jump targets) linked into the target blocks' used_by sets
// automatically.
func (g *DataFlowGraph) NewValue() *ValueBuilder {
	b := newValueBuilder(g.vstore, g.types)
	b.bbLink = g.linkBB
	return b
}

// Value looks up v, checking this DFG's local values first and
// falling back to the owning Program's globals (spec §4's
// shared/non-owning view).
func (g *DataFlowGraph) Value(v Value) (*ValueData, error) {
	if d, ok := g.values[v]; ok {
		return d, nil
	}
	if d, ok := g.globals[v]; ok {
		return d, nil
	}
	return nil, notFound("value", v)
}

// SetValueName renames v, which must be local to this DFG.
func (g *DataFlowGraph) SetValueName(v Value, name string) error {
	d, ok := g.values[v]
	if !ok {
		return notFound("value", v)
	}
	d.name = setName(name)
	return nil
}

// RemoveValue deletes v from this DFG. v must be local, unused (spec
// invariant 7), and — if it is an instruction — already removed from
// the function's Layout; Layout removal is the caller's responsibility
// (layout.go), since DataFlowGraph has no view of block instruction
// order.
func (g *DataFlowGraph) RemoveValue(v Value) error {
	d, ok := g.values[v]
	if !ok {
		return notFound("value", v)
	}
	if len(d.usedBy) != 0 {
		return ErrStillInUse
	}
	g.unlinkBB(v, d.kind)
	g.vstore.remove(v)
	return nil
}

// NewBB creates an unnamed, parameterless basic block.
func (g *DataFlowGraph) NewBB() BasicBlock {
	return g.NewBBWithParams(nil, nil)
}

// NewBBWithParams creates a basic block with the given parameter
// types, minting one BlockArgRef value per parameter.
func (g *DataFlowGraph) NewBBWithParams(paramTypes []Type, paramNames []string) BasicBlock {
	bb := BasicBlock{id: g.ids.newBlockID()}
	data := &BasicBlockData{
		ty:     g.types.BasicBlockOf(paramTypes),
		usedBy: make(map[Value]struct{}),
	}
	for i, pt := range paramTypes {
		p := g.vstore.insert(pt, &BlockArgRef{Index: i})
		if i < len(paramNames) {
			g.values[p].name = setName(paramNames[i])
		}
		data.params = append(data.params, p)
	}
	g.blocks[bb] = data
	return bb
}

// BB looks up bb within this DFG.
func (g *DataFlowGraph) BB(bb BasicBlock) (*BasicBlockData, error) {
	d, ok := g.blocks[bb]
	if !ok {
		return nil, notFound("basic block", bb)
	}
	return d, nil
}

// SetBBName renames bb.
func (g *DataFlowGraph) SetBBName(bb BasicBlock, name string) error {
	d, ok := g.blocks[bb]
	if !ok {
		return notFound("basic block", bb)
	}
	d.name = setName(name)
	return nil
}

// RemoveBB deletes bb, which must be unused (spec invariant 7). This
// alone does not check Layout membership — DataFlowGraph has no
// reference to a function's Layout — so callers should go through
// FunctionData.RemoveBB, which checks both halves of invariant 6
// together.
func (g *DataFlowGraph) RemoveBB(bb BasicBlock) error {
	d, ok := g.blocks[bb]
	if !ok {
		return notFound("basic block", bb)
	}
	if len(d.usedBy) != 0 {
		return ErrStillInUse
	}
	for _, p := range d.params {
		g.vstore.remove(p)
	}
	delete(g.blocks, bb)
	return nil
}

// linkBB registers user (a Branch/Jump value) as referencing every
// BasicBlock its kind names, symmetric with valueStore.linkOperands
// for Value operands. Called once, right after the value is inserted,
// by the DFG helpers that build control-flow instructions.
func (g *DataFlowGraph) linkBB(user Value, kind ValueKind) {
	var bbs []*BasicBlock
	bbs = kind.BBOperands(bbs[:0])
	for _, bb := range bbs {
		if d, ok := g.blocks[*bb]; ok {
			d.addUser(user)
		}
	}
}

func (g *DataFlowGraph) unlinkBB(user Value, kind ValueKind) {
	var bbs []*BasicBlock
	bbs = kind.BBOperands(bbs[:0])
	for _, bb := range bbs {
		if d, ok := g.blocks[*bb]; ok {
			d.removeUser(user)
		}
	}
}
