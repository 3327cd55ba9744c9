package ir

// FunctionData is the entity a Function handle refers to: its
// signature, a debug name, the DataFlowGraph owning its local values
// and blocks, and the Layout sequencing those blocks and their
// instructions. A function with an empty Layout (no blocks appended)
// is a declaration; one with at least one block is a definition —
// there is no separate boolean flag to keep in sync (spec §4.5).
type FunctionData struct {
	ty     Type
	name   string
	params []Value
	dfg    *DataFlowGraph
	layout *Layout
}

// Type returns the function's Function-kinded signature type.
func (d *FunctionData) Type() Type { return d.ty }

// Name returns the function's debug name.
func (d *FunctionData) Name() string { return d.name }

// Params returns the function's parameter values (FuncArgRef, owned
// by d.DFG()), in declaration order.
func (d *FunctionData) Params() []Value { return d.params }

// DFG returns the function's data-flow graph.
func (d *FunctionData) DFG() *DataFlowGraph { return d.dfg }

// Layout returns the function's block/instruction ordering.
func (d *FunctionData) Layout() *Layout { return d.layout }

// IsDeclaration reports whether the function has no body yet (an
// external symbol known only by its signature).
func (d *FunctionData) IsDeclaration() bool { return len(d.layout.blocks) == 0 }

// RemoveBB removes bb from both the data-flow graph and, implicitly,
// checks it against the layout: spec invariant 6 requires bb to be
// both unused and absent from the Layout before removal, but
// DataFlowGraph alone holds no reference to Layout and so cannot
// enforce the second half on its own (see Layout's ownership-vs-order
// split). FunctionData holds both, so the check lives here — callers
// must have already called Layout.RemoveBB(bb) themselves; this
// returns ErrStillInLayout rather than removing it on their behalf.
func (d *FunctionData) RemoveBB(bb BasicBlock) error {
	if d.layout.Contains(bb) {
		return ErrStillInLayout
	}
	return d.dfg.RemoveBB(bb)
}

// checkFunctionSanity validates a function's name and signature against the
// rules carried over from the original implementation's
// FunctionData::check_sanity: the name must be at least two
// characters and start with '@' or '%', the same dual-sigil rule
// value names follow (see setName in value.go), and no parameter may
// be Unit (spec invariant 3).
func checkFunctionSanity(name string, params []Type) {
	if len(name) < 2 {
		invalid("checkFunctionSanity", "function name %q must be at least two characters", name)
	}
	switch name[0] {
	case '@', '%':
	default:
		invalid("checkFunctionSanity", "function name %q must start with '@' or '%%'", name)
	}
	for i, p := range params {
		if p.IsUnit() {
			invalid("checkFunctionSanity", "function %q parameter %d must not be unit", name, i)
		}
	}
}
