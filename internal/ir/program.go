package ir

// Program is the top-level owner of a Koopa compilation unit: every
// global value (constants and global variables) and every function,
// sharing one id allocator and one type interner so handles minted
// anywhere in the program stay globally unique and comparable (spec
// §4.1).
type Program struct {
	ids     *idAllocator
	types   *Interner
	globals map[Value]*ValueData
	gstore  *valueStore
	funcs   map[Function]*FunctionData
	order   []Function // declaration/definition order, for deterministic printing

	borrowed bool
}

// NewProgram creates an empty program with its own id allocator. Its
// types come from the package default interner, so types built with
// the package-level constructors (Int32, ArrayOf, ...) are identical
// to the ones the program's builders derive.
func NewProgram() *Program {
	ids := newIDAllocator()
	globals := make(map[Value]*ValueData)
	return &Program{
		ids:     ids,
		types:   DefaultInterner(),
		globals: globals,
		gstore:  newValueStore(ids, globals),
		funcs:   make(map[Function]*FunctionData),
	}
}

// Types returns the type interner this program's builders use, which
// is the package default interner.
func (p *Program) Types() *Interner { return p.types }

// NewValue returns a builder for constructing a global constant.
// Global variables should go through Program.GlobalAlloc instead,
// which validates its init argument before delegating to the same
// builder. Returns an error wrapping ErrGlobalsBorrowed if a
// BorrowValues snapshot is still outstanding (spec §5).
func (p *Program) NewValue() (*ValueBuilder, error) {
	if p.borrowed {
		return nil, ErrGlobalsBorrowed
	}
	return newValueBuilder(p.gstore, p.types), nil
}

// GlobalAlloc builds a global variable initialized from init, which
// must already be a constant value (spec: global_alloc(init) requires
// init to be a constant). The value's own type is a pointer to
// initType.
func (p *Program) GlobalAlloc(init Value, initType Type) Value {
	d, err := p.Value(init)
	if err != nil {
		invalid("GlobalAlloc", "%v", err)
	}
	if !d.IsConst() {
		invalid("GlobalAlloc", "init %v is not a constant", init)
	}
	b, err := p.NewValue()
	if err != nil {
		invalid("GlobalAlloc", "%v", err)
	}
	return b.GlobalAlloc(init, initType)
}

// Value looks up a global value by handle.
func (p *Program) Value(v Value) (*ValueData, error) {
	d, ok := p.globals[v]
	if !ok {
		return nil, notFound("global value", v)
	}
	return d, nil
}

// SetValueName renames a global value.
func (p *Program) SetValueName(v Value, name string) error {
	d, ok := p.globals[v]
	if !ok {
		return notFound("global value", v)
	}
	d.name = setName(name)
	return nil
}

// RemoveValue deletes a global value. It must be unused and must not
// currently be borrowed (spec invariant 7, spec §5).
func (p *Program) RemoveValue(v Value) error {
	if p.borrowed {
		return ErrGlobalsBorrowed
	}
	d, ok := p.globals[v]
	if !ok {
		return notFound("global value", v)
	}
	if len(d.usedBy) != 0 {
		return ErrStillInUse
	}
	p.gstore.remove(v)
	return nil
}

// BorrowedValues is a released-on-Release snapshot of the program's
// global value map, grounded on the original implementation's
// borrow_values()/RefCell discipline: while one is outstanding,
// mutating the global map is rejected rather than allowed to
// invalidate the snapshot out from under its holder.
type BorrowedValues struct {
	p      *Program
	values map[Value]*ValueData
}

// Value looks up v in the borrowed snapshot.
func (b *BorrowedValues) Value(v Value) (*ValueData, error) {
	d, ok := b.values[v]
	if !ok {
		return nil, notFound("global value", v)
	}
	return d, nil
}

// All returns every global value handle currently in the snapshot.
func (b *BorrowedValues) All() []Value {
	out := make([]Value, 0, len(b.values))
	for v := range b.values {
		out = append(out, v)
	}
	return out
}

// Release ends the borrow, re-enabling Program.NewValue/RemoveValue.
func (b *BorrowedValues) Release() {
	b.p.borrowed = false
}

// BorrowValues snapshots the program's current global value map for
// read-only iteration. Returns ErrGlobalsBorrowed if already borrowed.
// Callers must call Release on the result when done.
func (p *Program) BorrowValues() (*BorrowedValues, error) {
	if p.borrowed {
		return nil, ErrGlobalsBorrowed
	}
	p.borrowed = true
	return &BorrowedValues{p: p, values: p.globals}, nil
}

// NewFunc declares a function with the given name and signature. The
// function starts as a declaration (empty Layout); append basic
// blocks via its Layout to turn it into a definition.
func (p *Program) NewFunc(name string, paramTypes []Type, ret Type) Function {
	checkFunctionSanity(name, paramTypes)
	ty := p.types.FunctionOf(paramTypes, ret)
	fn := Function{id: p.ids.newFuncID()}
	dfg := newDataFlowGraph(p.ids, p.types, p.globals, p)
	dfg.retType = ret
	data := &FunctionData{ty: ty, name: name, dfg: dfg, layout: newLayout()}
	for i, pt := range paramTypes {
		data.params = append(data.params, dfg.vstore.insert(pt, &FuncArgRef{Index: i}))
	}
	p.funcs[fn] = data
	p.order = append(p.order, fn)
	return fn
}

// Func looks up fn's data.
func (p *Program) Func(fn Function) (*FunctionData, error) {
	d, ok := p.funcs[fn]
	if !ok {
		return nil, notFound("function", fn)
	}
	return d, nil
}

// Funcs returns every function handle in declaration order.
func (p *Program) Funcs() []Function {
	return append([]Function(nil), p.order...)
}

// RemoveFunc deletes fn, which must be unused by any Call in the
// program (spec invariant 7). Function has no used_by set of its own
// — Call is the only kind that ever references one, so this walks
// every function's local values (fn's own included) looking for a Call
// naming fn,
// rather than carrying an extra backlink that every other handle kind
// would have to stay symmetric with for no benefit.
func (p *Program) RemoveFunc(fn Function) error {
	if _, ok := p.funcs[fn]; !ok {
		return notFound("function", fn)
	}
	for _, data := range p.funcs {
		for _, vd := range data.dfg.values {
			if call, ok := vd.kind.(*Call); ok && call.Callee == fn {
				return ErrStillInUse
			}
		}
	}
	delete(p.funcs, fn)
	for i, f := range p.order {
		if f == fn {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}
