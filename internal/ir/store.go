package ir

// valueStore is the shared bookkeeping behind both Program (the
// global value map) and DataFlowGraph (a function's local value map):
// allocate an id, build a ValueData, register it as a user of every
// operand it names, and hand back the handle. Factoring this out once
// avoids duplicating the use-def wiring between "build a global" and
// "build a local instruction", which differ only in which map they
// land in (both draw from the program's one shared id allocator).
type valueStore struct {
	ids    *idAllocator
	values map[Value]*ValueData
}

func newValueStore(ids *idAllocator, values map[Value]*ValueData) *valueStore {
	return &valueStore{ids: ids, values: values}
}

// insert mints a fresh Value, stores its data, and registers it as a
// user of every Value operand kind names (BasicBlock operands don't
// carry a used_by set of their own here; see dfg.go's linkBB wiring).
func (s *valueStore) insert(ty Type, kind ValueKind) Value {
	v := Value{id: s.ids.newValueID()}
	data := newValueData(ty, kind)
	s.values[v] = data
	s.linkOperands(v, kind)
	return v
}

func (s *valueStore) linkOperands(user Value, kind ValueKind) {
	var ops []*Value
	ops = kind.Operands(ops[:0])
	for _, op := range ops {
		if !op.IsValid() {
			continue
		}
		if d, ok := s.values[*op]; ok {
			d.addUser(user)
		}
	}
}

func (s *valueStore) unlinkOperands(user Value, kind ValueKind) {
	var ops []*Value
	ops = kind.Operands(ops[:0])
	for _, op := range ops {
		if !op.IsValid() {
			continue
		}
		if d, ok := s.values[*op]; ok {
			d.removeUser(user)
		}
	}
}

func (s *valueStore) get(v Value) (*ValueData, bool) {
	d, ok := s.values[v]
	return d, ok
}

// remove deletes v from the store. Callers must have already checked
// v's used_by set is empty and, for instructions, that v has already
// been unlinked from its Layout slot (spec invariant 7).
func (s *valueStore) remove(v Value) {
	d, ok := s.values[v]
	if !ok {
		return
	}
	s.unlinkOperands(v, d.kind)
	delete(s.values, v)
}

// ValueBuilder accumulates the type+kind of a value under construction
// and commits it to its owning store on the terminal call, mirroring
// the original Koopa API's NewValue().integer(1) builder chain.
type ValueBuilder struct {
	store  *valueStore
	types  *Interner
	bbLink func(user Value, kind ValueKind)
}

func newValueBuilder(store *valueStore, types *Interner) *ValueBuilder {
	return &ValueBuilder{store: store, types: types}
}

// insert commits kind to the store and, if this builder was created
// by a DataFlowGraph, wires up any BasicBlock operands kind names.
func (b *ValueBuilder) insert(ty Type, kind ValueKind) Value {
	v := b.store.insert(ty, kind)
	if b.bbLink != nil {
		b.bbLink(v, kind)
	}
	return v
}

// Integer builds an i32 constant.
func (b *ValueBuilder) Integer(v int32) Value {
	return b.insert(b.types.Int32(), &Integer{Val: v})
}

// ZeroInit builds the all-zero constant of ty.
func (b *ValueBuilder) ZeroInit(ty Type) Value {
	return b.insert(ty, &ZeroInit{})
}

// Undef builds an unspecified value of ty.
func (b *ValueBuilder) Undef(ty Type) Value {
	return b.insert(ty, &Undef{})
}

// Aggregate builds a constant array from elems, which must all be
// constants of the same element type (spec invariant 4).
func (b *ValueBuilder) Aggregate(elems []Value, elemType Type) Value {
	ty := b.types.ArrayOf(elemType, len(elems))
	return b.insert(ty, &Aggregate{Elems: append([]Value(nil), elems...)})
}

// FuncArgRef builds a reference to the enclosing function's index'th
// parameter, of type ty.
func (b *ValueBuilder) FuncArgRef(index int, ty Type) Value {
	return b.insert(ty, &FuncArgRef{Index: index})
}

// BlockArgRef builds a reference to the enclosing block's index'th
// parameter, of type ty.
func (b *ValueBuilder) BlockArgRef(index int, ty Type) Value {
	return b.insert(ty, &BlockArgRef{Index: index})
}

// Alloc builds a stack allocation of one pointee-typed slot; the
// value's own type is *pointee.
func (b *ValueBuilder) Alloc(pointee Type) Value {
	return b.insert(b.types.PointerTo(pointee), &Alloc{})
}

// GlobalAlloc builds a global variable initialized from init, a
// constant. The value's own type is a pointer to init's type.
func (b *ValueBuilder) GlobalAlloc(init Value, initType Type) Value {
	return b.insert(b.types.PointerTo(initType), &GlobalAlloc{Init: init})
}

// Load builds a read through src, a pointer to ty.
func (b *ValueBuilder) Load(src Value, ty Type) Value {
	return b.insert(ty, &Load{Src: src})
}

// Store builds a write of value through dest. Store's own type is
// Unit: it produces no result.
func (b *ValueBuilder) Store(value, dest Value) Value {
	return b.insert(b.types.Unit(), &Store{Value: value, Dest: dest})
}

// GetPtr builds a pointer-sized step of src by index. The value's own
// type equals src's type.
func (b *ValueBuilder) GetPtr(src, index Value, ty Type) Value {
	return b.insert(ty, &GetPtr{Src: src, Index: index})
}

// GetElemPtr builds a pointer to element index of the array src points
// to. The value's own type is a pointer to the array's element type.
func (b *ValueBuilder) GetElemPtr(src, index Value, ty Type) Value {
	return b.insert(ty, &GetElemPtr{Src: src, Index: index})
}

// Binary builds an Int32 binary operation.
func (b *ValueBuilder) Binary(op BinaryOp, lhs, rhs Value) Value {
	return b.insert(b.types.Int32(), &Binary{Op: op, Lhs: lhs, Rhs: rhs})
}

// Branch builds a conditional control-flow transfer. Its own type is
// Unit.
func (b *ValueBuilder) Branch(cond Value, trueBB, falseBB BasicBlock, trueArgs, falseArgs []Value) Value {
	return b.insert(b.types.Unit(), &Branch{
		Cond: cond, True: trueBB, False: falseBB,
		TrueArgs: append([]Value(nil), trueArgs...), FalseArgs: append([]Value(nil), falseArgs...),
	})
}

// Jump builds an unconditional control-flow transfer. Its own type is
// Unit.
func (b *ValueBuilder) Jump(target BasicBlock, args []Value) Value {
	return b.insert(b.types.Unit(), &Jump{Target: target, Args: append([]Value(nil), args...)})
}

// Call builds an invocation of callee with args. The value's own type
// is retType, which must match callee's declared return type.
func (b *ValueBuilder) Call(callee Function, args []Value, retType Type) Value {
	return b.insert(retType, &Call{Callee: callee, Args: append([]Value(nil), args...)})
}

// Return builds a function exit, optionally yielding value. Pass the
// zero Value for a void return. Its own type is Unit.
func (b *ValueBuilder) Return(value Value) Value {
	return b.insert(b.types.Unit(), &Return{Value: value})
}
