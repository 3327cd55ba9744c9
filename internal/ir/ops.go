package ir

// This file is the validated surface named by spec §4.4: one method
// per DataFlowGraph creation/mutation operation, each checking the
// preconditions the bare ValueBuilder (store.go) leaves to the
// caller and deriving result types rather than taking them as
// parameters. ValueBuilder stays as the mechanical "allocate + link"
// primitive these methods (and Program's global constructors) build
// on.

// Integer builds an i32 constant.
func (g *DataFlowGraph) Integer(v int32) Value { return g.NewValue().Integer(v) }

// ZeroInit builds the all-zero constant of ty.
func (g *DataFlowGraph) ZeroInit(ty Type) Value { return g.NewValue().ZeroInit(ty) }

// Undef builds an unspecified value of ty.
func (g *DataFlowGraph) Undef(ty Type) Value { return g.NewValue().Undef(ty) }

// Aggregate builds a constant array from elems, which must be
// non-empty, every element constant, and every element the same type.
func (g *DataFlowGraph) Aggregate(elems []Value) Value {
	if len(elems) == 0 {
		invalid("Aggregate", "aggregate must have at least one element")
	}
	var elemTy Type
	for i, e := range elems {
		d, err := g.Value(e)
		if err != nil {
			invalid("Aggregate", "element %d: %v", i, err)
		}
		if !d.IsConst() {
			invalid("Aggregate", "element %d is not a constant", i)
		}
		if i == 0 {
			elemTy = d.ty
		} else if d.ty != elemTy {
			invalid("Aggregate", "element %d has type %s, want %s", i, d.ty, elemTy)
		}
	}
	return g.NewValue().Aggregate(elems, elemTy)
}

// Alloc allocates stack storage for one value of type elemTy.
func (g *DataFlowGraph) Alloc(elemTy Type) Value { return g.NewValue().Alloc(elemTy) }

// Load reads through src, which must have Pointer type.
func (g *DataFlowGraph) Load(src Value) Value {
	d, err := g.Value(src)
	if err != nil {
		invalid("Load", "%v", err)
	}
	if !d.ty.IsPointer() {
		invalid("Load", "source %v has non-pointer type %s", src, d.ty)
	}
	return g.NewValue().Load(src, d.ty.Elem())
}

// Store writes value through dest, requiring dest.ty == Pointer(value.ty).
func (g *DataFlowGraph) Store(value, dest Value) Value {
	vd, err := g.Value(value)
	if err != nil {
		invalid("Store", "%v", err)
	}
	dd, err := g.Value(dest)
	if err != nil {
		invalid("Store", "%v", err)
	}
	if !dd.ty.IsPointer() || dd.ty.Elem() != vd.ty {
		invalid("Store", "dest type %s does not match *%s", dd.ty, vd.ty)
	}
	return g.NewValue().Store(value, dest)
}

// GetPtr computes a pointer-sized step of src by index; src must be a
// Pointer and index must be Int32.
func (g *DataFlowGraph) GetPtr(src, index Value) Value {
	sd, err := g.Value(src)
	if err != nil {
		invalid("GetPtr", "%v", err)
	}
	if !sd.ty.IsPointer() {
		invalid("GetPtr", "source %v has non-pointer type %s", src, sd.ty)
	}
	id, err := g.Value(index)
	if err != nil {
		invalid("GetPtr", "%v", err)
	}
	if !id.ty.IsInt32() {
		invalid("GetPtr", "index %v has non-i32 type %s", index, id.ty)
	}
	return g.NewValue().GetPtr(src, index, sd.ty)
}

// GetElemPtr computes a pointer to element index of the array src
// points to; src must be Pointer(Array(t, n)).
func (g *DataFlowGraph) GetElemPtr(src, index Value) Value {
	sd, err := g.Value(src)
	if err != nil {
		invalid("GetElemPtr", "%v", err)
	}
	if !sd.ty.IsPointer() || !sd.ty.Elem().IsArray() {
		invalid("GetElemPtr", "source %v has type %s, want pointer-to-array", src, sd.ty)
	}
	id, err := g.Value(index)
	if err != nil {
		invalid("GetElemPtr", "%v", err)
	}
	if !id.ty.IsInt32() {
		invalid("GetElemPtr", "index %v has non-i32 type %s", index, id.ty)
	}
	resultTy := g.types.PointerTo(sd.ty.Elem().Elem())
	return g.NewValue().GetElemPtr(src, index, resultTy)
}

// Binary applies op to lhs and rhs, both of which must be Int32.
func (g *DataFlowGraph) Binary(op BinaryOp, lhs, rhs Value) Value {
	ld, err := g.Value(lhs)
	if err != nil {
		invalid("Binary", "%v", err)
	}
	rd, err := g.Value(rhs)
	if err != nil {
		invalid("Binary", "%v", err)
	}
	if !ld.ty.IsInt32() || !rd.ty.IsInt32() {
		invalid("Binary", "operands must both be i32, got %s and %s", ld.ty, rd.ty)
	}
	return g.NewValue().Binary(op, lhs, rhs)
}

// Branch conditionally transfers control, checking cond is Int32 and
// that trueArgs/falseArgs match their target blocks' parameter types.
func (g *DataFlowGraph) Branch(cond Value, trueBB BasicBlock, trueArgs []Value, falseBB BasicBlock, falseArgs []Value) Value {
	cd, err := g.Value(cond)
	if err != nil {
		invalid("Branch", "%v", err)
	}
	if !cd.ty.IsInt32() {
		invalid("Branch", "condition %v has non-i32 type %s", cond, cd.ty)
	}
	g.checkBlockArgs("Branch", trueBB, trueArgs)
	g.checkBlockArgs("Branch", falseBB, falseArgs)
	return g.NewValue().Branch(cond, trueBB, falseBB, trueArgs, falseArgs)
}

// Jump unconditionally transfers control to target, checking args
// match target's parameter types.
func (g *DataFlowGraph) Jump(target BasicBlock, args []Value) Value {
	g.checkBlockArgs("Jump", target, args)
	return g.NewValue().Jump(target, args)
}

func (g *DataFlowGraph) checkBlockArgs(op string, bb BasicBlock, args []Value) {
	bd, err := g.BB(bb)
	if err != nil {
		invalid(op, "%v", err)
	}
	want := bd.ty.Params()
	if len(args) != len(want) {
		invalid(op, "block %v expects %d argument(s), got %d", bb, len(want), len(args))
	}
	for i, a := range args {
		ad, err := g.Value(a)
		if err != nil {
			invalid(op, "%v", err)
		}
		if ad.ty != want[i] {
			invalid(op, "argument %d has type %s, want %s", i, ad.ty, want[i])
		}
	}
}

// Call invokes callee with args, checking arity and parameter types
// against callee's signature. Yields callee's return type.
func (g *DataFlowGraph) Call(callee Function, args []Value) Value {
	if g.prog == nil {
		invalid("Call", "data-flow graph has no owning program")
	}
	fd, err := g.prog.Func(callee)
	if err != nil {
		invalid("Call", "%v", err)
	}
	want := fd.ty.Params()
	if len(args) != len(want) {
		invalid("Call", "function %s expects %d argument(s), got %d", fd.name, len(want), len(args))
	}
	for i, a := range args {
		ad, err := g.Value(a)
		if err != nil {
			invalid("Call", "%v", err)
		}
		if ad.ty != want[i] {
			invalid("Call", "argument %d has type %s, want %s", i, ad.ty, want[i])
		}
	}
	return g.NewValue().Call(callee, args, fd.ty.Ret())
}

// Return exits the enclosing function. Pass the zero Value for a void
// return. The value's type (or Unit) must match the function's
// declared return type.
func (g *DataFlowGraph) Return(value Value) Value {
	if value.IsValid() {
		vd, err := g.Value(value)
		if err != nil {
			invalid("Return", "%v", err)
		}
		if vd.ty != g.retType {
			invalid("Return", "return value has type %s, want %s", vd.ty, g.retType)
		}
	} else if !g.retType.IsUnit() {
		invalid("Return", "function returns %s, but no value given", g.retType)
	}
	return g.NewValue().Return(value)
}
