package ir

import "strconv"

// TypeKind identifies a variant of the Koopa type algebra.
type TypeKind int

const (
	// KindUnit is the absence of a value.
	KindUnit TypeKind = iota
	// KindInt32 is a 32-bit signed integer.
	KindInt32
	// KindArray is a fixed-length homogeneous array.
	KindArray
	// KindPointer is a pointer to some base type.
	KindPointer
	// KindFunction is a function signature (parameter types, return type).
	KindFunction
	// KindBasicBlock is the type of a basic block's parameter list.
	KindBasicBlock
)

func (k TypeKind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindInt32:
		return "i32"
	case KindArray:
		return "array"
	case KindPointer:
		return "pointer"
	case KindFunction:
		return "function"
	case KindBasicBlock:
		return "basic-block"
	default:
		return "unknown"
	}
}

// typeData is the structural payload behind a non-Unit Type. It is
// never mutated once interned: the interner hands out *typeData only
// after it has decided the value is canonical for its structural key.
type typeData struct {
	kind   TypeKind
	elem   Type   // Array element, or Pointer base
	length int    // Array length
	params []Type // Function or BasicBlock parameter types
	ret    Type   // Function return type
}

// Type is a hash-consed handle into the type algebra described in
// spec §3. Two Types compare equal with == iff they were interned by
// the same Interner from structurally equal data; Unit is the sole
// exception and is represented by the zero Type, shared by every
// Interner, since it carries no structural payload to hash-cons.
type Type struct {
	data *typeData
}

// Kind reports which variant of the type algebra t is.
func (t Type) Kind() TypeKind {
	if t.data == nil {
		return KindUnit
	}
	return t.data.kind
}

// IsUnit reports whether t is the Unit type.
func (t Type) IsUnit() bool { return t.Kind() == KindUnit }

// IsInt32 reports whether t is Int32.
func (t Type) IsInt32() bool { return t.Kind() == KindInt32 }

// IsArray reports whether t is an Array type.
func (t Type) IsArray() bool { return t.Kind() == KindArray }

// IsPointer reports whether t is a Pointer type.
func (t Type) IsPointer() bool { return t.Kind() == KindPointer }

// IsFunction reports whether t is a Function type.
func (t Type) IsFunction() bool { return t.Kind() == KindFunction }

// IsBasicBlock reports whether t is a BasicBlock type.
func (t Type) IsBasicBlock() bool { return t.Kind() == KindBasicBlock }

// Elem returns the element type of an Array or the base type of a
// Pointer. It panics for any other kind; callers should guard with
// IsArray/IsPointer first, same as indexing past a slice's length.
func (t Type) Elem() Type {
	switch t.Kind() {
	case KindArray, KindPointer:
		return t.data.elem
	default:
		panic("koopa/ir: Elem called on " + t.Kind().String() + " type")
	}
}

// Len returns an Array type's length. Panics for any other kind.
func (t Type) Len() int {
	if t.Kind() != KindArray {
		panic("koopa/ir: Len called on " + t.Kind().String() + " type")
	}
	return t.data.length
}

// Params returns a Function or BasicBlock type's parameter types. The
// returned slice must not be mutated by callers.
func (t Type) Params() []Type {
	switch t.Kind() {
	case KindFunction, KindBasicBlock:
		return t.data.params
	default:
		panic("koopa/ir: Params called on " + t.Kind().String() + " type")
	}
}

// Ret returns a Function type's return type. Panics for any other kind.
func (t Type) Ret() Type {
	if t.Kind() != KindFunction {
		panic("koopa/ir: Ret called on " + t.Kind().String() + " type")
	}
	return t.data.ret
}

// String renders t using the diagnostic grammar from spec §6.
func (t Type) String() string { return typeString(t) }

// Equal reports whether t and u name the same interned type. It is
// exactly == on the handle; the method exists so Type satisfies the
// usual go-cmp/testify "Equal" convention used in tests.
func (t Type) Equal(u Type) bool { return t == u }

// Interner hash-conses typeData values so that two structurally equal
// types share one handle, making Type equality a plain pointer
// comparison. Interners never evict: type handles live exactly as
// long as the Interner that produced them.
type Interner struct {
	types map[string]*typeData
}

// NewInterner creates an empty, isolated type interner. Most callers
// don't need one: the package-level constructors (Int32, ArrayOf, ...)
// use a shared default interner so a Program/DataFlowGraph never has
// to thread one through. Build a dedicated Interner only to isolate
// one program's types from another's.
func NewInterner() *Interner {
	return &Interner{types: make(map[string]*typeData)}
}

var defaultInterner = NewInterner()

// DefaultInterner returns the package-level interner used by the
// unqualified constructors (Int32, Unit, ArrayOf, ...).
func DefaultInterner() *Interner { return defaultInterner }

func (in *Interner) intern(d *typeData) Type {
	key := typeKey(d)
	if existing, ok := in.types[key]; ok {
		return Type{existing}
	}
	in.types[key] = d
	return Type{d}
}

// Unit returns the Unit type. It is always the zero Type, shared
// across every Interner, since Unit carries no structural payload.
func (in *Interner) Unit() Type { return Type{} }

// Int32 returns the 32-bit signed integer type.
func (in *Interner) Int32() Type {
	return in.intern(&typeData{kind: KindInt32})
}

// ArrayOf returns the type of a fixed-length array of elem. Panics if
// elem is Unit (spec invariant 3) or length is negative.
func (in *Interner) ArrayOf(elem Type, length int) Type {
	if elem.IsUnit() {
		panic("koopa/ir: array element type must not be unit")
	}
	if length < 0 {
		panic("koopa/ir: array length must be non-negative")
	}
	return in.intern(&typeData{kind: KindArray, elem: elem, length: length})
}

// PointerTo returns the type of a pointer to base. base may be Unit
// (a pointer to unit is unusual but not structurally invalid).
func (in *Interner) PointerTo(base Type) Type {
	return in.intern(&typeData{kind: KindPointer, elem: base})
}

// FunctionOf returns a function type with the given parameter types
// and return type. Panics if any parameter type is Unit (spec
// invariant 3); ret may be Unit (a void function).
func (in *Interner) FunctionOf(params []Type, ret Type) Type {
	for _, p := range params {
		if p.IsUnit() {
			panic("koopa/ir: function parameter type must not be unit")
		}
	}
	return in.intern(&typeData{
		kind:   KindFunction,
		params: append([]Type(nil), params...),
		ret:    ret,
	})
}

// BasicBlockOf returns a basic-block type with the given parameter
// types. Panics if any parameter type is Unit.
func (in *Interner) BasicBlockOf(params []Type) Type {
	for _, p := range params {
		if p.IsUnit() {
			panic("koopa/ir: basic block parameter type must not be unit")
		}
	}
	return in.intern(&typeData{
		kind:   KindBasicBlock,
		params: append([]Type(nil), params...),
	})
}

// Package-level convenience constructors delegating to the default
// interner, so ordinary callers never need to hold an *Interner.

// Unit returns the package default interner's Unit type.
func Unit() Type { return defaultInterner.Unit() }

// Int32 returns the package default interner's Int32 type.
func Int32() Type { return defaultInterner.Int32() }

// ArrayOf returns an array type from the package default interner.
func ArrayOf(elem Type, length int) Type { return defaultInterner.ArrayOf(elem, length) }

// PointerTo returns a pointer type from the package default interner.
func PointerTo(base Type) Type { return defaultInterner.PointerTo(base) }

// FunctionOf returns a function type from the package default interner.
func FunctionOf(params []Type, ret Type) Type { return defaultInterner.FunctionOf(params, ret) }

// BasicBlockOf returns a basic-block type from the package default interner.
func BasicBlockOf(params []Type) Type { return defaultInterner.BasicBlockOf(params) }

// typeKey encodes d into a canonical, kind-tagged string used only as
// the interner's hash key (see SPEC_FULL.md's discussion of why this
// must diverge from the display grammar once Function and BasicBlock
// are both in play).
func typeKey(d *typeData) string {
	return keyOf(Type{d})
}

func keyOf(t Type) string {
	if t.data == nil {
		return "u"
	}
	switch t.data.kind {
	case KindInt32:
		return "i"
	case KindArray:
		return "a" + keyOf(t.data.elem) + "#" + strconv.Itoa(t.data.length)
	case KindPointer:
		return "p" + keyOf(t.data.elem)
	case KindFunction:
		return "f" + keyOf(t.data.ret) + paramsKey(t.data.params)
	case KindBasicBlock:
		return "b" + paramsKey(t.data.params)
	default:
		return "?"
	}
}

func paramsKey(params []Type) string {
	s := "("
	for _, p := range params {
		s += keyOf(p) + ","
	}
	return s + ")"
}
