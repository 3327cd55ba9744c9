package ir

// ValueKind is the payload of a ValueData: exactly one of the variants
// below. Every variant knows how to enumerate its own Value and
// BasicBlock operands in a fixed order, so the rest of the package
// (use-def bookkeeping, printing, verification) never needs a type
// switch of its own — see spec §9's "one point of truth" note and
// golang-tools/go/ssa's Instruction.Operands convention, which this
// mirrors.
type ValueKind interface {
	// Operands appends this kind's Value operands, in canonical order,
	// to dst and returns the result. The returned slice aliases the
	// kind's own storage: writing through an element rewires that
	// operand in place, the same trick go/ssa's Operands uses to let
	// callers rewrite operands generically.
	Operands(dst []*Value) []*Value

	// BBOperands appends this kind's BasicBlock operands, in canonical
	// order, to dst and returns the result.
	BBOperands(dst []*BasicBlock) []*BasicBlock

	// KindName identifies the variant for printing and error messages.
	KindName() string
}

// ---- Constants --------------------------------------------------------

// Integer is a constant i32 value.
type Integer struct{ Val int32 }

func (k *Integer) Operands(dst []*Value) []*Value             { return dst }
func (k *Integer) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Integer) KindName() string                           { return "Integer" }

// ZeroInit is the all-zero constant of its value's type (any type).
type ZeroInit struct{}

func (k *ZeroInit) Operands(dst []*Value) []*Value             { return dst }
func (k *ZeroInit) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *ZeroInit) KindName() string                           { return "ZeroInit" }

// Undef is an unspecified value of its value's type.
type Undef struct{}

func (k *Undef) Operands(dst []*Value) []*Value             { return dst }
func (k *Undef) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Undef) KindName() string                           { return "Undef" }

// Aggregate is a constant array value built from element constants.
type Aggregate struct{ Elems []Value }

func (k *Aggregate) Operands(dst []*Value) []*Value {
	for i := range k.Elems {
		dst = append(dst, &k.Elems[i])
	}
	return dst
}
func (k *Aggregate) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Aggregate) KindName() string                           { return "Aggregate" }

// ---- Entry-point references --------------------------------------------

// FuncArgRef names one of the enclosing function's parameters by index.
type FuncArgRef struct{ Index int }

func (k *FuncArgRef) Operands(dst []*Value) []*Value             { return dst }
func (k *FuncArgRef) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *FuncArgRef) KindName() string                           { return "FuncArgRef" }

// BlockArgRef names one of the enclosing basic block's parameters by
// index (spec's block-argument design replacing textbook Phi nodes;
// see the wazero ssaBasicBlock precedent grounding this choice).
type BlockArgRef struct{ Index int }

func (k *BlockArgRef) Operands(dst []*Value) []*Value             { return dst }
func (k *BlockArgRef) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *BlockArgRef) KindName() string                           { return "BlockArgRef" }

// ---- Memory -------------------------------------------------------------

// Alloc allocates stack storage for one value of its pointee type. The
// value's own type is always *pointee.
type Alloc struct{}

func (k *Alloc) Operands(dst []*Value) []*Value             { return dst }
func (k *Alloc) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Alloc) KindName() string                           { return "Alloc" }

// GlobalAlloc allocates a global variable, initialized from a constant.
type GlobalAlloc struct{ Init Value }

func (k *GlobalAlloc) Operands(dst []*Value) []*Value             { return append(dst, &k.Init) }
func (k *GlobalAlloc) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *GlobalAlloc) KindName() string                           { return "GlobalAlloc" }

// Load reads through a pointer.
type Load struct{ Src Value }

func (k *Load) Operands(dst []*Value) []*Value             { return append(dst, &k.Src) }
func (k *Load) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Load) KindName() string                           { return "Load" }

// Store writes Value through Dest. Store itself has Unit type — it is
// a side-effecting instruction with no result.
type Store struct {
	Value Value
	Dest  Value
}

func (k *Store) Operands(dst []*Value) []*Value {
	return append(dst, &k.Value, &k.Dest)
}
func (k *Store) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Store) KindName() string                           { return "Store" }

// GetPtr computes Src + Index (element-sized step over a pointer).
type GetPtr struct {
	Src   Value
	Index Value
}

func (k *GetPtr) Operands(dst []*Value) []*Value {
	return append(dst, &k.Src, &k.Index)
}
func (k *GetPtr) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *GetPtr) KindName() string                           { return "GetPtr" }

// GetElemPtr computes a pointer to element Index of the array Src
// points to (element-sized step over the pointee array's element
// type, distinct from GetPtr's step over the pointee type itself).
type GetElemPtr struct {
	Src   Value
	Index Value
}

func (k *GetElemPtr) Operands(dst []*Value) []*Value {
	return append(dst, &k.Src, &k.Index)
}
func (k *GetElemPtr) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *GetElemPtr) KindName() string                           { return "GetElemPtr" }

// ---- Arithmetic ---------------------------------------------------------

// BinaryOp names a Binary instruction's operator.
type BinaryOp int

const (
	BinaryNotEq BinaryOp = iota
	BinaryEq
	BinaryGt
	BinaryLt
	BinaryGe
	BinaryLe
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryShl
	BinaryShr
	BinarySar
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryNotEq:
		return "ne"
	case BinaryEq:
		return "eq"
	case BinaryGt:
		return "gt"
	case BinaryLt:
		return "lt"
	case BinaryGe:
		return "ge"
	case BinaryLe:
		return "le"
	case BinaryAdd:
		return "add"
	case BinarySub:
		return "sub"
	case BinaryMul:
		return "mul"
	case BinaryDiv:
		return "div"
	case BinaryMod:
		return "mod"
	case BinaryAnd:
		return "and"
	case BinaryOr:
		return "or"
	case BinaryXor:
		return "xor"
	case BinaryShl:
		return "shl"
	case BinaryShr:
		return "shr"
	case BinarySar:
		return "sar"
	default:
		return "?"
	}
}

// Binary applies Op to Lhs and Rhs, both Int32.
type Binary struct {
	Op       BinaryOp
	Lhs, Rhs Value
}

func (k *Binary) Operands(dst []*Value) []*Value {
	return append(dst, &k.Lhs, &k.Rhs)
}
func (k *Binary) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Binary) KindName() string                           { return "Binary" }

// ---- Control flow --------------------------------------------------------

// Branch conditionally transfers control to True (passing TrueArgs) or
// False (passing FalseArgs), depending on Cond.
type Branch struct {
	Cond      Value
	True      BasicBlock
	False     BasicBlock
	TrueArgs  []Value
	FalseArgs []Value
}

func (k *Branch) Operands(dst []*Value) []*Value {
	dst = append(dst, &k.Cond)
	for i := range k.TrueArgs {
		dst = append(dst, &k.TrueArgs[i])
	}
	for i := range k.FalseArgs {
		dst = append(dst, &k.FalseArgs[i])
	}
	return dst
}
func (k *Branch) BBOperands(dst []*BasicBlock) []*BasicBlock {
	return append(dst, &k.True, &k.False)
}
func (k *Branch) KindName() string { return "Branch" }

// Jump unconditionally transfers control to Target, passing Args.
type Jump struct {
	Target BasicBlock
	Args   []Value
}

func (k *Jump) Operands(dst []*Value) []*Value {
	for i := range k.Args {
		dst = append(dst, &k.Args[i])
	}
	return dst
}
func (k *Jump) BBOperands(dst []*BasicBlock) []*BasicBlock {
	return append(dst, &k.Target)
}
func (k *Jump) KindName() string { return "Jump" }

// Call invokes Callee with Args. The value's own type is Callee's
// return type (possibly Unit).
type Call struct {
	Callee Function
	Args   []Value
}

func (k *Call) Operands(dst []*Value) []*Value {
	for i := range k.Args {
		dst = append(dst, &k.Args[i])
	}
	return dst
}
func (k *Call) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Call) KindName() string                           { return "Call" }

// Return exits the enclosing function, optionally yielding Value. A
// void return leaves Value as the zero (invalid) Value handle.
type Return struct{ Value Value }

func (k *Return) Operands(dst []*Value) []*Value {
	if k.Value.IsValid() {
		return append(dst, &k.Value)
	}
	return dst
}
func (k *Return) BBOperands(dst []*BasicBlock) []*BasicBlock { return dst }
func (k *Return) KindName() string                           { return "Return" }

// isConstantKind reports whether kind denotes a compile-time constant
// (spec's is_const): Integer, ZeroInit, Undef, Aggregate. Everything
// else — including FuncArgRef/BlockArgRef, which name a runtime value
// supplied by a caller or predecessor — is not a constant.
func isConstantKind(kind ValueKind) bool {
	switch kind.(type) {
	case *Integer, *ZeroInit, *Undef, *Aggregate:
		return true
	default:
		return false
	}
}

// isInstKind reports whether kind denotes an instruction that occupies
// a Layout slot inside a basic block (spec's is_inst): every kind
// except the constants and the two ArgRef kinds, which exist only as
// named parameter slots and never as instructions in a block's body.
func isInstKind(kind ValueKind) bool {
	switch kind.(type) {
	case *Integer, *ZeroInit, *Undef, *Aggregate, *FuncArgRef, *BlockArgRef:
		return false
	default:
		return true
	}
}

// isArgRefKind reports whether kind is FuncArgRef or BlockArgRef.
func isArgRefKind(kind ValueKind) bool {
	switch kind.(type) {
	case *FuncArgRef, *BlockArgRef:
		return true
	default:
		return false
	}
}
