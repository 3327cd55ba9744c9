package ir

import "strconv"

// Value is a cheap, copyable handle to a ValueData owned by some
// DataFlowGraph (or by Program, for globals). It does not own its
// referent: once the referent is removed, the handle simply becomes
// "not found" on lookup (spec §7) rather than dangling memory.
type Value struct{ id uint64 }

// IsValid reports whether v was ever minted. It says nothing about
// whether the value still exists — use a DataFlowGraph/Program lookup
// for that.
func (v Value) IsValid() bool { return v.id != 0 }

func (v Value) String() string { return "%v" + strconv.FormatUint(v.id, 10) }

// BasicBlock is a cheap, copyable handle to a BasicBlockData owned by
// some DataFlowGraph.
type BasicBlock struct{ id uint64 }

// IsValid reports whether bb was ever minted.
func (bb BasicBlock) IsValid() bool { return bb.id != 0 }

func (bb BasicBlock) String() string { return "%bb" + strconv.FormatUint(bb.id, 10) }

// Function is a cheap, copyable handle to a FunctionData owned by a
// Program.
type Function struct{ id uint64 }

// IsValid reports whether f was ever minted.
func (f Function) IsValid() bool { return f.id != 0 }

func (f Function) String() string { return "%fn" + strconv.FormatUint(f.id, 10) }
