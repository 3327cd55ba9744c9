// Package ir implements the Koopa intermediate representation: a
// small, hash-consed type system and a mutable SSA-style program model
// (functions, basic blocks, values) with an automatically maintained
// use-def graph.
//
// WHAT IS THIS PACKAGE FOR?
// It is the substrate other compiler components build on: a frontend
// constructs a Program by calling into a DataFlowGraph's builders, an
// optimizer rewrites it through ReplaceValueWith/RemoveValue, and a
// code generator walks the finished Layout. None of those other
// components live here — this package only owns construction,
// inspection and mutation of the graph itself.
//
// DESIGN PHILOSOPHY:
// Values, basic blocks and functions are addressed through small
// copyable handles (Value, BasicBlock, Function) backed by monotonic
// ids, not through pointers or reference-counted cells. Handle
// indirection turns the inherently cyclic use-def graph (a value
// points at its operands; operands point back at their users) into an
// ordinary acyclic ownership tree rooted at Program, which is what
// lets construction, replacement and removal stay simple and loud
// about misuse instead of needing runtime borrow-checking.
package ir
