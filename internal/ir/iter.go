package ir

import "github.com/pkg/errors"

// ReplaceValueWith rewrites every operand slot across dfg currently
// pointing at old to point at with instead, updating both sides'
// used_by sets to match. It walks a snapshot of old's users and
// mutates their operands in place, grounded on the
// Operands(dst []*Value) []*Value pointer-slot convention: every kind
// is rewritten the same way regardless of which variant it is.
//
// Callers building a worklist from UsedBy() first, then calling this,
// get a stable view even though this function mutates the very map
// UsedBy() read from — the worklist is a snapshot, not a live
// iterator.
func ReplaceValueWith(dfg *DataFlowGraph, old, with Value) error {
	oldData, err := dfg.Value(old)
	if err != nil {
		return err
	}
	withData, err := dfg.Value(with)
	if err != nil {
		return err
	}
	if oldData.Type() != withData.Type() {
		return errors.Errorf("replace: %v has type %s, replacement %v has type %s", old, oldData.Type(), with, withData.Type())
	}
	users := oldData.UsedBy()

	for _, user := range users {
		ud, err := dfg.Value(user)
		if err != nil {
			return err
		}
		var ops []*Value
		ops = ud.kind.Operands(ops[:0])
		changed := false
		for _, op := range ops {
			if *op == old {
				*op = with
				changed = true
			}
		}
		if !changed {
			continue
		}
		oldData.removeUser(user)
		withData.addUser(user)
	}
	return nil
}

// ReplaceBBWith rewrites every BasicBlock operand slot across dfg
// currently pointing at old to point at with instead, the BasicBlock
// counterpart to ReplaceValueWith.
func ReplaceBBWith(dfg *DataFlowGraph, old, with BasicBlock) error {
	oldData, ok := dfg.blocks[old]
	if !ok {
		return notFound("basic block", old)
	}
	users := oldData.UsedBy()
	for _, user := range users {
		ud, err := dfg.Value(user)
		if err != nil {
			return err
		}
		var bbs []*BasicBlock
		bbs = ud.kind.BBOperands(bbs[:0])
		changed := false
		for _, bb := range bbs {
			if *bb == old {
				*bb = with
				changed = true
			}
		}
		if !changed {
			continue
		}
		oldData.removeUser(user)
		if withData, ok := dfg.blocks[with]; ok {
			withData.addUser(user)
		}
	}
	return nil
}
