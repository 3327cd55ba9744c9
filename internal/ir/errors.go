package ir

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the lookup-failure and removal-guard categories
// from spec §7. Callers should compare with errors.Is; this package
// wraps them with github.com/pkg/errors so a returned error keeps a
// stack trace back to the call that produced it.
var (
	// ErrNotFound is returned when a handle names an entity that does
	// not exist in the graph being queried (spec §7 "lookup failures").
	ErrNotFound = errors.New("koopa/ir: handle not found")

	// ErrStillInUse is returned when removing a Value/BasicBlock whose
	// used_by set is non-empty (spec invariant 7).
	ErrStillInUse = errors.New("koopa/ir: value still in use")

	// ErrStillInLayout is returned by FunctionData.RemoveBB when the
	// basic block still occupies a slot in the function's Layout.
	ErrStillInLayout = errors.New("koopa/ir: basic block still present in layout")

	// ErrGlobalsBorrowed is returned by Program.NewValue/RemoveValue
	// while a snapshot from BorrowValues has not yet been released
	// (spec §5's reentrancy-is-a-lookup-failure rule).
	ErrGlobalsBorrowed = errors.New("koopa/ir: global value map is borrowed")
)

// ConstructionError marks a violation of a construction precondition
// (spec §7's "construction violations" category): malformed names,
// arity/type mismatches, a Unit function parameter, Layout misuse, and
// so on. These are programmer errors. The package surfaces them by
// panicking with a *ConstructionError so a recovering caller can
// distinguish "a bug in how I'm building this IR" from an unrelated
// runtime panic. The Interner's own Unit checks (ArrayOf, FunctionOf,
// BasicBlockOf) panic with a plain string instead, and removing a
// still-used or still-laid-out value or block through the DFG,
// FunctionData or Program returns ErrStillInUse or ErrStillInLayout
// rather than panicking.
type ConstructionError struct {
	Op      string
	Message string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("koopa/ir: %s: %s", e.Op, e.Message)
}

// invalid panics with a *ConstructionError. It is the one place
// DFG, Program and Layout construction code raises a violation, keeping the
// "loud and immediate" policy from spec §7/§9 in a single spot.
func invalid(op, format string, args ...any) {
	panic(&ConstructionError{Op: op, Message: fmt.Sprintf(format, args...)})
}

func notFound(what string, id any) error {
	return errors.Wrapf(ErrNotFound, "%s %v", what, id)
}
