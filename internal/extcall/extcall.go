// Package extcall implements the foreign-call contract named by the
// core IR's external interpreter collaborator: resolving a declared
// function's symbol name, marshalling IR values to and from machine
// words, and enforcing the positional-arity cap. It does not load
// shared libraries or cross into C ABI calls itself — that belongs to
// whatever interpreter embeds this package — it only implements the
// contract's shape so the core IR's Function/Type API has somewhere
// concrete to plug into.
package extcall

import (
	"github.com/pkg/errors"

	"github.com/koopa-ir/koopa/internal/ir"
)

// MaxArgs is the positional-argument cap the contract enforces.
// Matches the reference interpreter's argument dispatch table, which
// stops at 28 and reports failure beyond it.
const MaxArgs = 28

// ErrArgCountExceeded is returned when a call names more than MaxArgs
// arguments.
var ErrArgCountExceeded = errors.New("extcall: argument number exceeded the maximum supported count")

// ErrSymbolNotFound is returned when a Resolver has no callable for a
// requested symbol.
var ErrSymbolNotFound = errors.New("extcall: symbol not found")

// Word is a single machine word as the foreign ABI would see it: wide
// enough to hold a 64-bit pointer or a sign-extended 32-bit integer.
type Word uint64

// Callable is a resolved foreign function: it takes already-marshalled
// argument words and returns a single result word. Interpreters
// embedding this package supply the actual platform C ABI call; this
// package only prepares and validates the words going in and out.
type Callable func(args []Word) (Word, error)

// Resolver maps a stripped symbol name to a Callable, searching
// whatever ordered list of dynamic libraries the embedding
// interpreter configured.
type Resolver interface {
	Resolve(symbol string) (Callable, bool)
}

// MapResolver is an in-memory Resolver, useful for tests and for
// interpreters that register builtins instead of loading real
// shared objects.
type MapResolver map[string]Callable

// Resolve implements Resolver.
func (m MapResolver) Resolve(symbol string) (Callable, bool) {
	fn, ok := m[symbol]
	return fn, ok
}

// SymbolName strips the leading '@' (global scope) naming sigil from
// a Koopa function name to produce the symbol the dynamic loader
// would export, matching the reference interpreter's
// `&func.name()[1..]` slicing.
func SymbolName(funcName string) (string, error) {
	if len(funcName) < 2 || funcName[0] != '@' {
		return "", errors.Errorf("extcall: %q is not a valid global function name", funcName)
	}
	return funcName[1:], nil
}

// Invoke resolves decl's symbol via r, marshals each of args into a
// word according to its own kind (see toWord), calls the resolved
// Callable, and returns the raw result word; FromWord converts that
// word according to decl's declared return type.
// decl must be a declaration (Koopa function with no body): this
// package only ever crosses into genuinely external code, never a
// Koopa-defined function.
func Invoke(r Resolver, decl *ir.FunctionData, args []ir.Value, get func(ir.Value) (*ir.ValueData, error)) (Word, error) {
	if !decl.IsDeclaration() {
		return 0, errors.Errorf("extcall: %s is not a foreign declaration", decl.Name())
	}
	if len(args) > MaxArgs {
		return 0, ErrArgCountExceeded
	}
	symbol, err := SymbolName(decl.Name())
	if err != nil {
		return 0, err
	}
	fn, ok := r.Resolve(symbol)
	if !ok {
		return 0, errors.Wrapf(ErrSymbolNotFound, "symbol %q", symbol)
	}

	words := make([]Word, len(args))
	for i, a := range args {
		data, err := get(a)
		if err != nil {
			return 0, errors.Wrapf(err, "marshalling argument %d", i)
		}
		words[i], err = toWord(data)
		if err != nil {
			return 0, errors.Wrapf(err, "marshalling argument %d", i)
		}
	}

	result, err := fn(words)
	if err != nil {
		return 0, errors.Wrap(err, "foreign call failed")
	}
	return result, nil
}

// toWord marshals an IR constant into a machine word following the
// reference interpreter's val_to_usize rules: an Int32 sign-extends
// into the word, Undef/ZeroInit become zero, and Array/Pointer values
// contribute their (opaque, interpreter-tracked) address — which this
// package, having no memory of its own, cannot produce and reports as
// an error instead of fabricating one.
func toWord(data *ir.ValueData) (Word, error) {
	switch k := data.Kind().(type) {
	case *ir.Integer:
		return Word(uint64(int64(k.Val))), nil
	case *ir.Undef, *ir.ZeroInit:
		return 0, nil
	default:
		if data.Type().IsPointer() || data.Type().IsArray() {
			return 0, errors.New("extcall: pointer/array argument marshalling requires an interpreter-owned address table")
		}
		return 0, errors.Errorf("extcall: value of kind %T is not a valid foreign-call argument", k)
	}
}

// FromWord unmarshals a foreign call's result word back into a Koopa
// constant according to ret: an Int32 return reads the word as a
// sign-extended integer, a Unit return discards it, and a
// pointer/array return is left to the interpreter (same limitation as
// toWord).
func FromWord(ret ir.Type, w Word) (kind string, value int32, ok bool) {
	switch {
	case ret.IsInt32():
		return "integer", int32(uint32(w)), true
	case ret.IsUnit():
		return "undef", 0, true
	default:
		return "", 0, false
	}
}
