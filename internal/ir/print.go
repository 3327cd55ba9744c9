package ir

import (
	"strconv"
	"strings"
)

// typeString renders t using the diagnostic grammar from spec §6:
//
//	i32, unit
//	T[N]
//	*T
//	(T1, T2, ..., Tn) for a function type, prefixed by the return type
//	if present (a Unit return is "not present").
//
// BasicBlock types print as the bare parameter tuple; they have no
// grammar of their own in spec §6, and a tuple is the natural reading
// of "the types of this block's parameters".
func typeString(t Type) string {
	switch t.Kind() {
	case KindUnit:
		return "unit"
	case KindInt32:
		return "i32"
	case KindArray:
		return t.Elem().String() + "[" + strconv.Itoa(t.Len()) + "]"
	case KindPointer:
		return "*" + t.Elem().String()
	case KindFunction:
		ret := t.Ret()
		if ret.IsUnit() {
			return tupleString(t.Params())
		}
		return ret.String() + tupleString(t.Params())
	case KindBasicBlock:
		return tupleString(t.Params())
	default:
		return "?"
	}
}

func tupleString(params []Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}
