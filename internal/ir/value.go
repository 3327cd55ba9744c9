package ir

// ValueData is the entity a Value handle refers to: its type, an
// optional debug name, its kind-specific payload, and the set of
// values that currently use it as an operand (its used_by backlink,
// kept symmetric with every kind's Operands() by the owning
// DataFlowGraph/Program — see dfg.go and program.go).
type ValueData struct {
	ty     Type
	name   string // "" means unnamed
	kind   ValueKind
	usedBy map[Value]struct{}
}

func newValueData(ty Type, kind ValueKind) *ValueData {
	return &ValueData{ty: ty, kind: kind, usedBy: make(map[Value]struct{})}
}

// Type returns the value's static type.
func (d *ValueData) Type() Type { return d.ty }

// Name returns the value's debug name, or "" if unnamed.
func (d *ValueData) Name() string { return d.name }

// Kind returns the value's kind-specific payload.
func (d *ValueData) Kind() ValueKind { return d.kind }

// IsConst reports whether d holds a compile-time constant.
func (d *ValueData) IsConst() bool { return isConstantKind(d.kind) }

// IsInst reports whether d occupies a Layout slot as an instruction.
func (d *ValueData) IsInst() bool { return isInstKind(d.kind) }

// UsedBy returns the set of values currently referencing this one as
// an operand. The returned slice is a fresh snapshot safe to range
// over while mutating the graph.
func (d *ValueData) UsedBy() []Value {
	out := make([]Value, 0, len(d.usedBy))
	for v := range d.usedBy {
		out = append(out, v)
	}
	return out
}

func (d *ValueData) addUser(user Value)    { d.usedBy[user] = struct{}{} }
func (d *ValueData) removeUser(user Value) { delete(d.usedBy, user) }

// setName validates and applies a debug name, following the Koopa
// naming rule carried over from the original implementation (spec
// §4.6 / entities.rs's check_sanity): empty clears the name, anything
// else must be at least two characters long and begin with '@' (a
// global-scope name) or '%' (a local-scope name).
func setName(name string) string {
	if name == "" {
		return ""
	}
	if len(name) < 2 {
		invalid("setName", "name %q is too short", name)
	}
	switch name[0] {
	case '@', '%':
	default:
		invalid("setName", "name %q must start with '@' or '%%'", name)
	}
	return name
}
