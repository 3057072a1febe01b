package rule

import (
	"fmt"

	"derefgen/internal/invoke"
)

// Accessor method names emitted by rules.
const (
	MethodDeref    = "Deref"
	MethodDerefMut = "DerefMut"
	MethodView     = "View"
	MethodSetView  = "SetView"
)

// Rule pairs an invocation shape with its emission. The shape is the triple
// (mode, ref marker, field selector); Methods lists the accessor methods the
// rule emits, in emission order.
type Rule struct {
	// Name identifies the rule in diagnostics and selects its templates.
	Name string
	// Mode, Ref, and Named form the shape pattern.
	Mode  invoke.Mode
	Ref   bool
	Named bool
	// Methods are the accessors emitted for a matched invocation.
	Methods []string
}

// Forwarding reports whether the rule delegates to the field's own
// indirection capability instead of projecting to the field.
func (r *Rule) Forwarding() bool {
	return r.Mode == invoke.ModeForward
}

// Paired reports whether the rule emits both halves of a capability.
func (r *Rule) Paired() bool {
	return len(r.Methods) == 2
}

// Table is the exhaustive, ordered rule set. Direct rules project straight to
// the field; forward rules delegate; ref-marked forward rules emit the
// per-call view pair instead of the pointer pair. The companion deref-mut
// rules emit a lone write accessor and rely on a separately declared read
// accessor for the same location.
var Table = []Rule{
	{Name: "deref/sole-field", Mode: invoke.ModeDeref, Methods: []string{MethodDeref}},
	{Name: "deref/named-field", Mode: invoke.ModeDeref, Named: true, Methods: []string{MethodDeref}},
	{Name: "deref-mut/sole-field", Mode: invoke.ModeDerefMut, Methods: []string{MethodDerefMut}},
	{Name: "deref-mut/named-field", Mode: invoke.ModeDerefMut, Named: true, Methods: []string{MethodDerefMut}},
	{Name: "deref-and-mut/sole-field", Mode: invoke.ModeDerefAndMut, Methods: []string{MethodDeref, MethodDerefMut}},
	{Name: "deref-and-mut/named-field", Mode: invoke.ModeDerefAndMut, Named: true, Methods: []string{MethodDeref, MethodDerefMut}},
	{Name: "forward/sole-field", Mode: invoke.ModeForward, Methods: []string{MethodDeref, MethodDerefMut}},
	{Name: "forward/ref-sole-field", Mode: invoke.ModeForward, Ref: true, Methods: []string{MethodView, MethodSetView}},
	{Name: "forward/named-field", Mode: invoke.ModeForward, Named: true, Methods: []string{MethodDeref, MethodDerefMut}},
	{Name: "forward/ref-named-field", Mode: invoke.ModeForward, Ref: true, Named: true, Methods: []string{MethodView, MethodSetView}},
}

// Match selects the single rule whose shape the invocation has. Matching is
// top-down over Table; by construction at most one entry can match. A nil
// rule is never returned together with a nil error.
func Match(inv *invoke.Invocation) (*Rule, error) {
	if inv.Wrapper == "" {
		return nil, fmt.Errorf("invocation has no wrapper type")
	}

	if inv.Target == "" {
		return nil, fmt.Errorf("invocation has no target type")
	}

	for i := range Table {
		r := &Table[i]
		if r.Mode == inv.Mode && r.Ref == inv.Ref && r.Named == inv.Named() {
			return r, nil
		}
	}

	if inv.Ref {
		return nil, fmt.Errorf(
			"%s does not accept a ref marker; reference-shaped targets are only supported by forward",
			inv.Mode.Verb(),
		)
	}

	return nil, fmt.Errorf("invocation %q matches no rule", inv)
}
