package invoke

import "strings"

//go:generate go tool stringer -type=Mode

// Mode identifies the top-level invocation form.
type Mode int

const (
	// ModeDeref emits only the read accessor, projecting to the field.
	ModeDeref Mode = iota
	// ModeDerefMut emits only the write accessor. It presupposes a read
	// accessor for the same location, declared separately.
	ModeDerefMut
	// ModeDerefAndMut emits the paired read and write accessors.
	ModeDerefAndMut
	// ModeForward emits paired accessors that delegate to the field's own
	// indirection capability instead of exposing the field directly.
	// Forwarding is always paired: a forwarded read without its write
	// counterpart offers nothing over direct access.
	ModeForward
)

// modeVerbs maps directive verbs to modes. The verb set is the whole
// top-level grammar; anything else is rejected at parse time.
var modeVerbs = map[string]Mode{
	"deref":         ModeDeref,
	"deref-mut":     ModeDerefMut,
	"deref-and-mut": ModeDerefAndMut,
	"forward":       ModeForward,
}

// ParseMode returns the mode for a directive verb.
func ParseMode(verb string) (Mode, bool) {
	m, ok := modeVerbs[verb]
	return m, ok
}

// Verb returns the directive verb for the mode.
func (m Mode) Verb() string {
	for verb, mode := range modeVerbs {
		if mode == m {
			return verb
		}
	}

	return ""
}

// Invocation is a single parsed declaration. It is constructed once from user
// syntax, matched against the rule table exactly once, and consumed to
// produce one generated implementation.
type Invocation struct {
	// Mode is the top-level invocation form.
	Mode Mode
	// Wrapper is the struct type receiving the accessors.
	Wrapper string
	// Target is the exposed type, written as it should appear in generated
	// code (possibly package-qualified, e.g. "big.Int").
	Target string
	// Field names the projected field. Empty means the wrapper's sole field.
	Field string
	// Ref marks the target as reference-shaped (forward mode only).
	Ref bool
	// Pos is the invocation site ("file:line:col", or the manifest path).
	Pos string
}

// Named reports whether the invocation selects an explicit field.
func (i *Invocation) Named() bool {
	return i.Field != ""
}

// String renders the invocation in directive form.
func (i *Invocation) String() string {
	parts := []string{i.Mode.Verb(), i.Wrapper}
	if i.Ref {
		parts = append(parts, "ref")
	}

	parts = append(parts, i.Target)

	if i.Field != "" {
		parts = append(parts, i.Field)
	}

	return strings.Join(parts, " ")
}
