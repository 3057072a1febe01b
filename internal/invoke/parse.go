package invoke

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DirectivePrefix introduces an invocation in a comment line.
const DirectivePrefix = "//derefgen:"

// refMarker flags a reference-shaped target in the forward form.
const refMarker = "ref"

// ParseDirective parses a single directive comment line into an Invocation.
// The line must start with DirectivePrefix. Accepted argument shapes:
//
//	<verb> <Wrapper> <Target>
//	<verb> <Wrapper> <Target> <Field>
//	<verb> <Wrapper> ref <Target>
//	<verb> <Wrapper> ref <Target> <Field>
//
// Only arity and token kinds are checked here; whether the resulting shape is
// an accepted one is decided by the rule table.
func ParseDirective(line, pos string) (*Invocation, error) {
	rest, ok := strings.CutPrefix(line, DirectivePrefix)
	if !ok {
		return nil, fmt.Errorf("not a %s directive: %q", DirectivePrefix, line)
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty directive")
	}

	verb := tokens[0]

	mode, ok := ParseMode(verb)
	if !ok {
		return nil, fmt.Errorf("unknown directive verb %q (want deref, deref-mut, deref-and-mut, or forward)", verb)
	}

	args := tokens[1:]
	if len(args) < 2 {
		return nil, fmt.Errorf("%s: want at least a wrapper type and a target type, got %d argument(s)", verb, len(args))
	}

	inv := &Invocation{
		Mode:    mode,
		Wrapper: args[0],
		Pos:     pos,
	}

	if !isValidIdent(inv.Wrapper) {
		return nil, fmt.Errorf("%s: wrapper %q is not a valid identifier", verb, inv.Wrapper)
	}

	args = args[1:]
	if args[0] == refMarker {
		inv.Ref = true
		args = args[1:]
	}

	switch len(args) {
	case 1:
		inv.Target = args[0]
	case 2:
		inv.Target = args[0]
		inv.Field = args[1]
	case 0:
		return nil, fmt.Errorf("%s: missing target type", verb)
	default:
		return nil, fmt.Errorf("%s: too many arguments (want target type and optional field name)", verb)
	}

	if inv.Target == refMarker {
		return nil, fmt.Errorf("%s: missing target type after ref marker", verb)
	}

	if inv.Field != "" && !isValidIdent(inv.Field) {
		return nil, fmt.Errorf("%s: field %q is not a valid identifier", verb, inv.Field)
	}

	return inv, nil
}

// isValidIdent performs a basic Go identifier check.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return utf8.ValidString(s)
}
