package gen

import (
	"fmt"
	"strings"
	"unicode"

	"derefgen/internal/analyze"
	"derefgen/internal/diagnostic"
	"derefgen/internal/invoke"
	"derefgen/internal/rule"
)

// ResolvedImpl is an invocation bound to its rule and projection, ready for
// emission.
type ResolvedImpl struct {
	Inv  *invoke.Invocation
	Rule *rule.Rule
	// Field is the resolved projection: the named field, or the wrapper's
	// sole field for the unnamed forms.
	Field string
	// TargetImport is the import path backing a package-qualified target
	// type, empty otherwise.
	TargetImport string
	// TargetAlias is the non-default qualifier the source file uses for
	// TargetImport, empty when the default package name applies.
	TargetAlias string
}

// Resolve matches every invocation against the rule table and binds its
// projection. All shape and declaration errors surface here as diagnostics;
// any error is fatal for the package. Emission order follows declaration
// order, so output is deterministic for a fixed set of sources.
func Resolve(pkg *analyze.Package, invs []*invoke.Invocation) ([]ResolvedImpl, diagnostic.Diagnostics) {
	var (
		resolved []ResolvedImpl
		diags    diagnostic.Diagnostics
	)

	// wrapper -> accessor method -> declaring position
	declared := make(map[string]map[string]string)

	for _, inv := range invs {
		r, err := rule.Match(inv)
		if err != nil {
			diags.AddError("no-rule", err.Error(), inv.Pos, inv.Wrapper)
			continue
		}

		impl := ResolvedImpl{Inv: inv, Rule: r, Field: inv.Field}

		if !inv.Named() {
			field, ok := soleField(pkg, inv)
			if !ok {
				diags.AddError("sole-field", soleFieldError(pkg, inv), inv.Pos, inv.Wrapper)
				continue
			}

			impl.Field = field
		}

		if qual := targetQualifier(inv.Target); qual != "" {
			importPath, ok := pkg.FindImport(qual)
			if !ok {
				diags.AddError("unknown-qualifier",
					fmt.Sprintf("target %s refers to package %q, which is not imported in %s", inv.Target, qual, pkg.Path),
					inv.Pos, inv.Wrapper)
				continue
			}

			impl.TargetImport = importPath
			if defaultQualifier(importPath) != qual {
				impl.TargetAlias = qual
			}
		}

		if dup := recordMethods(declared, inv.Wrapper, r.Methods, inv.Pos); dup != "" {
			diags.AddError("duplicate-accessor", dup, inv.Pos, inv.Wrapper)
			continue
		}

		resolved = append(resolved, impl)
	}

	warnLoneWriters(resolved, declared, &diags)

	return resolved, diags
}

// soleField resolves the unnamed-field projection via the struct index.
func soleField(pkg *analyze.Package, inv *invoke.Invocation) (string, bool) {
	st := pkg.Struct(inv.Wrapper)
	if st == nil {
		return "", false
	}

	field, ok := st.SoleField()

	return field.Name, ok
}

// soleFieldError explains why the sole-field form could not be bound.
func soleFieldError(pkg *analyze.Package, inv *invoke.Invocation) string {
	st := pkg.Struct(inv.Wrapper)
	if st == nil {
		return fmt.Sprintf("wrapper %s is not a struct type in package %s", inv.Wrapper, pkg.Path)
	}

	return fmt.Sprintf("wrapper %s has %d fields; the sole-field form requires exactly one (name the field explicitly)",
		inv.Wrapper, len(st.Fields))
}

// recordMethods marks the accessors an invocation emits and returns a
// non-empty message on collision with an earlier declaration.
func recordMethods(declared map[string]map[string]string, wrapper string, methods []string, pos string) string {
	if declared[wrapper] == nil {
		declared[wrapper] = make(map[string]string)
	}

	for _, m := range methods {
		if prev, exists := declared[wrapper][m]; exists {
			return fmt.Sprintf("accessor %s for %s already declared at %s", m, wrapper, prev)
		}
	}

	for _, m := range methods {
		declared[wrapper][m] = pos
	}

	return ""
}

// warnLoneWriters flags companion write invocations with no visible read
// counterpart. The Go compiler is the final authority (the read accessor may
// be hand-written), so this is a warning, not an error.
func warnLoneWriters(resolved []ResolvedImpl, declared map[string]map[string]string, diags *diagnostic.Diagnostics) {
	for _, impl := range resolved {
		if impl.Inv.Mode != invoke.ModeDerefMut {
			continue
		}

		if _, ok := declared[impl.Inv.Wrapper][rule.MethodDeref]; !ok {
			diags.AddWarning("lone-writer",
				fmt.Sprintf("deref-mut for %s has no visible deref counterpart; write access presupposes read access to the same location",
					impl.Inv.Wrapper),
				impl.Inv.Pos, impl.Inv.Wrapper)
		}
	}
}

// targetQualifier extracts the package qualifier from a target type written
// as a selector (e.g. "big" from "big.Int", also under slice or pointer
// shapes like "[]*big.Int"). Empty when the target is unqualified.
func targetQualifier(target string) string {
	t := target
	for {
		switch {
		case strings.HasPrefix(t, "*"):
			t = t[1:]
		case strings.HasPrefix(t, "[]"):
			t = t[2:]
		default:
			dot := strings.IndexByte(t, '.')
			if dot <= 0 {
				return ""
			}

			qual := t[:dot]
			for i, r := range qual {
				if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
					continue
				}

				return ""
			}

			return qual
		}
	}
}
