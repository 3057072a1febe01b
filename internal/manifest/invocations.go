package manifest

import (
	"fmt"
	"path"
	"strings"

	"derefgen/internal/invoke"
)

// Invocation converts a declaration into the common invocation form. The
// reported position is the manifest path, so diagnostics point at the file
// the user edits.
func (d ImplDecl) Invocation(manifestPath string) (*invoke.Invocation, error) {
	mode, ok := invoke.ParseMode(d.Mode)
	if !ok {
		return nil, fmt.Errorf("impl %s: unknown mode %q (want deref, deref-mut, deref-and-mut, or forward)", d.Wrapper, d.Mode)
	}

	if d.Wrapper == "" {
		return nil, fmt.Errorf("impl with mode %s: missing wrapper", d.Mode)
	}

	if d.Target == "" {
		return nil, fmt.Errorf("impl %s: missing target", d.Wrapper)
	}

	return &invoke.Invocation{
		Mode:    mode,
		Wrapper: d.Wrapper,
		Target:  d.Target,
		Field:   d.Field,
		Ref:     d.Ref,
		Pos:     manifestPath,
	}, nil
}

// Matches reports whether the declaration's path refers to the package with
// the given import path. A ./relative path matches by trailing import path
// elements, so "./examples/box" matches "derefgen/examples/box".
func (p PackageDecl) Matches(pkgPath string) bool {
	declared := strings.TrimPrefix(path.Clean(p.Path), "./")

	return declared == pkgPath || strings.HasSuffix(pkgPath, "/"+declared)
}
