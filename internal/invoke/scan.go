package invoke

import (
	"go/ast"
	"go/token"
	"strings"

	"derefgen/internal/diagnostic"
)

// ScanFile collects invocations from directive comments in a parsed file.
// Malformed directives become error diagnostics; well-formed ones are
// returned in source order.
func ScanFile(fset *token.FileSet, file *ast.File) ([]*Invocation, diagnostic.Diagnostics) {
	var (
		invs  []*Invocation
		diags diagnostic.Diagnostics
	)

	for _, group := range file.Comments {
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}

			pos := fset.Position(c.Pos()).String()

			inv, err := ParseDirective(c.Text, pos)
			if err != nil {
				diags.AddError("bad-directive", err.Error(), pos, "")
				continue
			}

			invs = append(invs, inv)
		}
	}

	return invs, diags
}

// ScanFiles collects invocations from all files of a package, in file order.
func ScanFiles(fset *token.FileSet, files []*ast.File) ([]*Invocation, diagnostic.Diagnostics) {
	var (
		invs  []*Invocation
		diags diagnostic.Diagnostics
	)

	for _, file := range files {
		fileInvs, fileDiags := ScanFile(fset, file)
		invs = append(invs, fileInvs...)
		diags.Merge(fileDiags)
	}

	return invs, diags
}
