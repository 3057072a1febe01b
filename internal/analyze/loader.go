package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"strconv"

	"golang.org/x/tools/go/packages"

	"derefgen/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Load loads the packages matched by the given patterns and builds their
// struct indexes. Patterns are standard Go package patterns (e.g. "./...",
// "derefgen/examples/box").
func Load(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	result := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		result = append(result, newPackage(pkg))
	}

	return result, nil
}

// newPackage builds the analyzed view of one loaded package.
func newPackage(pkg *packages.Package) *Package {
	p := &Package{
		Path:    pkg.PkgPath,
		Name:    pkg.Name,
		Structs: make(map[string]*StructInfo),
		Fset:    pkg.Fset,
		Syntax:  pkg.Syntax,
		Imports: make(map[string]string),
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	indexStructs(pkg, p)
	indexImports(pkg, p)

	return p
}

// indexStructs records every struct type declared at package scope,
// unexported ones included: wrapper types are frequently unexported.
func indexStructs(pkg *packages.Package, p *Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info := &StructInfo{Name: name}

		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			info.Fields = append(info.Fields, FieldInfo{
				Name: field.Name(),
				Type: types.TypeString(field.Type(), types.RelativeTo(pkg.Types)),
			})
		}

		p.Structs[name] = info
	}
}

// indexImports aggregates the selector qualifiers usable in this package's
// files. An explicit alias wins; otherwise the imported package's name is
// used, falling back to the path base when the name is unknown.
func indexImports(pkg *packages.Package, p *Package) {
	for _, file := range pkg.Syntax {
		for _, spec := range file.Imports {
			importPath, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}

			qualifier := ""

			switch {
			case spec.Name != nil && spec.Name.Name != "_" && spec.Name.Name != ".":
				qualifier = spec.Name.Name
			case pkg.Imports[importPath] != nil && pkg.Imports[importPath].Name != "":
				qualifier = pkg.Imports[importPath].Name
			default:
				qualifier = common.PkgAlias(importPath)
			}

			if qualifier == "" {
				continue
			}

			if _, exists := p.Imports[qualifier]; !exists {
				p.Imports[qualifier] = importPath
			}
		}
	}
}
