package analyze

import (
	"go/ast"
	"go/token"

	"derefgen/internal/common"
)

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name string // Go field name
	Type string // declared type, for diagnostics
}

// StructInfo describes a struct type declared in a loaded package.
type StructInfo struct {
	Name   string
	Fields []FieldInfo
}

// SoleField returns the struct's only field. It returns false when the
// struct does not have exactly one field, in which case the sole-field
// invocation form is ambiguous and the field must be named explicitly.
func (s *StructInfo) SoleField() (FieldInfo, bool) {
	if !common.IsSingle(s.Fields) {
		return FieldInfo{}, false
	}

	return common.First(s.Fields)
}

// Package holds the analyzed view of a single loaded package.
type Package struct {
	// Path is the import path, Name the package name, Dir the source directory.
	Path string
	Name string
	Dir  string
	// Structs indexes struct types declared in the package by name.
	Structs map[string]*StructInfo
	// Fset and Syntax retain positions and parsed files for directive scanning.
	Fset   *token.FileSet
	Syntax []*ast.File
	// Imports maps selector qualifiers (alias or package name) to import
	// paths, aggregated over all files of the package.
	Imports map[string]string
}

// Struct returns the struct index entry for name, or nil.
func (p *Package) Struct(name string) *StructInfo {
	return p.Structs[name]
}

// FindImport resolves a selector qualifier (as written in a target type, e.g.
// the "big" of "big.Int") to the import path it refers to in this package.
func (p *Package) FindImport(qualifier string) (string, bool) {
	path, ok := p.Imports[qualifier]
	return path, ok
}
