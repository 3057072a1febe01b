package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"unicode"

	"derefgen/internal/analyze"
	"derefgen/internal/common"
	"derefgen/internal/rule"
)

// capabilityPkg is the import path of the capability interfaces used in
// emitted assertions.
const capabilityPkg = "derefgen"

// Config holds configuration for code generation.
type Config struct {
	// OutputFile is the name of the generated file written into each package.
	OutputFile string
	// EmitAssertions emits compile-time interface assertions for each impl.
	EmitAssertions bool
	// GenerateComments emits doc comments on generated methods.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		OutputFile:       "deref_gen.go",
		EmitAssertions:   true,
		GenerateComments: true,
	}
}

// Generator emits accessor code for resolved invocations.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file within the package directory.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits the accessor file for one package. It returns nil when
// there is nothing to emit. Emission is purely textual: the resolved
// invocations fully determine the output.
func (g *Generator) Generate(pkg *analyze.Package, resolved []ResolvedImpl) (*GeneratedFile, error) {
	if len(resolved) == 0 {
		return nil, nil
	}

	data, err := g.buildFileData(pkg, resolved)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if pkg.Dir != "" {
			_ = writeDebugUnformatted(pkg.Dir, g.config.OutputFile, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.OutputFile,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: g.config.OutputFile,
		Content:  formatted,
	}, nil
}

// buildFileData assembles the template input for one package.
func (g *Generator) buildFileData(pkg *analyze.Package, resolved []ResolvedImpl) (*fileData, error) {
	data := &fileData{PackageName: pkg.Name}

	// The capability package cannot assert against itself.
	emitAssertions := g.config.EmitAssertions && pkg.Path != capabilityPkg

	imports := make(map[string]importSpec)

	for _, impl := range resolved {
		if impl.TargetImport != "" {
			imports[impl.TargetImport] = importSpec{
				Alias: impl.TargetAlias,
				Path:  impl.TargetImport,
			}
		}

		md := methodData{
			Recv:    receiverName(impl.Inv.Wrapper),
			Wrapper: impl.Inv.Wrapper,
			Target:  impl.Inv.Target,
			Field:   impl.Field,
			Comment: g.config.GenerateComments,
		}

		family := "direct"
		if impl.Rule.Forwarding() {
			family = "forward"
		}

		for _, method := range impl.Rule.Methods {
			rendered, err := renderMethod(family+"."+method, md)
			if err != nil {
				return nil, err
			}

			data.Methods = append(data.Methods, rendered)

			if emitAssertions {
				data.Assertions = append(data.Assertions, assertionData{
					Iface:   fmt.Sprintf("%s.%s[%s]", capabilityPkg, assertionIface(method), impl.Inv.Target),
					Wrapper: impl.Inv.Wrapper,
				})
			}
		}
	}

	if emitAssertions {
		imports[capabilityPkg] = importSpec{Path: capabilityPkg}
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data, nil
}

// renderMethod executes the named method template.
func renderMethod(key string, md methodData) (string, error) {
	tmpl, ok := methodTemplates[key]
	if !ok {
		return "", fmt.Errorf("no template for %s", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, md); err != nil {
		return "", fmt.Errorf("executing template %s: %w", key, err)
	}

	return buf.String(), nil
}

// assertionIface maps an accessor method to the capability interface it
// satisfies.
func assertionIface(method string) string {
	if method == rule.MethodSetView {
		return "ViewMut"
	}

	return method
}

// receiverName derives the receiver variable from the wrapper name: its
// first letter, lower-cased.
func receiverName(wrapper string) string {
	for _, r := range wrapper {
		if unicode.IsLetter(r) {
			return strings.ToLower(string(r))
		}

		break
	}

	return "w"
}

// defaultQualifier returns the selector qualifier an import path gets when
// imported without an alias.
func defaultQualifier(importPath string) string {
	return common.PkgAlias(importPath)
}
