package manifest

// Manifest is the root of a derefgen.yaml file.
type Manifest struct {
	// Version of the manifest schema. Defaults to "1".
	Version string `yaml:"version"`
	// Packages lists per-package invocation declarations.
	Packages []PackageDecl `yaml:"packages"`
}

// PackageDecl groups invocation declarations for one package.
type PackageDecl struct {
	// Path is the package the impls apply to, as an import path or a
	// ./relative directory.
	Path string `yaml:"path"`
	// Impls are the declared invocations.
	Impls []ImplDecl `yaml:"impls"`
}

// ImplDecl is one declared invocation. It carries the same attributes as a
// directive comment.
type ImplDecl struct {
	Wrapper string `yaml:"wrapper"`
	Mode    string `yaml:"mode"`
	Target  string `yaml:"target"`
	Field   string `yaml:"field,omitempty"`
	Ref     bool   `yaml:"ref,omitempty"`
}
