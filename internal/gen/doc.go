// Package gen resolves invocations against the rule table and emits the
// generated accessor file for each package.
//
// Generation approach uses text/template + go/format for readable,
// deterministic Go code. Resolution is the only place the struct index is
// consulted, and only where Go forces it: sole-field projection needs the
// field's name (there is no ".0" in Go), and package-qualified targets need
// an import. Everything else — target/field type agreement, presence of the
// forwarded capability on the inner type — is deliberately left to the Go
// compiler when it builds the emitted code.
package gen
