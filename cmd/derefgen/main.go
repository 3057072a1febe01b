// Package main provides the CLI entrypoint for derefgen.
//
// derefgen expands accessor invocations into generated code:
//   - Scans Go packages for //derefgen: directives (and an optional YAML manifest)
//   - Matches each invocation against the rule table
//   - Emits a deref_gen.go file per package via text/template + gofmt
package main

import (
	"os"

	"github.com/spf13/cobra"

	"derefgen/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options carries the flag values shared by all commands.
type options struct {
	manifestPath string
	verbose      bool
	config       gen.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{config: gen.DefaultConfig()}

	root := &cobra.Command{
		Use:   "derefgen [command]",
		Short: "Generate transparent indirection accessors for wrapper types",
		Long: `derefgen generates accessor methods that let a wrapper struct expose read
and write access to a value it owns, as though the wrapper itself were a
reference to that value.

Invocations are declared as //derefgen: directives in Go source or in a YAML
manifest, matched against a fixed rule table, and expanded into a generated
file in the wrapper's package.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.manifestPath, "manifest", "",
		"YAML manifest declaring additional invocations")
	root.PersistentFlags().StringVar(&opts.config.OutputFile, "output", opts.config.OutputFile,
		"name of the generated file in each package")
	root.PersistentFlags().BoolVar(&opts.config.EmitAssertions, "assertions", opts.config.EmitAssertions,
		"emit compile-time interface assertions for generated accessors")
	root.PersistentFlags().BoolVar(&opts.config.GenerateComments, "comments", opts.config.GenerateComments,
		"emit doc comments on generated methods")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"dump parsed invocations")

	root.AddCommand(newGenCmd(opts), newCheckCmd(opts), newListCmd(opts))

	return root
}
