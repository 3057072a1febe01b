package main

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"derefgen/internal/analyze"
	"derefgen/internal/diagnostic"
	"derefgen/internal/gen"
	"derefgen/internal/invoke"
	"derefgen/internal/manifest"
)

// packageRun is one package together with its collected invocations.
type packageRun struct {
	Pkg  *analyze.Package
	Invs []*invoke.Invocation
}

func newGenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate accessor files",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := collect(cmd, args, opts)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(opts.config)

			for _, run := range runs {
				file, err := expand(cmd, g, run)
				if err != nil {
					return err
				}

				if file == nil {
					continue
				}

				if err := gen.WriteFile(file, run.Pkg.Dir); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Join(run.Pkg.Dir, file.Filename))
			}

			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify generated files are up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := collect(cmd, args, opts)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(opts.config)

			var stale []string

			for _, run := range runs {
				file, err := expand(cmd, g, run)
				if err != nil {
					return err
				}

				if file == nil {
					continue
				}

				isStale, err := gen.Stale(file, run.Pkg.Dir)
				if err != nil {
					return err
				}

				if isStale {
					stale = append(stale, filepath.Join(run.Pkg.Dir, file.Filename))
				}
			}

			if len(stale) > 0 {
				return fmt.Errorf("stale generated files (run derefgen gen): %v", stale)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "all generated files are up to date")

			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [packages]",
		Short: "List discovered invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := collect(cmd, args, opts)
			if err != nil {
				return err
			}

			for _, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", run.Pkg.Path)

				for _, inv := range run.Invs {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t(%s)\n", inv, inv.Pos)
				}

				if opts.verbose {
					spew.Fdump(cmd.ErrOrStderr(), run.Invs)
				}
			}

			return nil
		},
	}
}

// expand resolves one package's invocations and generates its file. Warnings
// are printed; any resolution error is fatal for the run.
func expand(cmd *cobra.Command, g *gen.Generator, run packageRun) (*gen.GeneratedFile, error) {
	resolved, diags := gen.Resolve(run.Pkg, run.Invs)

	printWarnings(cmd, diags)

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	file, err := g.Generate(run.Pkg, resolved)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", run.Pkg.Path, err)
	}

	return file, nil
}

// collect loads packages, scans directives, and merges manifest declarations.
// Packages with no invocations are dropped. Scan and manifest errors are
// fatal.
func collect(cmd *cobra.Command, patterns []string, opts *options) ([]packageRun, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	pkgs, err := analyze.Load(patterns...)
	if err != nil {
		return nil, err
	}

	var m *manifest.Manifest
	if opts.manifestPath != "" {
		m, err = manifest.LoadFile(opts.manifestPath)
		if err != nil {
			return nil, err
		}
	}

	var (
		runs []packageRun
		all  diagnostic.Diagnostics
	)

	matched := make(map[string]bool)

	for _, pkg := range pkgs {
		invs, diags := invoke.ScanFiles(pkg.Fset, pkg.Syntax)

		if m != nil {
			for _, decl := range m.Packages {
				if !decl.Matches(pkg.Path) {
					continue
				}

				matched[decl.Path] = true

				for _, impl := range decl.Impls {
					inv, err := impl.Invocation(opts.manifestPath)
					if err != nil {
						diags.AddError("bad-manifest", err.Error(), opts.manifestPath, impl.Wrapper)
						continue
					}

					invs = append(invs, inv)
				}
			}
		}

		all.Merge(diags)

		if len(invs) > 0 {
			runs = append(runs, packageRun{Pkg: pkg, Invs: invs})
		}
	}

	if m != nil {
		for _, decl := range m.Packages {
			if !matched[decl.Path] {
				all.AddWarning("unmatched-package",
					fmt.Sprintf("manifest package %q matches none of the loaded packages", decl.Path),
					opts.manifestPath, "")
			}
		}
	}

	printWarnings(cmd, all)

	if all.HasErrors() {
		return nil, all.Error()
	}

	return runs, nil
}

// printWarnings writes warning diagnostics to stderr.
func printWarnings(cmd *cobra.Command, diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
}
