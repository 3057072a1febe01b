// Package analyze loads Go packages and builds the struct index the
// generator needs: struct fields for sole-field projection, retained syntax
// for directive scanning, and per-file import tables for resolving
// package-qualified target types.
package analyze
