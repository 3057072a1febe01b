// Package invoke defines the invocation data model and the directive
// scanner/parser.
//
// An invocation is a single user declaration asking for accessor generation on
// a wrapper type. Invocations come from //derefgen: directive comments in Go
// source or from a derefgen.yaml manifest; both surfaces produce the same
// Invocation value, which is then matched against the rule table exactly once
// and consumed by emission.
package invoke
