// Package rule holds the ordered table of accepted invocation shapes and the
// matcher that selects exactly one rule per invocation.
//
// Shapes are mutually exclusive by mode, reference-marker presence, and field
// selector presence, so matching is a pure function of the invocation's shape
// and needs no tie-breaking. An invocation whose shape appears nowhere in the
// table is rejected; the caller treats that as a fatal diagnostic.
package rule
