// Package diagnostic provides structured error, warning, and info messages
// collected while resolving and expanding invocations.
package diagnostic
