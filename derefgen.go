// Package derefgen defines the accessor capabilities implemented by generated
// wrapper code.
//
// derefgen is a codegen tool that gives wrapper structs transparent
// indirection behavior: accessor methods through which the wrapper exposes
// read and write access to a value it owns, as though the wrapper itself were
// a reference to that value. Declare an invocation next to the wrapper type:
//
//	//derefgen:deref-and-mut Box1 string
//
//	type Box1 struct {
//		value string
//	}
//
// and run the generator:
//
//	go run derefgen/cmd/derefgen gen ./...
//
// It writes a deref_gen.go file into the wrapper's package:
//
//	func (b *Box1) Deref() *string    { return &b.value }
//	func (b *Box1) DerefMut() *string { return &b.value }
//
// Generated code is plain methods compiled normally. There is no reflection,
// no runtime dispatch, and no required dependency on this package: wrappers
// satisfy the interfaces below structurally, and the interface assertions the
// generator can emit are compile-time only.
//
// Besides directive comments, invocations can be declared in a derefgen.yaml
// manifest; see the manifest package for the schema.
package derefgen

// Deref is the read half of the indirection capability: the implementing
// wrapper exposes a pointer to a value of type T that it owns or can reach
// through an owned field.
type Deref[T any] interface {
	Deref() *T
}

// DerefMut is the write half of the indirection capability. Implementations
// must return a pointer to the same location as Deref; write access
// presupposes read access, so the generator never emits DerefMut without a
// Deref counterpart.
type DerefMut[T any] interface {
	DerefMut() *T
}

// View is the read half for reference-shaped targets (strings, slices).
// The returned value is a view whose validity is tied to the call: two calls
// at different times each return an independently usable view of the current
// contents.
type View[T any] interface {
	View() T
}

// ViewMut is the write half for reference-shaped targets, pairing with View.
// For slice-shaped targets the view returned by View aliases the underlying
// storage, so in-place mutation through it is observed by later View calls as
// well.
type ViewMut[T any] interface {
	SetView(T)
}
