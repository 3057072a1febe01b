package test1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derefgen"
	"derefgen/examples/box"
	"derefgen/examples/named"
	"derefgen/examples/view"
)

// readThrough reads a value through any wrapper exposing T.
func readThrough[T any](w derefgen.Deref[T]) T {
	return *w.Deref()
}

// appendBang mutates through any wrapper exposing a writable string.
func appendBang(w derefgen.DerefMut[string]) {
	*w.DerefMut() += "!"
}

func TestGeneratedWrappersSatisfyCapabilities(t *testing.T) {
	b := box.NewBox1("bar")

	appendBang(b)

	require.Equal(t, "bar!", readThrough[string](b))
}

func TestNamedFieldWrapperSatisfiesCapabilities(t *testing.T) {
	l := named.NewLabel("hi", "greeting")

	assert.Equal(t, "hi", readThrough[string](l))

	c := named.NewCounter(1)

	assert.Equal(t, 1, readThrough[int](c))
}

func TestForwardingWrapperSatisfiesCapabilities(t *testing.T) {
	h := view.NewHolder(7)

	assert.Equal(t, 7, readThrough[int](h))
}

func TestViewWrapperSatisfiesViewCapability(t *testing.T) {
	var viewer derefgen.View[string] = view.NewView1("one")

	assert.Equal(t, "one", viewer.View())

	var setter derefgen.ViewMut[string] = view.NewView1("one")

	setter.SetView("two")
}
