package rule

import (
	"testing"

	"derefgen/internal/invoke"
)

func TestMatchSelectsExpectedRule(t *testing.T) {
	tests := []struct {
		name string
		inv  invoke.Invocation
		want string
	}{
		{
			name: "deref sole field",
			inv:  invoke.Invocation{Mode: invoke.ModeDeref, Wrapper: "Box1", Target: "string"},
			want: "deref/sole-field",
		},
		{
			name: "deref named field",
			inv:  invoke.Invocation{Mode: invoke.ModeDeref, Wrapper: "Label", Target: "string", Field: "text"},
			want: "deref/named-field",
		},
		{
			name: "deref-mut sole field",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefMut, Wrapper: "Counter", Target: "int"},
			want: "deref-mut/sole-field",
		},
		{
			name: "deref-mut named field",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefMut, Wrapper: "Counter", Target: "int", Field: "n"},
			want: "deref-mut/named-field",
		},
		{
			name: "deref-and-mut sole field",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefAndMut, Wrapper: "Box1", Target: "string"},
			want: "deref-and-mut/sole-field",
		},
		{
			name: "deref-and-mut named field",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefAndMut, Wrapper: "Box1", Target: "string", Field: "value"},
			want: "deref-and-mut/named-field",
		},
		{
			name: "forward sole field",
			inv:  invoke.Invocation{Mode: invoke.ModeForward, Wrapper: "Holder", Target: "int"},
			want: "forward/sole-field",
		},
		{
			name: "forward ref sole field",
			inv:  invoke.Invocation{Mode: invoke.ModeForward, Wrapper: "View1", Target: "string", Ref: true},
			want: "forward/ref-sole-field",
		},
		{
			name: "forward named field",
			inv:  invoke.Invocation{Mode: invoke.ModeForward, Wrapper: "Holder", Target: "int", Field: "cell"},
			want: "forward/named-field",
		},
		{
			name: "forward ref named field",
			inv:  invoke.Invocation{Mode: invoke.ModeForward, Wrapper: "Raw", Target: "[]byte", Field: "buf", Ref: true},
			want: "forward/ref-named-field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Match(&tt.inv)
			if err != nil {
				t.Fatalf("Match(%s) returned error: %v", &tt.inv, err)
			}

			if r.Name != tt.want {
				t.Errorf("Match(%s) = %s, want %s", &tt.inv, r.Name, tt.want)
			}
		})
	}
}

func TestMatchRejectsUnacceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		inv  invoke.Invocation
	}{
		{
			name: "ref marker on deref",
			inv:  invoke.Invocation{Mode: invoke.ModeDeref, Wrapper: "Box1", Target: "string", Ref: true},
		},
		{
			name: "ref marker on deref-mut",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefMut, Wrapper: "Box1", Target: "string", Ref: true},
		},
		{
			name: "ref marker on deref-and-mut",
			inv:  invoke.Invocation{Mode: invoke.ModeDerefAndMut, Wrapper: "Box1", Target: "string", Ref: true},
		},
		{
			name: "missing wrapper",
			inv:  invoke.Invocation{Mode: invoke.ModeDeref, Target: "string"},
		},
		{
			name: "missing target",
			inv:  invoke.Invocation{Mode: invoke.ModeDeref, Wrapper: "Box1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Match(&tt.inv); err == nil {
				t.Errorf("Match(%s) accepted an invalid shape", &tt.inv)
			}
		})
	}
}

func TestTableShapesAreMutuallyExclusive(t *testing.T) {
	type shape struct {
		mode  invoke.Mode
		ref   bool
		named bool
	}

	seen := make(map[shape]string)

	for _, r := range Table {
		s := shape{mode: r.Mode, ref: r.Ref, named: r.Named}
		if prev, ok := seen[s]; ok {
			t.Errorf("rules %s and %s share a shape", prev, r.Name)
		}

		seen[s] = r.Name
	}
}

func TestForwardingIsAlwaysPaired(t *testing.T) {
	for _, r := range Table {
		if r.Mode == invoke.ModeForward && !r.Paired() {
			t.Errorf("rule %s forwards but is not paired", r.Name)
		}
	}
}

func TestWriteAccessorNeverAloneExceptCompanion(t *testing.T) {
	for _, r := range Table {
		emitsWrite := false
		emitsRead := false

		for _, m := range r.Methods {
			switch m {
			case MethodDerefMut, MethodSetView:
				emitsWrite = true
			case MethodDeref, MethodView:
				emitsRead = true
			}
		}

		if emitsWrite && !emitsRead && r.Mode != invoke.ModeDerefMut {
			t.Errorf("rule %s emits a lone write accessor", r.Name)
		}
	}
}
