package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsLifecycle(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("lone-writer", "no read counterpart", "demo.go:3:1", "Counter")
	assert.True(t, d.IsValid())

	d.AddError("no-rule", "ref marker on deref", "demo.go:5:1", "Box1")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.Error(t, d.Error())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("no-rule", "first", "a.go:1:1", "")
	b.AddError("no-rule", "second", "b.go:1:1", "")
	b.AddInfo("note", "info", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{Code: "sole-field", Message: "two fields", Pos: "demo.go:3:1", Wrapper: "Pair"},
			want: "demo.go:3:1 Pair: [sole-field] two fields",
		},
		{
			name: "bare message",
			diag: Diagnostic{Message: "oops"},
			want: "oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
