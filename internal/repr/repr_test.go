package repr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", "''"},
		{"abc", "'abc'"},
		{`a\.b`, `'a\\.b'`},
		{"it's", `"it's"`},
		{`both ' and "`, `'both \' and "'`},
		{"tab\there", `'tab\there'`},
		{"line\nbreak", `'line\nbreak'`},
		{"nul\x00byte", `'nul\x00byte'`},
		{"über", "'über'"},
		{" ", `' '`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Repr(tt.s), "Repr(%q)", tt.s)
	}
}
