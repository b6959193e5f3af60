package rebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	p, err := Literal("go")
	require.NoError(t, err)
	assert.Equal(t, "go", p.Text())
	assert.False(t, p.FoldCase())

	p, err = Literal("a.b", "c*")
	require.NoError(t, err)
	assert.Equal(t, `a\.bc\*`, p.Text())

	p, err = Literal("1+1=2")
	require.NoError(t, err)
	assert.Equal(t, `1\+1=2`, p.Text())

	_, err = Literal()
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestLiteralContinuation(t *testing.T) {
	p, err := StringBegin().Literal("go")
	require.NoError(t, err)

	p = p.StringEnd()
	assert.Equal(t, `\Ago\z`, p.Text())
}

func TestIgnoreCase(t *testing.T) {
	p, err := IgnoreCase("Go")
	require.NoError(t, err)
	assert.Equal(t, "Go", p.Text())
	assert.True(t, p.FoldCase())

	// escaping works like Literal
	p, err = IgnoreCase("a.b")
	require.NoError(t, err)
	assert.Equal(t, `a\.b`, p.Text())

	// the tag survives further combinators
	p, err = p.Literal("x")
	require.NoError(t, err)
	assert.True(t, p.FoldCase())

	_, err = IgnoreCase()
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestEscapeMeta(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a.b", `a\.b`},
		{"(a)", `\(a\)`},
		{"[a-z]+", `\[a-z\]\+`},
		{`a\b`, `a\\b`},
		{"{2,4}", `\{2,4\}`},
		{"x|y", `x\|y`},
		{"^$", `\^\$`},
		{"100%", "100%"},
		{"über", "über"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeMeta(tt.s), "escapeMeta(%q)", tt.s)
	}
}

func TestJoin(t *testing.T) {
	a, _ := Literal("a")
	b, _ := CharSet("xy")

	p, err := Join(a, b)
	require.NoError(t, err)
	assert.Equal(t, "a[xy]", p.Text())

	_, err = Join()
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestJoinAssociativity(t *testing.T) {
	a, _ := Literal("a")
	b, _ := CharSet("xy")
	c := WhiteSpace()

	p1, err := Join(a, b)
	require.NoError(t, err)
	p1, err = p1.Join(c)
	require.NoError(t, err)

	p2, err := Join(a, b, c)
	require.NoError(t, err)

	assert.Equal(t, p2.Text(), p1.Text())
}

func TestJoinFoldCase(t *testing.T) {
	ic, err := IgnoreCase("go")
	require.NoError(t, err)

	p, err := Join(ic)
	require.NoError(t, err)
	assert.True(t, p.FoldCase())

	p, err = Capture(ic)
	require.NoError(t, err)
	assert.True(t, p.FoldCase())
}

func TestQuantifiers(t *testing.T) {
	x, _ := Literal("x")

	tests := []struct {
		name string
		fn   func(sub ...Pattern) (Pattern, error)
		want string
	}{
		{"none_or_once", NoneOrOnce, "(?:x)?"},
		{"none_or_most", NoneOrMost, "(?:x)*"},
		{"once_or_most", OnceOrMost, "(?:x)+"},
		{"none_or_least", NoneOrLeast, "(?:x)*?"},
		{"once_or_least", OnceOrLeast, "(?:x)+?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.fn(x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Text())

			_, err = tt.fn()
			assert.ErrorIs(t, err, ErrMissingArgument)
		})
	}
}

func TestQuantifierGrouping(t *testing.T) {
	// the quantifier applies to the whole fragment, not its last atom
	ab, err := Literal("ab")
	require.NoError(t, err)

	p, err := OnceOrMost(ab)
	require.NoError(t, err)
	assert.Equal(t, "(?:ab)+", p.Text())
}

func TestRepeat(t *testing.T) {
	x, _ := Literal("x")

	tests := []struct {
		name     string
		min, max int
		want     string
		err      error
	}{
		{"bounded", 2, 4, "(?:x){2,4}", nil},
		{"exact", 3, -1, "(?:x){3}", nil},
		{"min omitted", -1, 4, "(?:x){0,4}", nil},
		{"zero to zero", 0, 0, "(?:x){0,0}", nil},
		{"both omitted", -1, -1, "", ErrInvalidRange},
		{"exact one", 1, -1, "", ErrInvalidRange},
		{"exact zero", 0, -1, "", ErrInvalidRange},
		{"max less than min", 5, 2, "", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Repeat(tt.min, tt.max, x)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Text())
		})
	}

	_, err := Repeat(2, 4)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestCapture(t *testing.T) {
	a, _ := Literal("a")
	b := WhiteSpace()

	p, err := Capture(a, b)
	require.NoError(t, err)
	assert.Equal(t, `(a\s+)`, p.Text())

	_, err = Capture()
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestCharSet(t *testing.T) {
	p, err := CharSet("a-z0-9")
	require.NoError(t, err)
	assert.Equal(t, "[a-z0-9]", p.Text())

	_, err = CharSet("")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestAtoms(t *testing.T) {
	assert.Equal(t, `\s+`, WhiteSpace().Text())
	assert.Equal(t, `\s*`, OptionalSpace().Text())
	assert.Equal(t, `\A`, StringBegin().Text())
	assert.Equal(t, `\z`, StringEnd().Text())
	assert.Equal(t, `(?m:^)`, LineBegin().Text())
	assert.Equal(t, `(?m:$)`, LineEnd().Text())
}

func TestImmutability(t *testing.T) {
	p, err := Literal("a")
	require.NoError(t, err)

	q, err := p.Literal("b")
	require.NoError(t, err)

	r, err := p.Literal("c")
	require.NoError(t, err)

	assert.Equal(t, "a", p.Text())
	assert.Equal(t, "ab", q.Text())
	assert.Equal(t, "ac", r.Text())
}
