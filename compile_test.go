package rebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileFull compiles p anchored at both ends of the subject.
func compileFull(t *testing.T, p Pattern) Regexp {
	t.Helper()

	q, err := StringBegin().Join(p)
	require.NoError(t, err)

	return MustCompile(q.StringEnd())
}

func matches(t *testing.T, re Regexp, s string) bool {
	t.Helper()

	ok, err := re.MatchString(s)
	require.NoError(t, err)
	return ok
}

func TestCompileLiteralInert(t *testing.T) {
	p, err := Literal("a.b*(c)")
	require.NoError(t, err)

	re := compileFull(t, p)
	assert.True(t, matches(t, re, "a.b*(c)"))
	assert.False(t, matches(t, re, "axb*(c)"))
	assert.False(t, matches(t, re, "a.bbbc"))
}

func TestCompileCharSet(t *testing.T) {
	p, err := CharSet("abc")
	require.NoError(t, err)

	re := compileFull(t, p)
	for _, s := range []string{"a", "b", "c"} {
		assert.True(t, matches(t, re, s), "charset should match %q", s)
	}
	assert.False(t, matches(t, re, "d"))
}

func TestCompileRepeat(t *testing.T) {
	x, err := Literal("x")
	require.NoError(t, err)

	p, err := Repeat(2, 4, x)
	require.NoError(t, err)

	re := compileFull(t, p)
	for _, s := range []string{"xx", "xxx", "xxxx"} {
		assert.True(t, matches(t, re, s), "repeat should match %q", s)
	}
	assert.False(t, matches(t, re, "x"))
	assert.False(t, matches(t, re, "xxxxx"))
}

func TestCompileRepeatExact(t *testing.T) {
	x, err := Literal("x")
	require.NoError(t, err)

	p, err := Repeat(3, -1, x)
	require.NoError(t, err)

	re := compileFull(t, p)
	assert.True(t, matches(t, re, "xxx"))
	assert.False(t, matches(t, re, "xx"))
	assert.False(t, matches(t, re, "xxxx"))
}

func TestCompileNoneOrOnce(t *testing.T) {
	a, err := Literal("a")
	require.NoError(t, err)

	p, err := NoneOrOnce(a)
	require.NoError(t, err)

	re := compileFull(t, p)
	assert.True(t, matches(t, re, ""))
	assert.True(t, matches(t, re, "a"))
	assert.False(t, matches(t, re, "aa"))
}

func TestCompileAnchors(t *testing.T) {
	p, err := StringBegin().Literal("go")
	require.NoError(t, err)

	re := MustCompile(p.StringEnd())
	assert.True(t, matches(t, re, "go"))
	assert.False(t, matches(t, re, "going"))
	assert.False(t, matches(t, re, "ago"))
}

func TestCompileLineAnchors(t *testing.T) {
	p, err := LineBegin().Literal("x")
	require.NoError(t, err)

	re := MustCompile(p.LineEnd())
	assert.True(t, matches(t, re, "a\nx\nb"))
	assert.False(t, matches(t, re, "a\nxy\nb"))
}

func TestCompileCapture(t *testing.T) {
	a, err := Literal("a")
	require.NoError(t, err)

	p, err := Capture(a)
	require.NoError(t, err)

	re := MustCompile(p)
	assert.Equal(t, 1, re.NumSubexp())
}

func TestCompileIgnoreCase(t *testing.T) {
	p, err := IgnoreCase("go")
	require.NoError(t, err)

	re := compileFull(t, p)
	for _, s := range []string{"go", "GO", "Go", "gO"} {
		assert.True(t, matches(t, re, s), "fold-case pattern should match %q", s)
	}
	assert.False(t, matches(t, re, "g"))
}

func TestCompileWhiteSpace(t *testing.T) {
	re := compileFull(t, WhiteSpace())
	assert.True(t, matches(t, re, " \t"))
	assert.False(t, matches(t, re, ""))

	re = compileFull(t, OptionalSpace())
	assert.True(t, matches(t, re, ""))
	assert.True(t, matches(t, re, "  "))
}
