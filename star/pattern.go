package star

import (
	"fmt"
	"sort"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	rebuild "github.com/magnetde/starlark-rebuild"
	"github.com/magnetde/starlark-rebuild/internal/repr"
)

// Pattern is the Starlark value wrapping a built pattern.
// All combinators are exposed as bound methods, so chains like
// `rebuild.string_begin().literal("go").string_end()` work.
type Pattern struct {
	p rebuild.Pattern
}

// Check, if the type satisfies the interfaces.
var (
	_ starlark.Value      = (*Pattern)(nil)
	_ starlark.HasAttrs   = (*Pattern)(nil)
	_ starlark.Comparable = (*Pattern)(nil)
)

// Unwrap returns the underlying pattern value.
func (p *Pattern) Unwrap() rebuild.Pattern { return p.p }

func (p *Pattern) String() string {
	var b strings.Builder
	b.WriteString("rebuild.pattern(")
	b.WriteString(repr.Repr(p.p.Text()))
	if p.p.FoldCase() {
		b.WriteString(", fold_case=True")
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Pattern) Type() string          { return "pattern" }
func (p *Pattern) Freeze()               {}
func (p *Pattern) Truth() starlark.Bool  { return starlark.Bool(p.p.Text() != "") }
func (p *Pattern) Hash() (uint32, error) { return starlark.String(p.p.Text()).Hash() }

// patternMembers contains the plain members of the pattern value.
var patternMembers = map[string]func(p *Pattern) starlark.Value{
	"text":      func(p *Pattern) starlark.Value { return starlark.String(p.p.Text()) },
	"fold_case": func(p *Pattern) starlark.Value { return starlark.Bool(p.p.FoldCase()) },
}

// Attr gets a value for a string attribute.
// Combinator attributes are returned with the pattern bound as receiver.
func (p *Pattern) Attr(name string) (starlark.Value, error) {
	if o, ok := combinators[name]; ok {
		return o.BindReceiver(p), nil
	}

	if o, ok := patternMembers[name]; ok {
		return o(p), nil
	}

	return nil, nil
}

// AttrNames lists available dot expression strings.
func (p *Pattern) AttrNames() []string {
	names := make([]string, 0, len(combinators)+len(patternMembers))

	for name := range combinators {
		names = append(names, name)
	}
	for name := range patternMembers {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// CompareSameType compares patterns by text and fold-case tag.
func (p *Pattern) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	o := y.(*Pattern)

	switch op {
	case syntax.EQL:
		return p.p == o.p, nil
	case syntax.NEQ:
		return p.p != o.p, nil
	default:
		return false, fmt.Errorf("%s %s %s not implemented", p.Type(), op, o.Type())
	}
}
