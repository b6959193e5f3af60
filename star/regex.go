package star

import (
	"fmt"
	"sort"
	"strings"

	"go.starlark.net/starlark"

	rebuild "github.com/magnetde/starlark-rebuild"
	"github.com/magnetde/starlark-rebuild/internal/repr"
)

// Regex is the Starlark value of a compiled pattern.
// It is created by the `compile` member of the module; the builder itself
// never compiles anything.
type Regex struct {
	re rebuild.Regexp
	p  rebuild.Pattern
}

// Check, if the type satisfies the interfaces.
var (
	_ starlark.Value    = (*Regex)(nil)
	_ starlark.HasAttrs = (*Regex)(nil)
)

// compileFn hands the pattern text and its fold-case tag to the host
// engines. See rebuild.Compile.
func compileFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, unexpectedKwargs(b)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: %w: got %d arguments, want exactly 1", b.Name(), rebuild.ErrArgumentCount, len(args))
	}

	p, ok := args[0].(*Pattern)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %s, want pattern", b.Name(), rebuild.ErrArgumentKind, args[0].Type())
	}

	re, err := rebuild.Compile(p.p)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}

	return &Regex{re: re, p: p.p}, nil
}

func (r *Regex) String() string {
	var b strings.Builder
	b.WriteString("rebuild.compile(")
	b.WriteString(repr.Repr(r.p.Text()))
	b.WriteByte(')')
	return b.String()
}

func (r *Regex) Type() string          { return "regex" }
func (r *Regex) Freeze()               {}
func (r *Regex) Truth() starlark.Bool  { return true }
func (r *Regex) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", r.Type()) }

// Methods of the regex value.
var regexMethods = map[string]*starlark.Builtin{
	"match": starlark.NewBuiltin("match", regexMatch),
}

// regexMembers contains the plain members of the regex value.
var regexMembers = map[string]func(r *Regex) starlark.Value{
	"pattern":   func(r *Regex) starlark.Value { return starlark.String(r.p.Text()) },
	"fold_case": func(r *Regex) starlark.Value { return starlark.Bool(r.p.FoldCase()) },
	"groups":    func(r *Regex) starlark.Value { return starlark.MakeInt(r.re.NumSubexp()) },
}

// Attr gets a value for a string attribute.
func (r *Regex) Attr(name string) (starlark.Value, error) {
	if o, ok := regexMethods[name]; ok {
		return o.BindReceiver(r), nil
	}

	if o, ok := regexMembers[name]; ok {
		return o(r), nil
	}

	return nil, nil
}

// AttrNames lists available dot expression strings.
func (r *Regex) AttrNames() []string {
	names := make([]string, 0, len(regexMethods)+len(regexMembers))

	for name := range regexMethods {
		names = append(names, name)
	}
	for name := range regexMembers {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// regexMatch reports whether the pattern matches somewhere in the subject.
func regexMatch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}

	r := b.Receiver().(*Regex)

	ok, err := r.re.MatchString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}

	return starlark.Bool(ok), nil
}
