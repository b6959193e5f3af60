// Package star exposes the pattern builder as a Starlark module.
//
// Every combinator is available both as a module member, starting a new
// chain, and as a method of the pattern value, continuing an existing one:
//
//	p = rebuild.string_begin().literal("go").string_end()
//
// Because the host is dynamically typed, the combinators validate their
// arguments at runtime; the errors wrap the sentinel values of the rebuild
// package.
package star

import (
	"fmt"

	"go.starlark.net/starlark"

	rebuild "github.com/magnetde/starlark-rebuild"
)

// Module is the Starlark module exposing the combinators.
// All builtins are stateless, so a single value may be shared between
// threads.
type Module struct {
	members starlark.StringDict
}

// NewModule creates the rebuild module.
func NewModule() *Module {
	members := make(starlark.StringDict, len(combinators)+1)
	for name, b := range combinators {
		members[name] = b
	}

	members["compile"] = starlark.NewBuiltin("compile", compileFn)

	return &Module{members: members}
}

// Check, if the type satisfies the interfaces.
var (
	_ starlark.Value    = (*Module)(nil)
	_ starlark.HasAttrs = (*Module)(nil)
)

func (m *Module) Freeze()               { m.members.Freeze() }
func (m *Module) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", m.Type()) }
func (m *Module) String() string        { return "<module rebuild>" }
func (m *Module) Truth() starlark.Bool  { return true }
func (m *Module) Type() string          { return "module" }

// Attr gets a value for a string attribute.
func (m *Module) Attr(name string) (starlark.Value, error) {
	if v, ok := m.members[name]; ok {
		return v, nil
	}

	return nil, nil
}

// AttrNames lists available dot expression strings.
func (m *Module) AttrNames() []string { return m.members.Keys() }

// combinators maps builtin names to their implementations. The same
// builtins serve as module members and as pattern methods: without a bound
// receiver, the chain starts at the empty pattern.
var combinators = map[string]*starlark.Builtin{
	"literal":        starlark.NewBuiltin("literal", literalFn),
	"ignore_case":    starlark.NewBuiltin("ignore_case", ignoreCaseFn),
	"join":           starlark.NewBuiltin("join", joinFn),
	"white_space":    starlark.NewBuiltin("white_space", whiteSpaceFn),
	"optional_space": starlark.NewBuiltin("optional_space", optionalSpaceFn),
	"none_or_once":   starlark.NewBuiltin("none_or_once", noneOrOnceFn),
	"none_or_most":   starlark.NewBuiltin("none_or_most", noneOrMostFn),
	"once_or_most":   starlark.NewBuiltin("once_or_most", onceOrMostFn),
	"none_or_least":  starlark.NewBuiltin("none_or_least", noneOrLeastFn),
	"once_or_least":  starlark.NewBuiltin("once_or_least", onceOrLeastFn),
	"repeat":         starlark.NewBuiltin("repeat", repeatFn),
	"capture":        starlark.NewBuiltin("capture", captureFn),
	"charset":        starlark.NewBuiltin("charset", charsetFn),
	"string_begin":   starlark.NewBuiltin("string_begin", stringBeginFn),
	"string_end":     starlark.NewBuiltin("string_end", stringEndFn),
	"line_begin":     starlark.NewBuiltin("line_begin", lineBeginFn),
	"line_end":       starlark.NewBuiltin("line_end", lineEndFn),
}

// receiver returns the pattern the builtin continues, or the empty pattern
// when the builtin was called as a module member.
func receiver(b *starlark.Builtin) rebuild.Pattern {
	if p, ok := b.Receiver().(*Pattern); ok {
		return p.p
	}

	return rebuild.Pattern{}
}

func unexpectedKwargs(b *starlark.Builtin) error {
	return fmt.Errorf("%s: %w: unexpected keyword arguments", b.Name(), rebuild.ErrUnexpectedArgument)
}

// textArgs checks that all arguments are strings and collects them.
// Arity is validated by the builder itself.
func textArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) ([]string, error) {
	if len(kwargs) > 0 {
		return nil, unexpectedKwargs(b)
	}

	text := make([]string, len(args))
	for i, v := range args {
		s, ok := starlark.AsString(v)
		if !ok {
			return nil, fmt.Errorf("%s: %w: got %s, want string", b.Name(), rebuild.ErrArgumentKind, v.Type())
		}

		text[i] = s
	}

	return text, nil
}

// patternArgs checks that all arguments are patterns and collects them.
// Passing plain strings here is rejected, so raw text can never be injected
// as pattern syntax.
func patternArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) ([]rebuild.Pattern, error) {
	if len(kwargs) > 0 {
		return nil, unexpectedKwargs(b)
	}

	return subPatterns(b, args)
}

func subPatterns(b *starlark.Builtin, args starlark.Tuple) ([]rebuild.Pattern, error) {
	sub := make([]rebuild.Pattern, len(args))
	for i, v := range args {
		p, ok := v.(*Pattern)
		if !ok {
			return nil, fmt.Errorf("%s: %w: got %s, want pattern", b.Name(), rebuild.ErrArgumentKind, v.Type())
		}

		sub[i] = p.p
	}

	return sub, nil
}

// noArgs rejects any argument to a parameterless combinator.
func noArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) error {
	if len(args) > 0 || len(kwargs) > 0 {
		return fmt.Errorf("%s: %w: combinator takes no arguments", b.Name(), rebuild.ErrUnexpectedArgument)
	}

	return nil
}

func literalFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	text, err := textArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	p, err := receiver(b).Literal(text...)
	if err != nil {
		return nil, err
	}

	return &Pattern{p: p}, nil
}

func ignoreCaseFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	text, err := textArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	p, err := receiver(b).IgnoreCase(text...)
	if err != nil {
		return nil, err
	}

	return &Pattern{p: p}, nil
}

func joinFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	sub, err := patternArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	p, err := receiver(b).Join(sub...)
	if err != nil {
		return nil, err
	}

	return &Pattern{p: p}, nil
}

// quantified implements the five fixed quantifier combinators, which only
// differ in the builder method they call.
func quantified(fn func(p rebuild.Pattern, sub ...rebuild.Pattern) (rebuild.Pattern, error)) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		sub, err := patternArgs(b, args, kwargs)
		if err != nil {
			return nil, err
		}

		p, err := fn(receiver(b), sub...)
		if err != nil {
			return nil, err
		}

		return &Pattern{p: p}, nil
	}
}

var (
	noneOrOnceFn  = quantified(rebuild.Pattern.NoneOrOnce)
	noneOrMostFn  = quantified(rebuild.Pattern.NoneOrMost)
	onceOrMostFn  = quantified(rebuild.Pattern.OnceOrMost)
	noneOrLeastFn = quantified(rebuild.Pattern.NoneOrLeast)
	onceOrLeastFn = quantified(rebuild.Pattern.OnceOrLeast)
	captureFn     = quantified(rebuild.Pattern.Capture)
)

// repeatFn implements `repeat(min, max, *patterns)`. The leading bounds are
// ints or None; None and a missing bound both count as omitted. Bound
// validation itself happens in the builder.
func repeatFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, unexpectedKwargs(b)
	}

	min, max := -1, -1

	i := 0
bounds:
	for _, bound := range []*int{&min, &max} {
		if i >= len(args) {
			break
		}

		switch v := args[i].(type) {
		case starlark.NoneType:
			i++
		case starlark.Int:
			n, err := starlark.AsInt32(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w: %v", b.Name(), rebuild.ErrInvalidRange, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("%s: %w: bound must not be negative", b.Name(), rebuild.ErrInvalidRange)
			}

			*bound = n
			i++
		default:
			break bounds // the sub-patterns begin here
		}
	}

	sub, err := subPatterns(b, args[i:])
	if err != nil {
		return nil, err
	}

	p, err := receiver(b).Repeat(min, max, sub...)
	if err != nil {
		return nil, err
	}

	return &Pattern{p: p}, nil
}

func charsetFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, unexpectedKwargs(b)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: %w: got %d arguments, want exactly 1", b.Name(), rebuild.ErrArgumentCount, len(args))
	}

	s, ok := starlark.AsString(args[0])
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %s, want string", b.Name(), rebuild.ErrArgumentKind, args[0].Type())
	}

	p, err := receiver(b).CharSet(s)
	if err != nil {
		return nil, err
	}

	return &Pattern{p: p}, nil
}

// atom implements the parameterless combinators.
func atom(fn func(p rebuild.Pattern) rebuild.Pattern) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := noArgs(b, args, kwargs); err != nil {
			return nil, err
		}

		return &Pattern{p: fn(receiver(b))}, nil
	}
}

var (
	whiteSpaceFn    = atom(rebuild.Pattern.WhiteSpace)
	optionalSpaceFn = atom(rebuild.Pattern.OptionalSpace)
	stringBeginFn   = atom(rebuild.Pattern.StringBegin)
	stringEndFn     = atom(rebuild.Pattern.StringEnd)
	lineBeginFn     = atom(rebuild.Pattern.LineBegin)
	lineEndFn       = atom(rebuild.Pattern.LineEnd)
)
