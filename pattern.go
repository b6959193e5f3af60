// Package rebuild implements a fluent builder for regular expression patterns.
//
// Each combinator appends a fragment to an accumulated pattern text and
// returns a new Pattern value; no Pattern is ever mutated in place.
// The produced text uses the RE2 syntax understood by the standard regexp
// package and by regexp2 in RE2 mode; compiling and matching against subject
// text is left to those engines (see Compile).
//
// Every combinator exists both as a free function, which starts a new chain
// from the empty pattern, and as a method, which continues an existing one:
//
//	p, err := rebuild.StringBegin().Literal("go")
//	if err != nil {
//		return err
//	}
//	p = p.StringEnd() // matches "go" and nothing else
package rebuild

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is an immutable regular expression fragment.
// Its text is a syntactically complete pattern at every step, so any Pattern
// may be compiled on its own or passed to further combinators as an argument.
// The zero value is the empty pattern.
type Pattern struct {
	text     string
	foldCase bool
}

// Text returns the accumulated pattern text.
func (p Pattern) Text() string { return p.text }

// FoldCase reports whether the pattern was tagged as case-insensitive.
func (p Pattern) FoldCase() bool { return p.foldCase }

func (p Pattern) String() string { return p.text }

// append returns a copy of p with the fragment added.
// All combinators funnel through this function.
func (p Pattern) append(frag string) Pattern {
	return Pattern{
		text:     p.text + frag,
		foldCase: p.foldCase,
	}
}

// Literal starts a new pattern matching the given texts verbatim.
func Literal(text ...string) (Pattern, error) { return Pattern{}.Literal(text...) }

// Literal appends the given texts with every metacharacter escaped,
// so the fragment matches the texts themselves and nothing else.
func (p Pattern) Literal(text ...string) (Pattern, error) {
	return p.literal("literal", text)
}

// IgnoreCase starts a new case-insensitive pattern matching the given texts.
func IgnoreCase(text ...string) (Pattern, error) { return Pattern{}.IgnoreCase(text...) }

// IgnoreCase appends escaped literal text like Literal and additionally
// tags the resulting pattern as case-insensitive.
func (p Pattern) IgnoreCase(text ...string) (Pattern, error) {
	q, err := p.literal("ignore_case", text)
	if err != nil {
		return Pattern{}, err
	}

	q.foldCase = true
	return q, nil
}

func (p Pattern) literal(name string, text []string) (Pattern, error) {
	if len(text) == 0 {
		return Pattern{}, missingArgument(name, "text")
	}

	var b strings.Builder
	for _, t := range text {
		b.WriteString(escapeMeta(t))
	}

	return p.append(b.String()), nil
}

// Join starts a new pattern from the given sub-patterns.
func Join(sub ...Pattern) (Pattern, error) { return Pattern{}.Join(sub...) }

// Join appends the sub-pattern texts concatenated, unescaped.
// Joining patterns one at a time yields the same text as a single call.
func (p Pattern) Join(sub ...Pattern) (Pattern, error) {
	if len(sub) == 0 {
		return Pattern{}, missingArgument("join", "pattern")
	}

	q := p.append(concat(sub))
	q.foldCase = q.foldCase || anyFoldCase(sub)
	return q, nil
}

// NoneOrOnce starts a new pattern matching the sub-patterns at most once.
func NoneOrOnce(sub ...Pattern) (Pattern, error) { return Pattern{}.NoneOrOnce(sub...) }

// NoneOrOnce appends the sub-patterns as an optional group.
func (p Pattern) NoneOrOnce(sub ...Pattern) (Pattern, error) {
	return p.quantify("none_or_once", "?", sub)
}

// NoneOrMost starts a new pattern matching the sub-patterns any number of times.
func NoneOrMost(sub ...Pattern) (Pattern, error) { return Pattern{}.NoneOrMost(sub...) }

// NoneOrMost appends the sub-patterns repeated zero or more times, greedy.
func (p Pattern) NoneOrMost(sub ...Pattern) (Pattern, error) {
	return p.quantify("none_or_most", "*", sub)
}

// OnceOrMost starts a new pattern matching the sub-patterns at least once.
func OnceOrMost(sub ...Pattern) (Pattern, error) { return Pattern{}.OnceOrMost(sub...) }

// OnceOrMost appends the sub-patterns repeated one or more times, greedy.
func (p Pattern) OnceOrMost(sub ...Pattern) (Pattern, error) {
	return p.quantify("once_or_most", "+", sub)
}

// NoneOrLeast starts a new pattern matching the sub-patterns any number of
// times, preferring as few as possible.
func NoneOrLeast(sub ...Pattern) (Pattern, error) { return Pattern{}.NoneOrLeast(sub...) }

// NoneOrLeast appends the sub-patterns repeated zero or more times, lazy.
func (p Pattern) NoneOrLeast(sub ...Pattern) (Pattern, error) {
	return p.quantify("none_or_least", "*?", sub)
}

// OnceOrLeast starts a new pattern matching the sub-patterns at least once,
// preferring as few repetitions as possible.
func OnceOrLeast(sub ...Pattern) (Pattern, error) { return Pattern{}.OnceOrLeast(sub...) }

// OnceOrLeast appends the sub-patterns repeated one or more times, lazy.
func (p Pattern) OnceOrLeast(sub ...Pattern) (Pattern, error) {
	return p.quantify("once_or_least", "+?", sub)
}

// Repeat starts a new pattern repeating the sub-patterns between min and
// max times.
func Repeat(min, max int, sub ...Pattern) (Pattern, error) {
	return Pattern{}.Repeat(min, max, sub...)
}

// Repeat appends the sub-patterns repeated between min and max times.
// A negative bound counts as omitted: an omitted min defaults to 0 and an
// omitted max turns min into an exact repeat count. An exact count of one
// or less, both bounds omitted, or max < min fail with ErrInvalidRange.
func (p Pattern) Repeat(min, max int, sub ...Pattern) (Pattern, error) {
	suffix, err := repeatSuffix(min, max)
	if err != nil {
		return Pattern{}, err
	}

	return p.quantify("repeat", suffix, sub)
}

func repeatSuffix(min, max int) (string, error) {
	switch {
	case min < 0 && max < 0:
		return "", invalidRange("no bounds given")
	case max < 0: // exact repeat count
		if min <= 1 {
			return "", invalidRange("exact count of " + strconv.Itoa(min) + " is not a repetition")
		}

		return "{" + strconv.Itoa(min) + "}", nil
	default:
		if min < 0 {
			min = 0
		}
		if max < min {
			return "", invalidRange(fmt.Sprintf("max %d is less than min %d", max, min))
		}

		return "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}", nil
	}
}

// Capture starts a new pattern capturing the sub-patterns.
func Capture(sub ...Pattern) (Pattern, error) { return Pattern{}.Capture(sub...) }

// Capture appends the sub-patterns wrapped in a single capturing group.
func (p Pattern) Capture(sub ...Pattern) (Pattern, error) {
	if len(sub) == 0 {
		return Pattern{}, missingArgument("capture", "pattern")
	}

	q := p.append("(" + concat(sub) + ")")
	q.foldCase = q.foldCase || anyFoldCase(sub)
	return q, nil
}

// CharSet starts a new pattern matching one character of the given set.
func CharSet(set string) (Pattern, error) { return Pattern{}.CharSet(set) }

// CharSet appends a character class containing exactly the characters of
// the set, interpolated verbatim. The set must not be empty, because an
// empty class is not compilable.
func (p Pattern) CharSet(set string) (Pattern, error) {
	if set == "" {
		return Pattern{}, fmt.Errorf("charset: %w: set must not be empty", ErrMissingArgument)
	}

	return p.append("[" + set + "]"), nil
}

// WhiteSpace starts a new pattern matching one or more whitespace characters.
func WhiteSpace() Pattern { return Pattern{}.WhiteSpace() }

// WhiteSpace appends an atom matching one or more whitespace characters.
func (p Pattern) WhiteSpace() Pattern { return p.append(`\s+`) }

// OptionalSpace starts a new pattern matching any amount of whitespace.
func OptionalSpace() Pattern { return Pattern{}.OptionalSpace() }

// OptionalSpace appends an atom matching zero or more whitespace characters.
func (p Pattern) OptionalSpace() Pattern { return p.append(`\s*`) }

// StringBegin starts a new pattern anchored at the start of the subject.
func StringBegin() Pattern { return Pattern{}.StringBegin() }

// StringBegin appends the start-of-string anchor.
func (p Pattern) StringBegin() Pattern { return p.append(`\A`) }

// StringEnd starts a new pattern anchored at the end of the subject.
func StringEnd() Pattern { return Pattern{}.StringEnd() }

// StringEnd appends the end-of-string anchor.
func (p Pattern) StringEnd() Pattern { return p.append(`\z`) }

// LineBegin starts a new pattern anchored at the start of a line.
func LineBegin() Pattern { return Pattern{}.LineBegin() }

// LineBegin appends the start-of-line anchor.
// The multiline flag is scoped to the anchor, so the fragment stays
// self-contained.
func (p Pattern) LineBegin() Pattern { return p.append(`(?m:^)`) }

// LineEnd starts a new pattern anchored at the end of a line.
func LineEnd() Pattern { return Pattern{}.LineEnd() }

// LineEnd appends the end-of-line anchor.
func (p Pattern) LineEnd() Pattern { return p.append(`(?m:$)`) }

// quantify appends the sub-patterns wrapped in a non-capturing group with
// the quantifier suffix. The group keeps the quantifier bound to the whole
// fragment instead of its last atom.
func (p Pattern) quantify(name, suffix string, sub []Pattern) (Pattern, error) {
	if len(sub) == 0 {
		return Pattern{}, missingArgument(name, "pattern")
	}

	q := p.append("(?:" + concat(sub) + ")" + suffix)
	q.foldCase = q.foldCase || anyFoldCase(sub)
	return q, nil
}

// concat returns the texts of the sub-patterns concatenated.
func concat(sub []Pattern) string {
	if len(sub) == 1 {
		return sub[0].text
	}

	var b strings.Builder
	for _, s := range sub {
		b.WriteString(s.text)
	}

	return b.String()
}

// anyFoldCase reports whether any sub-pattern carries the fold-case tag.
// The tag applies to the whole pattern, so it survives embedding.
func anyFoldCase(sub []Pattern) bool {
	for _, s := range sub {
		if s.foldCase {
			return true
		}
	}

	return false
}
