package rebuild

import (
	"regexp"
	"strconv"

	"github.com/dlclark/regexp2"
)

// Regexp is the common surface of the two supported engines.
// The error return of MatchString only applies to the fallback engine;
// the standard engine never fails after compilation.
type Regexp interface {
	// MatchString reports whether the pattern matches somewhere in s.
	MatchString(s string) (bool, error)

	// NumSubexp returns the number of capturing groups in the pattern.
	NumSubexp() int

	// String returns the pattern text handed to the engine.
	String() string
}

// Compile hands the pattern text to the standard regexp package, applying
// the fold-case tag as an inline flag. If the standard engine rejects the
// pattern, regexp2 in RE2 mode is tried with the tag mapped to its
// IgnoreCase option.
// The builder itself never compiles; this is the bridge for callers that
// want to execute the pattern they built.
func Compile(p Pattern) (Regexp, error) {
	s := p.text
	if p.foldCase {
		s = "(?i)" + s
	}

	r, err := regexp.Compile(s)
	if err == nil {
		return &stdRegexp{re: r}, nil
	}

	options := regexp2.None | regexp2.RE2
	if p.foldCase {
		options |= regexp2.IgnoreCase
	}

	r2, err2 := regexp2.Compile(p.text, options)
	if err2 != nil {
		return nil, err // report the error of the standard engine
	}

	return &advRegexp{re: r2}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled
// by either engine.
func MustCompile(p Pattern) Regexp {
	r, err := Compile(p)
	if err != nil {
		panic("rebuild: Compile(" + strconv.Quote(p.text) + "): " + err.Error())
	}

	return r
}

type stdRegexp struct {
	re *regexp.Regexp
}

type advRegexp struct {
	re *regexp2.Regexp
}

var (
	_ Regexp = (*stdRegexp)(nil)
	_ Regexp = (*advRegexp)(nil)
)

func (r *stdRegexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s), nil
}

func (r *stdRegexp) NumSubexp() int {
	return r.re.NumSubexp()
}

func (r *stdRegexp) String() string {
	return r.re.String()
}

func (r *advRegexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s)
}

// NumSubexp counts the capture groups of the fallback engine without the
// implicit group 0.
func (r *advRegexp) NumSubexp() int {
	return len(r.re.GetGroupNumbers()) - 1
}

func (r *advRegexp) String() string {
	return r.re.String()
}
