// Package pattern wraps the coregex engine as the engine's single matching
// primitive.
//
// A Pattern is compiled once per call, has no mutable state after
// construction, and is shared read-only by every worker. Case sensitivity is
// resolved here, at compile time, by prefixing the expression with the (?i)
// inline flag; no per-record case handling exists anywhere downstream.
package pattern

import (
	"errors"
	"regexp/syntax"

	"github.com/coregx/coregex"
)

// Span is a half-open byte range of one match within a record.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span is zero-width.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Pattern is an immutable compiled pattern. It is safe for concurrent use by
// multiple goroutines.
type Pattern struct {
	re     *coregex.Regex
	groups int
}

// Compile compiles expr into a Pattern. When caseInsensitive is set, the
// pattern matches without regard to letter case.
//
// Compilation failure is fatal for the whole call and is reported before any
// parallel work is scheduled.
func Compile(expr string, caseInsensitive bool) (*Pattern, error) {
	src := expr
	if caseInsensitive {
		src = "(?i)" + src
	}
	re, err := coregex.Compile(src)
	if err != nil {
		return nil, &CompileError{Pattern: expr, Err: err}
	}
	return &Pattern{
		re: re,
		// NumSubexp does not count the whole-match group.
		groups: re.NumSubexp(),
	}, nil
}

// Groups returns the number of capture groups in the pattern, not counting
// the whole match.
func (p *Pattern) Groups() int {
	return p.groups
}

// Next finds the first match at or after byte offset from. It is the
// restartable scan primitive every operation is built on: the Pattern itself
// carries no scan state, so concurrent scans of different records never
// interact.
func (p *Pattern) Next(s string, from int) (Span, bool) {
	if from > len(s) {
		return Span{}, false
	}
	loc := p.re.FindStringIndex(s[from:])
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: from + loc[0], End: from + loc[1]}, true
}

// NextGroups is Next with capture groups. The match is appended to dst as
// index pairs — dst[0:2] is the whole match, dst[2i:2i+2] the ith group,
// with -1 pairs for groups that did not participate — and dst is returned.
// Passing a reused dst keeps the per-record capture table allocation-free.
func (p *Pattern) NextGroups(s string, from int, dst []int) ([]int, bool) {
	if from > len(s) {
		return dst, false
	}
	m := p.re.FindStringSubmatchIndex(s[from:])
	if m == nil {
		return dst, false
	}
	dst = dst[:0]
	for _, v := range m {
		if v >= 0 {
			v += from
		}
		dst = append(dst, v)
	}
	return dst, true
}

// CompileError reports a pattern that failed to compile. It records the
// pattern as the caller wrote it, without the internal flag prefix.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface. Syntax errors are returned as the
// underlying engine reports them.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	return "pattern " + e.Pattern + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
