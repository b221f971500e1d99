// Package replace compiles replacement templates for the replace operation.
//
// A template is parsed once per call, before any worker starts, into a flat
// list of segments: literal runs and positional backreferences. Expansion
// against one match's capture spans is then a straight append loop with no
// parsing in the per-record hot path.
//
// Template syntax:
//   - $0 or ${0}: the full match
//   - $1 .. $99 or ${n}: capture group by index
//   - $$: a literal dollar sign
//   - anything else: literal text; a $ that starts no valid reference is
//     kept as a literal $
package replace

import (
	"fmt"
	"strconv"
)

// segment is one parsed piece of a template: either a literal or a
// group reference. group < 0 marks a literal.
type segment struct {
	literal string
	group   int
}

// Template is a compiled replacement template. Immutable after Parse, safe
// for concurrent use.
type Template struct {
	src      string
	segments []segment
	maxGroup int
}

// Parse compiles a replacement template.
func Parse(template string) (*Template, error) {
	t := &Template{src: template, maxGroup: -1}

	i := 0
	literalStart := 0
	for i < len(template) {
		if template[i] != '$' {
			i++
			continue
		}
		if i > literalStart {
			t.addLiteral(template[literalStart:i])
		}

		if i+1 >= len(template) {
			// $ at end of template, keep it literal.
			t.addLiteral("$")
			i++
			literalStart = i
			continue
		}

		switch next := template[i+1]; {
		case next == '$':
			t.addLiteral("$")
			i += 2

		case next == '{':
			group, consumed, err := parseBracedRef(template[i:])
			if err != nil {
				return nil, fmt.Errorf("replacement template at offset %d: %w", i, err)
			}
			t.addGroup(group)
			i += consumed

		case next >= '0' && next <= '9':
			group, consumed := parseIndexedRef(template[i:])
			t.addGroup(group)
			i += consumed

		default:
			// A lone $ followed by something that is not a reference.
			t.addLiteral("$")
			i++
		}
		literalStart = i
	}

	if i > literalStart {
		t.addLiteral(template[literalStart:i])
	}
	return t, nil
}

func (t *Template) addLiteral(s string) {
	// Merge adjacent literals so $$ runs expand in one append.
	if n := len(t.segments); n > 0 && t.segments[n-1].group < 0 {
		t.segments[n-1].literal += s
		return
	}
	t.segments = append(t.segments, segment{literal: s, group: -1})
}

func (t *Template) addGroup(group int) {
	t.segments = append(t.segments, segment{group: group})
	if group > t.maxGroup {
		t.maxGroup = group
	}
}

// parseBracedRef parses ${n} starting at s[0] == '$', s[1] == '{'.
func parseBracedRef(s string) (group, consumed int, err error) {
	end := 2
	for end < len(s) && s[end] != '}' {
		end++
	}
	if end == len(s) {
		return 0, 0, fmt.Errorf("unclosed ${")
	}
	content := s[2:end]
	if len(content) == 0 {
		return 0, 0, fmt.Errorf("empty ${}")
	}
	group, err = strconv.Atoi(content)
	if err != nil || group < 0 {
		return 0, 0, fmt.Errorf("invalid group reference ${%s}", content)
	}
	return group, end + 1, nil
}

// parseIndexedRef parses $N or $NN starting at s[0] == '$'.
func parseIndexedRef(s string) (group, consumed int) {
	group = int(s[1] - '0')
	consumed = 2
	if len(s) > 2 && s[2] >= '0' && s[2] <= '9' {
		group = group*10 + int(s[2]-'0')
		consumed = 3
	}
	return group, consumed
}

// String returns the template source text.
func (t *Template) String() string {
	return t.src
}

// MaxGroup returns the highest group index the template references, or -1
// when it references none. Callers check it against the pattern's group
// count before any worker starts.
func (t *Template) MaxGroup() int {
	return t.maxGroup
}

// ExpandInto appends the expansion of the template for one match to dst and
// returns it. groups is the match's capture index table as produced by the
// pattern primitive: groups[0:2] the full match, groups[2i:2i+2] group i,
// with -1 pairs for groups that did not participate (expanded as empty).
func (t *Template) ExpandInto(dst []byte, src string, groups []int) []byte {
	for _, seg := range t.segments {
		if seg.group < 0 {
			dst = append(dst, seg.literal...)
			continue
		}
		lo, hi := groups[2*seg.group], groups[2*seg.group+1]
		if lo >= 0 {
			dst = append(dst, src[lo:hi]...)
		}
	}
	return dst
}

// Size returns the exact expansion length for one match, allowing callers to
// reserve output storage up front.
func (t *Template) Size(groups []int) int {
	n := 0
	for _, seg := range t.segments {
		if seg.group < 0 {
			n += len(seg.literal)
			continue
		}
		lo, hi := groups[2*seg.group], groups[2*seg.group+1]
		if lo >= 0 {
			n += hi - lo
		}
	}
	return n
}
