package engine

import (
	"unicode/utf8"
)

// ops.go contains the five per-record operations. Each is a specialization
// of the pattern's restartable Next/NextGroups primitive and writes only
// into its worker's Scratch and the record's own result slot.
//
// Results that reference the input (find, capture, split fragments) are
// substrings of the record, which is free and safe: records are immutable
// for the duration of a call and Go substrings share backing storage.
// Replace is the only operation that must own new bytes.

// Find returns the first match's matched substring, or "" when the record
// has no match.
func (j *Job) Find(_ *Scratch, s string) string {
	sp, ok := j.pat.Next(s, 0)
	if !ok {
		return ""
	}
	return s[sp.Start:sp.End]
}

// IsMatch reports whether the record contains a match.
func (j *Job) IsMatch(_ *Scratch, s string) bool {
	_, ok := j.pat.Next(s, 0)
	return ok
}

// Capture returns the first match as [full match, group 1, group 2, ...].
// A group that did not participate in the match yields an empty string
// placeholder; a record with no match yields nil.
func (j *Job) Capture(sc *Scratch, s string) []string {
	g, ok := j.pat.NextGroups(s, 0, sc.groups)
	sc.groups = g
	if !ok {
		return nil
	}
	out := make([]string, len(g)/2)
	for i := range out {
		lo, hi := g[2*i], g[2*i+1]
		if lo < 0 {
			continue
		}
		out[i] = s[lo:hi]
	}
	return out
}

// Split divides the record at each match boundary, discarding the matched
// delimiter text. A record with no match yields itself as the single
// fragment. A zero-width match contributes one boundary and the scan then
// advances by a full code point, so the loop always terminates.
func (j *Job) Split(sc *Scratch, s string) []string {
	sc.frags = sc.frags[:0]
	last, from := 0, 0
	for {
		sp, ok := j.pat.Next(s, from)
		if !ok {
			break
		}
		sc.frags = append(sc.frags, s[last:sp.Start])
		last = sp.End
		if sp.Empty() {
			from = advance(s, sp.End)
		} else {
			from = sp.End
		}
	}
	sc.frags = append(sc.frags, s[last:])

	out := make([]string, len(sc.frags))
	copy(out, sc.frags)
	return out
}

// Replace substitutes the template for up to r.limit matches (0 meaning all
// of them). A record with no match is returned as is, without copying.
//
// The operation is two passes over the record: the first collects the
// capture tables of every match to be replaced, which makes the output
// length exact; the second reserves that length from the worker's arena
// once and fills it. The only per-record heap allocation is the returned
// string itself.
func (r *Replacer) Replace(sc *Scratch, s string) string {
	stride := 2 * (r.job.pat.Groups() + 1)
	sc.bounds = sc.bounds[:0]

	n, from := 0, 0
	for r.limit == 0 || n < r.limit {
		g, ok := r.job.pat.NextGroups(s, from, sc.groups)
		sc.groups = g
		if !ok {
			break
		}
		sc.bounds = append(sc.bounds, g...)
		n++
		if g[1] > g[0] {
			from = g[1]
		} else {
			from = advance(s, g[1])
		}
	}
	if n == 0 {
		return s
	}

	size := len(s)
	for i := 0; i < n; i++ {
		g := sc.bounds[i*stride : (i+1)*stride]
		size += r.tmpl.Size(g) - (g[1] - g[0])
	}

	buf := sc.arena.Reserve(size)[:0]
	last := 0
	for i := 0; i < n; i++ {
		g := sc.bounds[i*stride : (i+1)*stride]
		buf = append(buf, s[last:g[0]]...)
		buf = r.tmpl.ExpandInto(buf, s, g)
		last = g[1]
	}
	buf = append(buf, s[last:]...)
	return string(buf)
}

// advance moves a scan position one code point forward after a zero-width
// match. Past the end of the record it still moves forward so the caller's
// loop terminates.
func advance(s string, pos int) int {
	if pos >= len(s) {
		return pos + 1
	}
	_, n := utf8.DecodeRuneInString(s[pos:])
	return pos + n
}
