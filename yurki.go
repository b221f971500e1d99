// Package yurki is a batch pattern-matching engine: it applies one compiled
// pattern to a large ordered collection of text records and produces one
// result per record, exploiting multi-core parallelism without per-record
// heap churn.
//
// Five operations share the same machinery:
//   - Find: the first match's text per record
//   - IsMatch: whether each record matches
//   - Capture: the first match's capture groups per record
//   - Split: each record divided at match boundaries
//   - Replace: matches substituted with a backreference template
//
// For every call the pattern is compiled once and shared read-only by all
// workers, the input is split into contiguous chunks, and each chunk is
// processed by one worker with private scratch memory. Results are always
// index-aligned with the input, whatever the worker count.
//
// Basic usage:
//
//	found, err := yurki.Find(records, `\d+`, yurki.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parallel usage:
//
//	opts := yurki.DefaultOptions()
//	opts.Jobs = runtime.NumCPU()
//	ok, err := yurki.IsMatch(records, `error|warn`, opts)
//
// All failure modes — an invalid pattern, a bad option, a replacement
// template referencing a missing group, a record that is not valid UTF-8 —
// are reported before any parallel work starts. A call either returns one
// result per record or returns an error and nothing else.
package yurki

import (
	"github.com/Aljutor/yurki/internal/engine"
)

// Find returns, for each record, the text of its first match, or an empty
// string for records without one.
//
// Example:
//
//	out, _ := yurki.Find([]string{"hello world", "test 123"}, `\d+`, yurki.DefaultOptions())
//	// out = ["", "123"]
func Find(records []string, pattern string, opts Options) ([]string, error) {
	j, err := engine.New(pattern, opts.CaseInsensitive, opts.Jobs)
	if err != nil {
		return nil, err
	}
	out, err := engine.Map(j, records, j.Find)
	if err != nil {
		return nil, err
	}
	return deliver(records, out, opts)
}

// IsMatch reports, for each record, whether it contains a match.
//
// Example:
//
//	out, _ := yurki.IsMatch([]string{"abc", "a1c"}, `\d`, yurki.DefaultOptions())
//	// out = [false, true]
func IsMatch(records []string, pattern string, opts Options) ([]bool, error) {
	if err := rejectInPlace(opts, "IsMatch"); err != nil {
		return nil, err
	}
	j, err := engine.New(pattern, opts.CaseInsensitive, opts.Jobs)
	if err != nil {
		return nil, err
	}
	return engine.Map(j, records, j.IsMatch)
}

// Capture returns, for each record, the first match as an ordered list:
// the full match followed by each capture group. A group that did not
// participate in the match is an empty string; a record with no match
// yields an empty list.
//
// Example:
//
//	out, _ := yurki.Capture([]string{"test 123"}, `(\w+) (\d+)`, yurki.DefaultOptions())
//	// out = [["test 123", "test", "123"]]
func Capture(records []string, pattern string, opts Options) ([][]string, error) {
	if err := rejectInPlace(opts, "Capture"); err != nil {
		return nil, err
	}
	j, err := engine.New(pattern, opts.CaseInsensitive, opts.Jobs)
	if err != nil {
		return nil, err
	}
	return engine.Map(j, records, j.Capture)
}

// Split returns each record divided at every match of the pattern, with the
// matched delimiter text discarded. A record with no match yields itself as
// the single fragment.
//
// Example:
//
//	out, _ := yurki.Split([]string{"a,b;c"}, `[,;]`, yurki.DefaultOptions())
//	// out = [["a", "b", "c"]]
func Split(records []string, pattern string, opts Options) ([][]string, error) {
	if err := rejectInPlace(opts, "Split"); err != nil {
		return nil, err
	}
	j, err := engine.New(pattern, opts.CaseInsensitive, opts.Jobs)
	if err != nil {
		return nil, err
	}
	return engine.Map(j, records, j.Split)
}

// Replace returns each record with up to count matches substituted by the
// replacement template. count semantics: 0 replaces every match, any
// positive value caps substitutions per record; DefaultReplaceCount names
// the replace-first-only policy. Templates reference capture groups of the
// current match positionally: $1, $2 or ${1}, with $0 the full match and
// $$ a literal dollar sign.
//
// Example:
//
//	out, _ := yurki.Replace([]string{"name: John"}, `name: (\w+)`, "Hello $1",
//	    yurki.DefaultReplaceCount, yurki.DefaultOptions())
//	// out = ["Hello John"]
func Replace(records []string, pattern, replacement string, count int, opts Options) ([]string, error) {
	j, err := engine.New(pattern, opts.CaseInsensitive, opts.Jobs)
	if err != nil {
		return nil, err
	}
	r, err := j.Replacer(replacement, count)
	if err != nil {
		return nil, err
	}
	out, err := engine.Map(j, records, r.Replace)
	if err != nil {
		return nil, err
	}
	return deliver(records, out, opts)
}

// deliver hands results back per the InPlace option: either as the freshly
// built sequence, or written over the caller's records once all workers
// have finished reading them. The write-back never interleaves with worker
// reads; Map has already joined every worker by the time it runs.
func deliver(records, out []string, opts Options) ([]string, error) {
	if !opts.InPlace {
		return out, nil
	}
	copy(records, out)
	return records, nil
}

// rejectInPlace reports a ConfigError for operations whose result type
// cannot overwrite a []string.
func rejectInPlace(opts Options, op string) error {
	if !opts.InPlace {
		return nil
	}
	return &ConfigError{Field: "InPlace", Message: op + " results cannot overwrite the input records"}
}
