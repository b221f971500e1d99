package engine

import (
	"sync"
	"unicode/utf8"
)

// Map runs fn over every record and returns one result per record, index
// aligned with the input regardless of worker count or completion order.
//
// The input is split into contiguous chunks, one goroutine per chunk, each
// with a private Scratch from the warm pool. Workers share nothing mutable:
// the job's pattern is immutable, and every worker writes only into its own
// disjoint region of the preallocated result slice, so ordered assembly
// needs no merge step and no locks. The call blocks until every chunk
// completes (synchronous fork-join); there is no cancellation and no
// partial-result delivery.
func Map[R any](j *Job, records []string, fn func(*Scratch, string) R) ([]R, error) {
	// Contract check at the call boundary, never mid-chunk: a call either
	// fully succeeds with one result per record or fails with nothing.
	for i, s := range records {
		if !utf8.ValidString(s) {
			return nil, &EncodingError{Index: i}
		}
	}

	out := make([]R, len(records))
	chunks := partition(len(records), j.workers)
	if len(chunks) == 0 {
		return out, nil
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(c chunk) {
			defer wg.Done()
			sc := getScratch()
			defer putScratch(sc)

			src := records[c.lo:c.hi]
			dst := out[c.lo:c.hi]
			for i, s := range src {
				dst[i] = fn(sc, s)
			}
		}(c)
	}
	wg.Wait()

	return out, nil
}
