package yurki

// Options controls how a batch call runs. The zero value is not valid:
// obtain one from DefaultOptions and adjust it.
//
// Example:
//
//	opts := yurki.DefaultOptions()
//	opts.Jobs = 8
//	opts.CaseInsensitive = true
type Options struct {
	// CaseInsensitive selects case-insensitive matching. Resolved once at
	// pattern compile time, never per record.
	// Default: false
	CaseInsensitive bool

	// Jobs is the worker count. Must be at least 1; values above the
	// record count degrade gracefully to one record per worker. Results
	// are identical for every worker count.
	// Default: 1
	Jobs int

	// InPlace writes results back into the caller's records slice instead
	// of handing back a new one, once all workers have finished. It is a
	// memory-footprint option, not a semantic one, and only the operations
	// producing one string per record (Find, Replace) can honor it.
	// Default: false
	InPlace bool
}

// DefaultOptions returns the options every call starts from: sequential,
// case-sensitive, results in a fresh slice.
func DefaultOptions() Options {
	return Options{Jobs: 1}
}

// DefaultReplaceCount is the replacement limit Replace applies under the
// engine's default policy: substitute the first match only. Distinct from
// 0, which means unlimited.
const DefaultReplaceCount = 1
