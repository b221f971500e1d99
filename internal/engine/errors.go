package engine

import "strconv"

// ConfigError reports an invalid job configuration: a bad worker count, a
// negative replacement limit, or a replacement template referencing a group
// the pattern does not have. Detected before any chunk starts; the call
// aborts with no partial results.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "yurki: invalid " + e.Field + ": " + e.Message
}

// EncodingError reports a record that is not valid UTF-8. The engine's
// contract is that the caller only ever hands it well-formed text, so this
// is a contract violation by the caller, not a per-record condition: the
// whole call fails before any worker starts.
type EncodingError struct {
	// Index is the position of the offending record in the input.
	Index int
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return "yurki: record " + strconv.Itoa(e.Index) + " is not valid UTF-8"
}
