package yurki

import (
	"github.com/Aljutor/yurki/internal/engine"
	"github.com/Aljutor/yurki/internal/pattern"
)

// The engine's error taxonomy. Every kind is detected at the call boundary,
// before any parallel work begins; no error is ever raised mid-chunk and no
// call returns partial results.

// ConfigError reports an invalid option or replacement setup: Jobs below 1,
// a negative replacement count, a malformed template, a template reference
// to a group the pattern does not have, or InPlace on an operation that
// cannot honor it.
type ConfigError = engine.ConfigError

// CompileError reports a pattern that failed to compile.
type CompileError = pattern.CompileError

// EncodingError reports an input record that is not valid UTF-8. Records
// are contractually well-formed text; a violation fails the whole call.
type EncodingError = engine.EncodingError
