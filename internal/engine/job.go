// Package engine implements the parallel batch-matching core: per-record
// operations built on a single restartable match primitive, contiguous
// work partitioning, and a fork-join executor with worker-private scratch.
//
// A Job is validated and its pattern compiled before any parallel work is
// scheduled; every failure mode surfaces at the call boundary. After
// construction a Job is immutable and shared read-only by all workers.
package engine

import (
	"fmt"

	"github.com/Aljutor/yurki/internal/pattern"
	"github.com/Aljutor/yurki/internal/replace"
)

// Job binds one compiled pattern to a validated worker count for the
// duration of a single batch call.
type Job struct {
	pat     *pattern.Pattern
	workers int
}

// New compiles expr and validates workers, failing fast on either. The
// pattern is compiled exactly once per call, never per record or per chunk.
func New(expr string, caseInsensitive bool, workers int) (*Job, error) {
	if workers < 1 {
		return nil, &ConfigError{Field: "Jobs", Message: "worker count must be at least 1"}
	}
	pat, err := pattern.Compile(expr, caseInsensitive)
	if err != nil {
		return nil, err
	}
	return &Job{pat: pat, workers: workers}, nil
}

// Replacer binds a parsed replacement template and a per-record substitution
// limit to the job. count semantics: 0 means unlimited, any positive value
// caps substitutions per record. Template references to groups the pattern
// does not have are rejected here, before any worker starts.
func (j *Job) Replacer(template string, count int) (*Replacer, error) {
	if count < 0 {
		return nil, &ConfigError{Field: "Count", Message: "replacement count must not be negative"}
	}
	tmpl, err := replace.Parse(template)
	if err != nil {
		return nil, &ConfigError{Field: "Replacement", Message: err.Error()}
	}
	if max := tmpl.MaxGroup(); max > j.pat.Groups() {
		return nil, &ConfigError{
			Field:   "Replacement",
			Message: fmt.Sprintf("template references group $%d but pattern has %d capture groups", max, j.pat.Groups()),
		}
	}
	return &Replacer{job: j, tmpl: tmpl, limit: count}, nil
}

// Replacer is the replace operation: a job plus its compiled template and
// substitution limit. Immutable and safe for concurrent use.
type Replacer struct {
	job   *Job
	tmpl  *replace.Template
	limit int
}
