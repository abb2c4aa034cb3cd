package events

import "time"

// BuildStart is emitted before a base schema is built from SDL sources.
type BuildStart struct {
	Sources []string
}

// BuildFinish is emitted after a base schema build completes.
type BuildFinish struct {
	Sources  []string
	Types    int
	Err      error
	Duration time.Duration
}

// ValidateFinish is emitted after an extension document has been validated
// against a base schema.
type ValidateFinish struct {
	Sources    []string
	Violations int
	Err        error
	Duration   time.Duration
}

// ExtendStart is emitted before a schema is extended.
type ExtendStart struct {
	Sources []string
}

// ExtendFinish is emitted after a schema extension completes. Unchanged
// reports that the document contributed nothing and the base was returned.
type ExtendFinish struct {
	Sources    []string
	Types      int
	Directives int
	Unchanged  bool
	Err        error
	Duration   time.Duration
}
