// Package lexicon defines the external lookup contract the scansion
// engine's Word Code Assigner (C4) queries before it falls back to
// length-indexed heuristics, and ships one reference implementation.
//
// The contract is storage-agnostic by design (spec §4.3, §6): the
// engine depends only on the Lookup interface, never on a concrete
// database driver.
package lexicon

import "context"

// Source tags where a lookup entry came from, in the precedence order
// spec §4.3 mandates: exceptions, then master, then plurals; variations
// extend rather than replace a master hit.
type Source string

const (
	SourceException Source = "exception"
	SourceMaster    Source = "master"
	SourcePlural    Source = "plural"
	SourceVariation Source = "variation"
)

// Entry is one row returned by a lookup: a syllabification in the
// store's own character language (not yet folded to {=,-,x}; C4 owns
// that mapping) plus whether the entry is flagged as admitting
// multiple readings.
type Entry struct {
	ID       string
	Taqti    string
	IsVaried bool
	Source   Source
}

// Lookup is the external lexicon contract, spec §4.3. Implementations
// return zero or more entries; an empty, error-free result means "not
// found, fall back to heuristics" — it is not a failure.
//
// A non-nil error means the store itself is unavailable (spec §7's
// LexiconUnavailable): callers proceed with heuristics only and record
// the failure on the affected word's explain trail, they never abort
// the scan.
type Lookup interface {
	Lookup(ctx context.Context, surface, rawWithDiacritics string) ([]Entry, error)
}
