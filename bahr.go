// Package bahr scans Urdu poetic couplets for their classical prosodic
// meter (bahr): given one or more lines of a couplet it produces, per
// line, every surviving scansion against the meter catalogue, then
// elects one dominant meter across the couplet as a whole.
package bahr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aruuz-ai/go-bahr/catalogue"
	"github.com/aruuz-ai/go-bahr/lexicon"
)

var (
	// ErrCatalogueInvariant wraps a panic raised by catalogue.New's
	// self-check — a build-time defect in the static meter tables, never
	// a condition a caller can recover from by retrying.
	ErrCatalogueInvariant = errors.New("bahr: catalogue invariant violation")

	// ErrNoLines is returned when Scan is called with an empty couplet;
	// there is nothing to resolve dominance over.
	ErrNoLines = errors.New("bahr: no lines given")

	// ErrLexiconUnavailable marks a word's explain trail when the
	// lexicon returns an error (spec §7): the scan proceeds on
	// heuristics alone and never aborts, so this is never returned from
	// Scan itself — it is wrapped into the affected word's base notes.
	ErrLexiconUnavailable = errors.New("bahr: lexicon unavailable")
)

// Options configures one Scan call, mirroring the teacher's
// Get(encoding Encoding) shape: a small plain value, not a builder.
type Options struct {
	// Fuzzy relaxes nothing in this build; reserved for a future
	// approximate-match mode (spec.md leaves it an Open Question beyond
	// this engine's scope). Carried so callers can migrate forward
	// without a breaking signature change.
	Fuzzy bool
	// FreeVerse skips dominant-meter resolution: every line is scanned
	// independently and IsDominant is left false on every result.
	FreeVerse bool
}

// Engine owns the process-lifetime Meter Catalogue, the pluggable
// lexicon, and the node budget for one couplet's scans. It carries no
// mutable state beyond what a single Scan call produces, so one Engine
// is safe to reuse (but not to share concurrently mid-Scan) across
// many couplets, per spec.md §5's single-threaded-per-couplet model.
type Engine struct {
	cat    *catalogue.Catalogue
	lex    lexicon.Lookup
	logger *slog.Logger

	nodeBudget             int
	minCodeLen, maxCodeLen int
}

// EngineOption customizes NewEngine beyond its required lexicon.
type EngineOption func(*Engine)

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithNodeBudget overrides the default per-line tree node budget
// (spec §4.6: 100,000).
func WithNodeBudget(n int) EngineOption {
	return func(e *Engine) { e.nodeBudget = n }
}

// NewEngine builds an Engine backed by lex, self-checking the static
// meter catalogue. A catalogue invariant violation is a startup-time
// defect (spec §7); NewEngine recovers catalogue.New's panic and
// reports it as ErrCatalogueInvariant rather than letting it crash the
// caller's process, since a library should never panic across its own
// API boundary.
func NewEngine(lex lexicon.Lookup, opts ...EngineOption) (eng *Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			eng = nil
			err = fmt.Errorf("%w: %v", ErrCatalogueInvariant, r)
		}
	}()

	cat := catalogue.New()
	minLen, maxLen := codeLenBounds(cat)

	e := &Engine{
		cat:        cat,
		lex:        lex,
		logger:     slog.Default(),
		nodeBudget: 100_000,
		minCodeLen: minLen,
		maxCodeLen: maxLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// codeLenBounds returns the smallest and largest symbol length across
// every catalogue pattern's four variants, the plausibility window C4
// uses to decide whether a base code is worth keeping before falling
// back to a compound split.
func codeLenBounds(cat *catalogue.Catalogue) (min, max int) {
	min = -1
	for i := 0; i < cat.Len(); i++ {
		pattern := cat.Pattern(i)
		for k := 0; k < 4; k++ {
			n := symbolLen(catalogue.Variant(pattern, k))
			if min < 0 || n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
	}
	if min < 0 {
		min = 0
	}
	return min, max
}

// defaultEngine is the package-level Engine backing the convenience
// Scan function, built lazily against an empty lexicon so the package
// is usable with no setup; callers who have a real lexicon should
// build their own Engine via NewEngine instead.
var (
	defaultEngineOnce sync.Once
	defaultEngineVal  *Engine
	defaultEngineErr  error
)

func defaultEngine() (*Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngineVal, defaultEngineErr = NewEngine(lexicon.NewMemoryStore(nil))
	})
	return defaultEngineVal, defaultEngineErr
}

// Scan is the package-level convenience entry point, built on a
// lazily-constructed default Engine with an empty lexicon (every word
// falls back to heuristics). Most callers with a real lexicon should
// construct their own Engine via NewEngine and call Engine.Scan.
func Scan(ctx context.Context, lines []string, opts Options) ([]LineResult, error) {
	eng, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return eng.Scan(ctx, lines, opts)
}

// Scan runs the full C1→C8 pipeline over one couplet's lines: each
// line is tokenized, assigned candidate codes, rewritten by the
// prosodic rules, and walked through the code tree independently;
// results are then reconciled by the Dominant Meter Resolver across
// all lines together (spec §4.8), unless opts.FreeVerse is set.
//
// ctx is checked between lines, not inside a line's tree walk: the
// walk is bounded by the node budget and is not expected to block
// (spec.md §5).
func (e *Engine) Scan(ctx context.Context, lines []string, opts Options) ([]LineResult, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	asg := newAssigner(e.lex, e.minCodeLen, e.maxCodeLen)
	perLine := make([][]LineResult, len(lines))

	for i, text := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		perLine[i] = e.scanLine(ctx, asg, text)
	}

	if !opts.FreeVerse {
		resolveDominant(e.cat, perLine)
	}

	var out []LineResult
	for _, lr := range perLine {
		out = append(out, lr...)
	}
	return out, nil
}

// scanLine runs C1 (tokenize), C4 (assign), C5 (prosody), C6 (tree)
// and C7 (match) for a single line.
func (e *Engine) scanLine(ctx context.Context, asg *assigner, text string) []LineResult {
	line := &Line{Original: text}
	for _, tok := range tokenize(text) {
		surface := removeDiacritics(cleanWord(tok))
		w := &Word{Surface: surface, Raw: cleanWord(tok)}
		if asg.assign(ctx, w) {
			e.logger.Warn("lexicon unavailable", "word", w.Surface)
		}
		line.Words = append(line.Words, w)
	}

	if len(line.Words) == 0 {
		// spec.md §4.1: no tokens after cleaning produces an empty Line;
		// downstream stages yield an empty result list, not an error and
		// not an "unmatched" placeholder (that's reserved for lines that
		// do have words but no surviving scansion).
		return nil
	}

	applyProsody(line)

	words := line.activeWords()
	t := newTree(e.cat, words, e.nodeBudget)
	paths, budgetHit := t.walk()
	if budgetHit {
		e.logger.Warn("node budget exceeded", "line", text)
	}

	if len(paths) == 0 {
		unmatched := unmatchedResult(text, line.Words)
		unmatched.Partial = budgetHit
		return []LineResult{unmatched}
	}
	return matchLine(text, words, paths, t.nodes, e.cat, budgetHit)
}
