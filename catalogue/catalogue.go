// Package catalogue holds the immutable table of classical Urdu bahr
// (meter) templates and the matching helpers built on top of it: foot
// decomposition (afail) and the four zihaf/illat-compatible pattern
// variants described by the scansion engine.
package catalogue

import (
	"fmt"
	"strings"
)

// Symbol alphabet accepted inside a pattern or a code.
const (
	Long      = '='
	Short     = '-'
	Ambiguous = 'x'
	Caesura   = '+'
	Boundary  = '~'
)

// Catalogue is an immutable, process-lifetime table of meter templates.
// Build it once with New and share it read-only across engines.
type Catalogue struct {
	patterns  []string
	names     []string
	feet      []string
	feetNames []string

	byName map[string][]int
}

// New builds the catalogue from the static tables in tables.go and
// self-checks its invariants. A violation is a CatalogueInvariantViolation
// per the scansion engine's error taxonomy: it is fatal at startup, never
// a recoverable error, so New panics rather than returning one.
func New() *Catalogue {
	c := &Catalogue{
		patterns:  meterPatterns,
		names:     meterNames,
		feet:      footPatterns,
		feetNames: footNames,
	}
	c.selfCheck()

	c.byName = make(map[string][]int, len(c.names))
	for i, n := range c.names {
		c.byName[n] = append(c.byName[n], i)
	}
	return c
}

func (c *Catalogue) selfCheck() {
	if len(c.patterns) != len(c.names) {
		panic(fmt.Sprintf("catalogue invariant violation: %d patterns but %d names", len(c.patterns), len(c.names)))
	}
	if len(c.feet) != len(c.feetNames) {
		panic(fmt.Sprintf("catalogue invariant violation: %d feet but %d foot names", len(c.feet), len(c.feetNames)))
	}
	for i, p := range c.patterns {
		if p == "" {
			panic(fmt.Sprintf("catalogue invariant violation: pattern %d is empty", i))
		}
		for _, r := range p {
			switch r {
			case Long, Short, Ambiguous, Caesura, Boundary:
			default:
				panic(fmt.Sprintf("catalogue invariant violation: pattern %d (%s) contains %q outside {=,-,x,+,~}", i, p, r))
			}
			if r == ' ' || r == '\t' || r == '\n' {
				panic(fmt.Sprintf("catalogue invariant violation: pattern %d (%s) contains whitespace", i, p))
			}
		}
	}
}

// Len reports the number of catalogue indices.
func (c *Catalogue) Len() int { return len(c.patterns) }

// IndexByName returns every catalogue index sharing the given display
// name; multiple indices share a name when they are variants of the
// same bahr.
func (c *Catalogue) IndexByName(name string) []int {
	return c.byName[name]
}

// Pattern returns the raw template for catalogue index i.
func (c *Catalogue) Pattern(i int) string { return c.patterns[i] }

// Name returns the display name for catalogue index i.
func (c *Catalogue) Name(i int) string { return c.names[i] }

// Names returns the set of distinct display names in the catalogue, in
// first-occurrence (catalogue) order.
func (c *Catalogue) Names() []string {
	seen := make(map[string]bool, len(c.byName))
	out := make([]string, 0, len(c.byName))
	for _, n := range c.names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Variant computes one of the four zihaf/illat-compatible forms of a
// pattern, per the scansion engine's variant policy:
//
//	v0: the pattern itself
//	v1: the pattern with its final caesura segment replaced by the
//	    segment's stripped form (its last symbol dropped)
//	v2: the pattern with a trailing short appended
//	v3: the pattern without its trailing symbol
//
// k must be in [0,3]; any other value panics, since it indicates a
// programming error, not bad input.
func Variant(pattern string, k int) string {
	switch k {
	case 0:
		return pattern
	case 1:
		return stripFinalSegment(pattern)
	case 2:
		return pattern + string(Short)
	case 3:
		if pattern == "" {
			return pattern
		}
		return pattern[:len(pattern)-1]
	default:
		panic(fmt.Sprintf("catalogue: invalid variant index %d", k))
	}
}

// stripFinalSegment implements v1: find the pattern's final hemistich
// segment (the text after its last boundary/caesura marker, or the
// whole pattern if it carries none) and drop that segment's trailing
// symbol.
func stripFinalSegment(pattern string) string {
	idx := strings.LastIndexAny(pattern, string(Caesura)+string(Boundary))
	if idx < 0 {
		if pattern == "" {
			return pattern
		}
		return pattern[:len(pattern)-1]
	}
	head, tail := pattern[:idx+1], pattern[idx+1:]
	if tail == "" {
		return pattern
	}
	return head + tail[:len(tail)-1]
}

// Afail decomposes a matched pattern variant into its named feet
// (rukn) by a greedy left-to-right match against the feet table:
// at each position, try the feet table in table order and take the
// longest one that matches at that position; ties go to whichever
// comes first in the table. '+' and '~' are retained verbatim between
// feet in the rendering; they are not matched against the feet table.
func (c *Catalogue) Afail(pattern string) []string {
	var out []string
	i := 0
	for i < len(pattern) {
		if pattern[i] == Caesura || pattern[i] == Boundary {
			out = append(out, string(pattern[i]))
			i++
			continue
		}
		best := -1
		bestLen := 0
		for fi, foot := range c.feet {
			if !strings.HasPrefix(pattern[i:], foot) {
				continue
			}
			if len(foot) > bestLen {
				bestLen = len(foot)
				best = fi
			}
		}
		if best < 0 {
			// No foot in the table matches here; fall back to a single
			// unnamed symbol so Afail always terminates and accounts
			// for every character of the pattern.
			out = append(out, string(pattern[i]))
			i++
			continue
		}
		out = append(out, c.feetNames[best])
		i += bestLen
	}
	return out
}

// Render joins the foot names and retained separators produced by
// Afail into a single human-readable rendering, e.g. "مفعول + فاعلاتن".
func Render(feet []string) string {
	return strings.Join(feet, " ")
}
