package bahr

import (
	"context"
	"strings"

	"github.com/aruuz-ai/go-bahr/lexicon"
)

// vowelOrHeh is the canonical set fixed by SPEC_FULL.md for the
// length-2 heuristic's "ends in a vowel-or-heh" test. spec.md §9 flags
// this set as inconsistently enumerated across source comments; this
// build takes {ا,ی,ے,و,ہ} as canonical and documents the choice rather
// than resolving it silently.
var vowelOrHeh = map[rune]bool{
	'ا': true, 'ی': true, 'ے': true, 'و': true, 'ہ': true,
}

// silentMarkers are removed from the bare form used for length-based
// heuristic dispatch (spec §4.4 step 4); their positions are not
// re-threaded into the heuristic taqti rendering since taqti is opaque
// pass-through data (SPEC_FULL.md §3).
var silentMarkers = map[rune]bool{
	'ھ': true, // aspiration marker
	'ں': true, // noon ghunna (nasalization)
}

// assigner produces candidate codes for every word on a line: lookup
// first, heuristics as fallback, and an optional compound-split third
// alternative when neither produces a plausible code length.
type assigner struct {
	lex        lexicon.Lookup
	minCodeLen int
	maxCodeLen int
}

func newAssigner(lex lexicon.Lookup, minLen, maxLen int) *assigner {
	return &assigner{lex: lex, minCodeLen: minLen, maxCodeLen: maxLen}
}

// assign populates w.Codes/Taqti/Muarrab (and w.IsVaried) following
// spec §4.4's pipeline. lexiconUnavailable reports whether this word's
// own lookup returned an error; the failure is also noted on the word's
// base explain list. Every word queries the lexicon afresh.
func (a *assigner) assign(ctx context.Context, w *Word) (lexiconUnavailable bool) {
	entries, err := a.lex.Lookup(ctx, w.Surface, w.Raw)
	if err != nil {
		w.noteBase("%s, falling back to heuristics: %v", ErrLexiconUnavailable, err)
		entries = nil
		lexiconUnavailable = true
	}

	if len(entries) > 0 {
		for _, e := range entries {
			code := taqtiToCode(e.Taqti)
			if code == "" {
				continue
			}
			w.addCode(code, e.Taqti, w.Raw)
			w.noteBase("code %q from %s lookup", code, e.Source)
			if e.IsVaried {
				w.IsVaried = true
			}
		}
	}

	if len(w.Codes) == 0 {
		code, taqti, rule := a.heuristicFor(w.Surface)
		w.addCode(code, taqti, w.Surface)
		w.noteBase("code %q from heuristic-len-%s", code, rule)
	}

	if !a.anyPlausible(w.Codes) {
		a.tryCompoundSplit(ctx, w)
	}

	return lexiconUnavailable
}

// taqtiToCode converts a lexicon taqti string to the {=,-,x} alphabet:
// 'L' (long-vowel indicator) → '=', 'S' (short-vowel indicator) → '-',
// 'X' (ambiguous indicator) → 'x'. Any other rune is not a syllable
// marker and is skipped.
func taqtiToCode(taqti string) string {
	var b strings.Builder
	for _, r := range taqti {
		switch r {
		case 'L':
			b.WriteByte('=')
		case 'S':
			b.WriteByte('-')
		case 'X':
			b.WriteByte('x')
		}
	}
	return b.String()
}

// anyPlausible reports whether at least one of codes has a length a
// meter in the catalogue could possibly accept.
func (a *assigner) anyPlausible(codes []string) bool {
	for _, c := range codes {
		if len(c) >= a.minCodeLen && len(c) <= a.maxCodeLen {
			return true
		}
	}
	return false
}

// bareForLength strips diacritics and silent nasal/aspirate markers,
// the input the length-indexed heuristic dispatches on.
func bareForLength(surface string) string {
	stripped := removeDiacritics(surface)
	var b strings.Builder
	for _, r := range stripped {
		if silentMarkers[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// heuristicFor dispatches on bare word length to one of the five rules
// in spec §4.4 step 2, returning the produced code, a taqti rendering,
// and the rule name used (for explain).
func (a *assigner) heuristicFor(surface string) (code, taqti, rule string) {
	bare := bareForLength(surface)
	letters := graphemeRunes(bare)
	code = scanChunk(letters)
	return code, surface, ruleNameFor(len(letters))
}

func ruleNameFor(n int) string {
	switch {
	case n <= 1:
		return "1"
	case n == 2:
		return "2"
	case n == 3:
		return "3"
	case n == 4:
		return "4"
	default:
		return "5+"
	}
}

// scanChunk applies the length-indexed heuristic to a grapheme-cluster
// slice, recursing for length>=5 by peeling leading 2- or 3-grapheme
// syllables.
func scanChunk(letters []string) string {
	switch len(letters) {
	case 0:
		return ""
	case 1:
		return scanLen1(letters)
	case 2:
		return scanLen2(letters)
	case 3:
		return scanLen3(letters)
	case 4:
		return scanLen2(letters[:2]) + scanLen2(letters[2:])
	default:
		return scanLenGE5(letters)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// lastRune returns the final rune of s: for a grapheme cluster made of
// a base letter plus a trailing combining mark, that is the mark
// itself, which firstRune would miss.
func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func hasDiacritic(s string) bool {
	for _, r := range s {
		if diacriticMarks[r] {
			return true
		}
	}
	return false
}

// scanLen1: "آ" (madd-alif) → "="; otherwise "-".
func scanLen1(letters []string) string {
	if letters[0] == "آ" {
		return "="
	}
	return "-"
}

// scanLen2: starts with "آ" → "=-"; ends with vowel-or-heh → "x"
// (flexible); else "=".
func scanLen2(letters []string) string {
	if letters[0] == "آ" {
		return "=-"
	}
	last := firstRune(letters[len(letters)-1])
	if vowelOrHeh[last] {
		return "x"
	}
	return "="
}

// scanLen3: if the middle grapheme bears a diacritic, "=x" (two
// syllables; which diacritic it is does not change the result); else
// if the final char is
// vowel-or-heh, "=x"; else "==" or "=-" depending on whether the
// second grapheme is consonantal.
func scanLen3(letters []string) string {
	if hasDiacritic(letters[1]) {
		return "=" + "x"
	}
	last := firstRune(letters[len(letters)-1])
	if vowelOrHeh[last] {
		return "=x"
	}
	second := firstRune(letters[1])
	if vowelOrHeh[second] {
		return "=-"
	}
	return "=="
}

// scanLenGE5 peels 2- or 3-grapheme leading syllables (2 preferred,
// 3 when a 2-peel would strand a lone trailing consonant) and
// concatenates each sub-piece's scan.
func scanLenGE5(letters []string) string {
	var b strings.Builder
	remaining := letters
	for len(remaining) >= 4 {
		peel := 2
		if len(remaining)-2 == 1 {
			peel = 3
		}
		b.WriteString(scanChunk(remaining[:peel]))
		remaining = remaining[peel:]
	}
	b.WriteString(scanChunk(remaining))
	return b.String()
}

// tryCompoundSplit attempts every split of w.Surface into two halves,
// looks up or heuristic-scans each half, and adds the Cartesian
// product of their codes as additional alternatives (spec §4.4 step 3).
func (a *assigner) tryCompoundSplit(ctx context.Context, w *Word) {
	letters := graphemeRunes(w.Surface)
	if len(letters) < 2 {
		return
	}
	for split := 1; split < len(letters); split++ {
		left := strings.Join(letters[:split], "")
		right := strings.Join(letters[split:], "")

		leftCodes := a.codesForHalf(ctx, left)
		rightCodes := a.codesForHalf(ctx, right)

		for _, lc := range leftCodes {
			for _, rc := range rightCodes {
				combined := lc + rc
				w.addCode(combined, left+"+"+right, w.Surface)
				w.noteBase("code %q from compound split %q/%q", combined, left, right)
			}
		}
	}
}

// codesForHalf looks up half, falling back to the heuristic if the
// lexicon returns nothing.
func (a *assigner) codesForHalf(ctx context.Context, half string) []string {
	entries, err := a.lex.Lookup(ctx, half, half)
	if err == nil && len(entries) > 0 {
		var codes []string
		for _, e := range entries {
			if c := taqtiToCode(e.Taqti); c != "" {
				codes = append(codes, c)
			}
		}
		if len(codes) > 0 {
			return codes
		}
	}
	code, _, _ := a.heuristicFor(half)
	return []string{code}
}
