package bahr

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/rivo/uniseg"
)

// Punctuation stripped by clean_line, spec §4.1. Urdu comma (،) is
// handled separately: it is a token separator, not simply discarded.
// The hyphen is kept out of this list and added to the character class
// as an explicit `\-`, so it can never form a range inside the class.
const latinAndUrduPunctuation = `,"*'۔?!`

// Zero-width and bidi control characters stripped from every line
// before tokenization: ZWSP/ZWNJ/ZWJ, LRM/RLM, the directional
// embedding/override/isolate controls, and the UTF-8 BOM.
const zeroWidthAndBidi = "​‌‍‎‏‪‫‬‭‮⁦⁧⁨⁩\xef\xbb\xbf"

// urduComma is not removed with the other punctuation: cleanLine turns
// every run of whitespace and Urdu commas into a single space, so the
// comma always acts as a token separator.
const urduComma = "،"

var (
	// punctuationPattern matches any punctuation or zero-width/bidi
	// control character clean_line removes outright. Built with
	// regexp2, as the teacher's codec package does for its splitting
	// patterns, rather than stdlib regexp.
	punctuationPattern = regexp2.MustCompile(
		`[`+regexp2.Escape(latinAndUrduPunctuation)+`\-`+regexp2.Escape(zeroWidthAndBidi)+`]`,
		regexp2.None,
	)

	// whitespaceRunPattern collapses runs of whitespace/separator-class
	// characters (including the Urdu comma) into one token boundary.
	whitespaceRunPattern = regexp2.MustCompile(`[\s`+regexp2.Escape(urduComma)+`]+`, regexp2.None)
)

// nasalLetters are the "noon" letters that, immediately followed by a
// stop-cluster consonant, split a token per spec §4.1's tokenize rule.
var nasalLetters = map[rune]bool{
	'ن': true,
	'ں': true,
}

// stopClusterLetters are the plosive consonants whose adjacency to a
// nasal letter triggers the noon+stop token split.
var stopClusterLetters = map[rune]bool{
	'ب': true, 'پ': true, 'ت': true, 'ٹ': true,
	'ج': true, 'چ': true, 'د': true, 'ڈ': true,
	'ک': true, 'گ': true, 'ق': true,
}

// diacriticMarks is the full set of combining marks removed for
// scansion purposes by remove_diacritics, spec §4.1 and §6.
var diacriticMarks = map[rune]bool{}

func init() {
	for r := rune(0x064B); r <= 0x0652; r++ {
		diacriticMarks[r] = true
	}
	diacriticMarks[0x0654] = true
	diacriticMarks[0x0656] = true
	diacriticMarks[0x0658] = true
	diacriticMarks[0x0670] = true
}

// cleanLine strips punctuation and zero-width/bidi controls, then
// collapses runs of whitespace and Urdu commas into single separators.
// Idempotent: cleanLine(cleanLine(x)) == cleanLine(x) (testable
// property S8-5 in SPEC_FULL.md / spec.md §8 item 5).
func cleanLine(text string) string {
	stripped, err := punctuationPattern.Replace(text, "", -1, -1)
	if err != nil {
		// regexp2.Replace only errors on a catastrophic-backtracking
		// timeout, which None-mode patterns with no backreferences
		// cannot trigger; fall back to the raw text rather than lose
		// the line.
		stripped = text
	}
	collapsed, err := whitespaceRunPattern.Replace(stripped, " ", -1, -1)
	if err != nil {
		collapsed = stripped
	}
	return strings.TrimSpace(collapsed)
}

// tokenize splits a cleaned line into surface-form tokens in reading
// order, additionally splitting any token at a noon+stop boundary.
func tokenize(line string) []string {
	cleaned := cleanLine(line)
	if cleaned == "" {
		return nil
	}
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, splitNoonStop(f)...)
	}
	return tokens
}

// splitNoonStop splits tok into two tokens at the first noon+stop
// boundary it finds (a nasal letter immediately followed by a stop
// cluster consonant); a token with no such boundary is returned as-is.
func splitNoonStop(tok string) []string {
	runes := []rune(tok)
	for i := 0; i < len(runes)-1; i++ {
		if nasalLetters[runes[i]] && stopClusterLetters[runes[i+1]] {
			left := string(runes[:i+1])
			right := string(runes[i+1:])
			if left == "" || right == "" {
				continue
			}
			return []string{left, right}
		}
	}
	return []string{tok}
}

// foldRule is one entry of the orthographic fold table, spec §6.
// finalOnly restricts the fold to the token's last grapheme cluster,
// for rules spec §6 qualifies by position (the hamza-on-yeh fold is
// stated as "ئ(final)"); the other rules apply wherever they occur.
type foldRule struct {
	from      string
	to        string
	finalOnly bool
}

// foldTable folds orthographic variants deterministically. Order does
// not matter: later rules never need to see earlier rules' output here,
// since none of the `from` forms overlaps another rule's `to` form.
var foldTable = []foldRule{
	// hamza-on-yeh (U+0626) → yeh (U+06CC) + hamza-above (U+0654), but
	// only in word-final position: a medial ئ (as in آئی، گئی) is a
	// distinct letter, not this fold's target.
	{from: "\u0626", to: "\u06CC\u0654", finalOnly: true},
	// alif (U+0627) + madd-sign (U+0653) → madd-alif (U+0622)
	{from: "\u0627\u0653", to: "\u0622"},
	// combined do-chashmi-heh-hamza (U+06C2) → heh goal (U+06C1) + hamza-above (U+0654)
	{from: "\u06C2", to: "\u06C1\u0654"},
}

// cleanWord folds orthographic variants in tok per the table above.
func cleanWord(tok string) string {
	out := tok
	for _, rule := range foldTable {
		if rule.finalOnly {
			out = foldFinalGrapheme(out, rule.from, rule.to)
			continue
		}
		out = strings.ReplaceAll(out, rule.from, rule.to)
	}
	return out
}

// foldFinalGrapheme applies a from→to fold only when tok's last
// grapheme cluster begins with from, preserving any combining marks
// that trail it within that cluster.
func foldFinalGrapheme(tok, from, to string) string {
	letters := graphemeRunes(tok)
	if len(letters) == 0 {
		return tok
	}
	last := len(letters) - 1
	if !strings.HasPrefix(letters[last], from) {
		return tok
	}
	letters[last] = to + letters[last][len(from):]
	return strings.Join(letters, "")
}

// removeDiacritics strips the full set of Arabic combining marks from
// word, for scansion purposes only; the original (with diacritics) is
// kept separately for lexicon lookup. Iterates by rune, not grapheme
// cluster: a combining mark is itself never the start of a cluster, so
// rune-by-rune filtering can't split a base letter from an unrelated
// mark it isn't attached to.
func removeDiacritics(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if diacriticMarks[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// graphemeLen counts user-perceived characters in s (a base letter plus
// any combining marks it carries count once), used by C4's length-
// indexed heuristic dispatch so a diacritic never shifts a word into
// the wrong length bucket.
func graphemeLen(s string) int {
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n++
	}
	return n
}

// graphemeRunes splits s into its grapheme clusters, each returned as
// the string of runes forming it.
func graphemeRunes(s string) []string {
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
