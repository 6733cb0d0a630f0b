package bahr

import "github.com/aruuz-ai/go-bahr/catalogue"

// treeNode is one arena-resident node of the per-line code tree
// (spec §4.6, design note in §9): a flat slice of records with parent
// indices instead of an owning-pointer tree, so lifetime is trivial and
// traversal stays cache-friendly. The synthetic root (index 0) carries
// codeSymbol == "" and wordIndex == -1.
type treeNode struct {
	codeSymbol string
	wordIndex  int
	choiceIdx  int
	parent     int
}

// ScanPath is one surviving root-to-leaf path: the terminal node index
// chosen for each word, plus the catalogue indices still alive when the
// line's words were exhausted.
type ScanPath struct {
	terminal     []int // per-word terminal node index into the arena
	aliveMeters  []int
}

// choice is one alternative a word contributes to the tree: its code
// plus the taqti that produced it. Codes come first, then GraftCodes;
// the choice itself does not record which of the two it came from.
type choice struct {
	code  string
	taqti string
}

// choicesFor returns the union of Codes and GraftCodes for word index
// i, the Cartesian-product factor the tree branches on at depth i.
func choicesFor(w *Word) []choice {
	out := make([]choice, 0, len(w.Codes)+len(w.GraftCodes))
	for i, c := range w.Codes {
		out = append(out, choice{code: c, taqti: w.Taqti[i]})
	}
	for i, c := range w.GraftCodes {
		out = append(out, choice{code: c, taqti: w.GraftTaqti[i]})
	}
	return out
}

// tree owns the arena and the catalogue it matches against.
type tree struct {
	cat   *catalogue.Catalogue
	nodes []treeNode
	words []*Word
	budget int
}

func newTree(cat *catalogue.Catalogue, words []*Word, budget int) *tree {
	t := &tree{cat: cat, words: words, budget: budget}
	t.nodes = append(t.nodes, treeNode{wordIndex: -1, parent: -1})
	return t
}

// walk performs the depth-first, pruned traversal described in spec
// §4.6 and returns every surviving ScanPath plus whether the node
// budget was exhausted before the walk completed (BudgetExceeded,
// spec §7 — emit partial results, never throw).
func (t *tree) walk() ([]ScanPath, bool) {
	// Hindi/Zamzama meters are left out: they need the PatternTree
	// matcher, which this build omits, so lines that would only scan
	// under them end up "unmatched".
	allIndices := make([]int, 0, t.cat.Len())
	for i := 0; i < t.cat.Len(); i++ {
		if catalogue.IsSpecial(t.cat.Name(i)) {
			continue
		}
		allIndices = append(allIndices, i)
	}

	var results []ScanPath
	budgetHit := false
	path := make([]int, 0, len(t.words))

	var recurse func(wordIdx, parent int, partial string, alive []int)
	recurse = func(wordIdx, parent int, partial string, alive []int) {
		if budgetHit {
			return
		}
		if len(t.nodes) >= t.budget {
			budgetHit = true
			return
		}
		if wordIdx == len(t.words) {
			survivors := checkCodeLength(partial, alive, t.cat)
			if len(survivors) > 0 {
				results = append(results, ScanPath{
					terminal:    append([]int(nil), path...),
					aliveMeters: survivors,
				})
			}
			return
		}

		for ci, ch := range choicesFor(t.words[wordIdx]) {
			if budgetHit {
				return
			}
			nodeIdx := len(t.nodes)
			t.nodes = append(t.nodes, treeNode{
				codeSymbol: ch.code,
				wordIndex:  wordIdx,
				choiceIdx:  ci,
				parent:     parent,
			})

			candidatePartial := partial + ch.code
			stillAlive := pruneAlive(candidatePartial, alive, t.cat, wordIdx == len(t.words)-1)
			if len(stillAlive) == 0 {
				continue
			}

			path = append(path, nodeIdx)
			recurse(wordIdx+1, nodeIdx, candidatePartial, stillAlive)
			path = path[:len(path)-1]
		}
	}

	recurse(0, 0, "", allIndices)
	return results, budgetHit
}

// pruneAlive filters alive to the catalogue indices whose pattern (in
// any of the four variant forms) is still prefix-compatible with
// partial. isLastWord relaxes nothing by itself; checkCodeLength does
// the final exact-length test once every word has been consumed.
func pruneAlive(partial string, alive []int, cat *catalogue.Catalogue, isLastWord bool) []int {
	var out []int
	for _, m := range alive {
		pattern := cat.Pattern(m)
		matched := false
		for k := 0; k < 4; k++ {
			if isMatch(partial, catalogue.Variant(pattern, k)) {
				matched = true
				break
			}
		}
		if matched {
			out = append(out, m)
		}
	}
	return out
}

// checkCodeLength performs the final length check spec §4.6 requires
// once all words are consumed: partial must equal one of the four
// variants of at least one surviving meter, exactly (x permits
// symbol-level substitution but never a length mismatch).
func checkCodeLength(partial string, alive []int, cat *catalogue.Catalogue) []int {
	var out []int
	for _, m := range alive {
		pattern := cat.Pattern(m)
		for k := 0; k < 4; k++ {
			variant := catalogue.Variant(pattern, k)
			if symbolLen(variant) == len(partial) && isMatch(partial, variant) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// symbolLen is the length of variant's symbol-bearing characters,
// excluding '+'/'~' boundary markers (which contribute nothing to a
// full_code built purely from word contributions).
func symbolLen(variant string) int {
	n := 0
	for _, r := range variant {
		if r != catalogue.Caesura && r != catalogue.Boundary {
			n++
		}
	}
	return n
}

// isMatch reports whether partial is a prefix-compatible string of
// pattern under spec §4.6's symbol rules: '=' matches '=', '-' matches
// '-', 'x' in partial matches either in pattern; '~'/'+' in pattern are
// boundary markers skipped for symbol comparison. isMatch sees only the
// concatenated partial, not where one word's code ends and the next
// begins, so it does not check that a marker falls on a boundary between
// word contributions: a word whose code straddles a marker still matches.
func isMatch(partial, pattern string) bool {
	pi, ppos := 0, 0
	for ppos < len(pattern) {
		if pi == len(partial) {
			// partial ended: a prefix never has to consume the rest of
			// pattern.
			return true
		}
		pr := pattern[ppos]
		if pr == catalogue.Caesura || pr == catalogue.Boundary {
			ppos++
			continue
		}
		pc := partial[pi]
		if !symbolMatches(pc, pr) {
			return false
		}
		pi++
		ppos++
	}
	return pi == len(partial)
}

func symbolMatches(partialSym, patternSym byte) bool {
	switch partialSym {
	case catalogue.Ambiguous:
		return patternSym == catalogue.Long || patternSym == catalogue.Short
	default:
		return partialSym == patternSym
	}
}
