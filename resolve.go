package bahr

import (
	"strings"

	"github.com/aruuz-ai/go-bahr/catalogue"
)

// resolveDominant implements spec §4.8: scores every meter name that
// appears in any line's results by summed foot-subsequence overlap,
// then marks is_dominant on every LineResult carrying the winning name.
// Other LineResults are retained unmodified — the flag is sufficient,
// the engine never discards an alternative.
func resolveDominant(cat *catalogue.Catalogue, perLine [][]LineResult) {
	names := unionNames(perLine)
	if len(names) == 0 {
		return
	}

	type tally struct {
		score         int
		lineHits      int
		firstCatIndex int
	}
	scores := make(map[string]*tally, len(names))
	for _, name := range names {
		scores[name] = &tally{firstCatIndex: firstCatalogueIndex(cat, name)}
	}

	for _, line := range perLine {
		for _, name := range names {
			s, hit := calculateScore(cat, line, name)
			scores[name].score += s
			if hit {
				scores[name].lineHits++
			}
		}
	}

	winner := ""
	for _, name := range names {
		if winner == "" {
			winner = name
			continue
		}
		a, b := scores[name], scores[winner]
		switch {
		case a.score > b.score:
			winner = name
		case a.score == b.score && a.lineHits > b.lineHits:
			winner = name
		case a.score == b.score && a.lineHits == b.lineHits && a.firstCatIndex < b.firstCatIndex:
			winner = name
		}
	}

	for _, line := range perLine {
		for i := range line {
			line[i].IsDominant = line[i].MeterName == winner
		}
	}
}

// firstCatalogueIndex returns the lowest catalogue index sharing name,
// the tie-break spec §4.8(b) requires ("catalogue order of the first
// index carrying that name") — not the order names were first
// encountered while walking perLine's results, which reflects
// ScanPath/DFS discovery order and line order rather than catalogue
// order.
func firstCatalogueIndex(cat *catalogue.Catalogue, name string) int {
	best := -1
	for _, idx := range cat.IndexByName(name) {
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best
}

// unionNames collects the set of meter names appearing in any line's
// results. Iteration order here only drives deterministic map
// population in resolveDominant; the dominance tie-break itself uses
// firstCatalogueIndex, not this order. "unmatched" never competes.
func unionNames(perLine [][]LineResult) []string {
	seen := map[string]bool{}
	var out []string
	for _, line := range perLine {
		for _, r := range line {
			if r.MeterName == "unmatched" || seen[r.MeterName] {
				continue
			}
			seen[r.MeterName] = true
			out = append(out, r.MeterName)
		}
	}
	return out
}

// calculateScore iterates every catalogue index sharing name (its
// variants) and returns the maximum, over variants, of the number of
// feet of afail(pattern(variant)) that appear — in order, without
// reuse — in the line's best-matching LineResult's feet list. Ties
// between variants go to the one with the higher raw foot count.
// hit reports whether any LineResult in line actually carries name.
func calculateScore(cat *catalogue.Catalogue, line []LineResult, name string) (score int, hit bool) {
	var candidates [][]string
	for _, r := range line {
		if r.MeterName != name {
			continue
		}
		hit = true
		candidates = append(candidates, feetTokens(r.Feet))
	}
	if !hit {
		return 0, false
	}

	best := -1
	bestFootCount := -1
	for _, idx := range cat.IndexByName(name) {
		variantFeet := feetTokens(catalogue.Render(cat.Afail(cat.Pattern(idx))))
		overlap := 0
		for _, candidateFeet := range candidates {
			if n := subsequenceOverlap(variantFeet, candidateFeet); n > overlap {
				overlap = n
			}
		}
		if overlap > best || (overlap == best && len(variantFeet) > bestFootCount) {
			best = overlap
			bestFootCount = len(variantFeet)
		}
	}
	if best < 0 {
		best = 0
	}
	return best, true
}

// feetTokens splits a rendered feet string back into tokens, dropping
// the '+'/'~' boundary separators: only named feet count toward a score.
func feetTokens(rendered string) []string {
	fields := strings.Fields(rendered)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "+" || f == "~" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// subsequenceOverlap returns the length of the longest common
// subsequence between a and b (in order, without reuse) — "the number
// of feet ... that appear, in order and without reuse" per spec §4.8.
func subsequenceOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
