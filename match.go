package bahr

import "github.com/aruuz-ai/go-bahr/catalogue"

// matchLine turns every (ScanPath, alive meter) pair into a LineResult
// (spec §4.7), deduplicating within the line by (meter_name, full_code).
func matchLine(lineText string, words []*Word, paths []ScanPath, nodes []treeNode, cat *catalogue.Catalogue, partial bool) []LineResult {
	type key struct {
		name string
		code string
	}
	seen := make(map[key]bool)
	var out []LineResult

	for _, p := range paths {
		fullCode, wordTaqti := recoverPath(p, nodes, words)
		for _, m := range p.aliveMeters {
			name := cat.Name(m)
			k := key{name: name, code: fullCode}
			if seen[k] {
				continue
			}
			seen[k] = true

			pattern := cat.Pattern(m)
			variant := pattern
			for vk := 0; vk < 4; vk++ {
				v := catalogue.Variant(pattern, vk)
				if symbolLen(v) == len(fullCode) && isMatch(fullCode, v) {
					variant = v
					break
				}
			}
			feet := cat.Afail(variant)

			out = append(out, LineResult{
				Line:      lineText,
				MeterName: name,
				Feet:      catalogue.Render(feet),
				WordTaqti: wordTaqti,
				FullCode:  fullCode,
				Explain:   flattenExplain(words),
				Partial:   partial,
			})
		}
	}
	return out
}

// recoverPath reads a ScanPath's per-word terminal nodes in order to
// recover the ordered per-word chosen codes and taqti renderings. Each
// node only carries its chosen code symbol string and a choice index
// into choicesFor(word); the taqti that produced it is looked up there,
// since taqti is opaque passthrough data the tree itself never needs.
func recoverPath(p ScanPath, nodes []treeNode, words []*Word) (fullCode string, wordTaqti []string) {
	wordTaqti = make([]string, len(p.terminal))
	var code []byte
	for _, nodeIdx := range p.terminal {
		n := nodes[nodeIdx]
		code = append(code, n.codeSymbol...)
		wordTaqti[n.wordIndex] = choicesFor(words[n.wordIndex])[n.choiceIdx].taqti
	}
	return string(code), wordTaqti
}

// flattenExplain concatenates every word's explain notes in line order,
// base notes before prosody notes per word (SPEC_FULL.md §3).
func flattenExplain(words []*Word) []string {
	var out []string
	for _, w := range words {
		out = append(out, w.explain()...)
	}
	return out
}

// unmatchedResult builds the single NoMeterMatched placeholder (spec
// §7): meter_name "unmatched", empty feet, full_code the concatenation
// of each word's first code.
func unmatchedResult(lineText string, words []*Word) LineResult {
	var code []byte
	for _, w := range words {
		if w.dropped {
			continue
		}
		if len(w.Codes) > 0 {
			code = append(code, w.Codes[0]...)
		}
	}
	return LineResult{
		Line:      lineText,
		MeterName: "unmatched",
		Feet:      "",
		WordTaqti: nil,
		FullCode:  string(code),
		Explain:   flattenExplain(words),
	}
}
