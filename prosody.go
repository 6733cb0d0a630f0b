package bahr

import "strings"

// zer and hamzaYeh are the raw-form endings that mark a word as carrying
// the izafat vowel-linkage: the zer (kasra, U+0650) or the hamza-yeh
// ligature (U+0626).
const (
	zer       = 'ِ'
	hamzaYeh  = 'ئ'
	alifChar  = 'ا'
	maddAlif  = 'آ'
	wawSingle = "و"
	alDefinite = "ال" // ال
)

// endsInConsonant reports whether word's last grapheme is outside the
// vowel-or-heh set, i.e. it is a consonant for prosodic purposes.
func endsInConsonant(word string) bool {
	letters := graphemeRunes(word)
	if len(letters) == 0 {
		return false
	}
	last := firstRune(letters[len(letters)-1])
	return !vowelOrHeh[last]
}

// applyProsody runs the four inter-word rules over l's active words in
// order (Al, Izafat, Ataf, Grafting), each as one left-to-right pass
// that sees the previous pass's output (spec §4.5). Izafat, Ataf and
// Grafting only append to Codes or GraftCodes, or mark a word dropped.
// Al also appends to wᵢ's Codes, but rewrites wᵢ₊₁'s Codes in place:
// each code longer than one symbol that starts with a short loses that
// short, so the original form of that code is no longer present.
func applyProsody(l *Line) {
	applyAl(l)
	applyIzafat(l)
	applyAtaf(l)
	applyGrafting(l)
}

// applyAl: if wᵢ₊₁ begins with the definite article "ال" and wᵢ ends in
// a consonant, the article's alif is not counted as a separate
// syllable: extend wᵢ's last code symbol (short becomes long; a
// trailing long gets an appended short).
func applyAl(l *Line) {
	words := l.activeWords()
	for i := 0; i < len(words)-1; i++ {
		wi, wj := words[i], words[i+1]
		if !strings.HasPrefix(wj.Raw, alDefinite) {
			continue
		}
		if !endsInConsonant(wi.Surface) {
			continue
		}
		for ci, code := range wi.Codes {
			if code == "" {
				continue
			}
			last := code[len(code)-1]
			var extended string
			switch last {
			case '-':
				extended = code[:len(code)-1] + "="
			default:
				extended = code + "-"
			}
			wi.addCode(extended, wi.Taqti[ci]+"+ال", wi.Muarrab[ci])
		}
		wi.noteProsody("al-absorption with %q", wj.Surface)
		for ci, code := range wj.Codes {
			// A single-symbol "-" code has nothing left once its only
			// short is absorbed: dropping it would produce "", violating
			// the non-empty code invariant (spec §3, §8 property 2).
			// Leave codes of length 1 untouched instead.
			if len(code) > 1 && code[0] == '-' {
				wj.Codes[ci] = code[1:]
			}
		}
		wj.noteProsody("dropped leading short absorbed by al-elision")
	}
}

// applyIzafat: if wᵢ's raw form ends with the izafat marker, append a
// short to each of wᵢ's codes, creating new alternatives; originals
// are kept (testable property 6: monotonic, never destructive).
func applyIzafat(l *Line) {
	words := l.activeWords()
	for i := 0; i < len(words); i++ {
		w := words[i]
		if !hasIzafatMarker(w.Raw) {
			continue
		}
		existing := append([]string(nil), w.Codes...)
		existingTaqti := append([]string(nil), w.Taqti...)
		existingMuarrab := append([]string(nil), w.Muarrab...)
		for ci, code := range existing {
			w.addCode(code+"-", existingTaqti[ci]+"+izafat", existingMuarrab[ci])
		}
		w.noteProsody("izafat appends a short mora")
	}
}

func hasIzafatMarker(raw string) bool {
	if raw == "" {
		return false
	}
	letters := graphemeRunes(raw)
	last := lastRune(letters[len(letters)-1])
	return last == zer || last == hamzaYeh
}

// applyAtaf: if wᵢ₊₁ is the single-letter conjunction و, merge it into
// wᵢ by appending a short to each of wᵢ's codes and dropping wᵢ₊₁ from
// scansion.
func applyAtaf(l *Line) {
	words := l.activeWords()
	for i := 0; i < len(words)-1; i++ {
		wi, wj := words[i], words[i+1]
		if wj.Raw != wawSingle {
			continue
		}
		existing := append([]string(nil), wi.Codes...)
		existingTaqti := append([]string(nil), wi.Taqti...)
		existingMuarrab := append([]string(nil), wi.Muarrab...)
		for ci, code := range existing {
			wi.addCode(code+"-", existingTaqti[ci]+"+و", existingMuarrab[ci])
		}
		wi.noteProsody("ataf absorbs conjunction و from %q", wj.Surface)
		wj.dropped = true
		wj.noteProsody("removed from scansion: merged into preceding word by ataf")
	}
}

// applyGrafting: if wᵢ ends in a consonant and wᵢ₊₁ begins with ا or
// آ, produce one additional alternative per existing code of wᵢ₊₁ with
// the initial vowel absorbed into the previous syllable, stored in
// wᵢ₊₁.GraftCodes (not Codes), so the tree can branch on grafted vs not.
func applyGrafting(l *Line) {
	words := l.activeWords()
	for i := 0; i < len(words)-1; i++ {
		wi, wj := words[i], words[i+1]
		if !endsInConsonant(wi.Surface) {
			continue
		}
		letters := graphemeRunes(wj.Raw)
		if len(letters) == 0 {
			continue
		}
		first := firstRune(letters[0])
		if first != alifChar && first != maddAlif {
			continue
		}
		for ci, code := range wj.Codes {
			if code == "" {
				continue
			}
			grafted := code[1:]
			if grafted == "" {
				continue
			}
			wj.addGraftCode(grafted, wj.Taqti[ci]+"(grafted into "+wi.Surface+")")
		}
		wj.noteProsody("graftable after consonant-final %q", wi.Surface)
	}
}
