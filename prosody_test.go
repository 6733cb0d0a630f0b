package bahr

import "testing"

func newActiveLine(words ...*Word) *Line {
	return &Line{Words: words}
}

func TestApplyAlExtendsPrecedingWordAndDropsLeadingShort(t *testing.T) {
	wi := &Word{Surface: "دل", Raw: "دل", Codes: []string{"-"}, Taqti: []string{"دل"}, Muarrab: []string{"دل"}}
	wj := &Word{Surface: "التوا", Raw: "التوا", Codes: []string{"-=="}, Taqti: []string{"التوا"}, Muarrab: []string{"التوا"}}
	l := newActiveLine(wi, wj)

	applyAl(l)

	if len(wi.Codes) != 2 || wi.Codes[1] != "=" {
		t.Fatalf("applyAl did not extend preceding word: %v", wi.Codes)
	}
	if wj.Codes[0] != "==" {
		t.Fatalf("applyAl did not drop leading short from article-bearing word: %v", wj.Codes)
	}
}

func TestApplyAlNeverRemovesOriginalCodes(t *testing.T) {
	wi := &Word{Surface: "دل", Raw: "دل", Codes: []string{"-"}, Taqti: []string{"a"}, Muarrab: []string{"a"}}
	wj := &Word{Surface: "التوا", Raw: "التوا", Codes: []string{"-=="}, Taqti: []string{"b"}, Muarrab: []string{"b"}}
	before := append([]string(nil), wi.Codes...)

	applyAl(newActiveLine(wi, wj))

	for _, c := range before {
		found := false
		for _, got := range wi.Codes {
			if got == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("applyAl destructively removed original code %q", c)
		}
	}
}

func TestApplyIzafatAppendsShortAsNewAlternative(t *testing.T) {
	w := &Word{Surface: "دل", Raw: "دلِ", Codes: []string{"-"}, Taqti: []string{"دل"}, Muarrab: []string{"دل"}}
	applyIzafat(newActiveLine(w))

	if len(w.Codes) != 2 || w.Codes[0] != "-" || w.Codes[1] != "--" {
		t.Fatalf("applyIzafat codes = %v, want [- --]", w.Codes)
	}
}

func TestApplyAtafMergesConjunctionAndDropsIt(t *testing.T) {
	wi := &Word{Surface: "دل", Raw: "دل", Codes: []string{"-"}, Taqti: []string{"a"}, Muarrab: []string{"a"}}
	wj := &Word{Surface: "و", Raw: "و"}
	applyAtaf(newActiveLine(wi, wj))

	if !wj.dropped {
		t.Fatalf("applyAtaf did not drop the conjunction word")
	}
	if len(wi.Codes) != 2 || wi.Codes[1] != "--" {
		t.Fatalf("applyAtaf codes = %v, want [- --]", wi.Codes)
	}
}

func TestApplyGraftingStoresAlternativeSeparatelyFromCodes(t *testing.T) {
	wi := &Word{Surface: "دل", Raw: "دل"}
	wj := &Word{Surface: "اول", Raw: "اول", Codes: []string{"-=="}, Taqti: []string{"اول"}, Muarrab: []string{"اول"}}
	before := append([]string(nil), wj.Codes...)

	applyGrafting(newActiveLine(wi, wj))

	if len(wj.Codes) != len(before) {
		t.Fatalf("applyGrafting mutated Codes, want GraftCodes only: %v", wj.Codes)
	}
	if len(wj.GraftCodes) == 0 || wj.GraftCodes[0] != "==" {
		t.Fatalf("applyGrafting GraftCodes = %v, want [==]", wj.GraftCodes)
	}
}

func TestEndsInConsonantFalseForVowelFinal(t *testing.T) {
	if endsInConsonant("دا") {
		t.Fatalf("دا ends in alif, should not be a consonant ending")
	}
}
