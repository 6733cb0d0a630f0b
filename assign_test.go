package bahr

import (
	"context"
	"testing"

	"github.com/aruuz-ai/go-bahr/lexicon"
)

func TestScanLen1MaddAlifIsLong(t *testing.T) {
	if got := scanLen1([]string{"آ"}); got != "=" {
		t.Fatalf("scanLen1(آ) = %q, want =", got)
	}
}

func TestScanLen1PlainConsonantIsShort(t *testing.T) {
	if got := scanLen1([]string{"د"}); got != "-" {
		t.Fatalf("scanLen1(د) = %q, want -", got)
	}
}

func TestScanLen2EndingInVowelIsAmbiguous(t *testing.T) {
	if got := scanLen2([]string{"د", "ا"}); got != "x" {
		t.Fatalf("scanLen2 ending in vowel = %q, want x", got)
	}
}

func TestScanLen2StartingWithMaddAlif(t *testing.T) {
	if got := scanLen2([]string{"آ", "ب"}); got != "=-" {
		t.Fatalf("scanLen2(آب) = %q, want =-", got)
	}
}

func TestHeuristicRuleNameTracksLength(t *testing.T) {
	cases := map[int]string{0: "1", 1: "1", 2: "2", 3: "3", 4: "4", 5: "5+", 9: "5+"}
	for n, want := range cases {
		if got := ruleNameFor(n); got != want {
			t.Fatalf("ruleNameFor(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTaqtiToCodeMapsMarkers(t *testing.T) {
	got := taqtiToCode("LSXqq")
	if got != "=-x" {
		t.Fatalf("taqtiToCode(LSXqq) = %q, want =-x", got)
	}
}

func TestAssignPrefersLexiconOverHeuristic(t *testing.T) {
	store := lexicon.NewMemoryStore([]lexicon.SeedRow{
		{Surface: "دل", Taqti: "LL", Source: lexicon.SourceMaster},
	})
	a := newAssigner(store, 1, 30)
	w := &Word{Surface: "دل", Raw: "دل"}
	a.assign(context.Background(), w)

	if len(w.Codes) == 0 || w.Codes[0] != "==" {
		t.Fatalf("expected lexicon code ==, got %v", w.Codes)
	}
}

func TestAssignFallsBackToHeuristicWhenLexiconEmpty(t *testing.T) {
	store := lexicon.NewMemoryStore(nil)
	a := newAssigner(store, 1, 30)
	w := &Word{Surface: "آ", Raw: "آ"}
	a.assign(context.Background(), w)

	if len(w.Codes) == 0 || w.Codes[0] != "=" {
		t.Fatalf("expected heuristic code =, got %v", w.Codes)
	}
}

func TestAssignFlagsLexiconUnavailable(t *testing.T) {
	a := newAssigner(failingLookup{}, 1, 30)
	w := &Word{Surface: "دل", Raw: "دل"}
	unavailable := a.assign(context.Background(), w)
	if !unavailable {
		t.Fatalf("expected lexiconUnavailable=true on lookup error")
	}
	if len(w.Codes) == 0 {
		t.Fatalf("expected a heuristic fallback code despite lookup error")
	}
}

type failingLookup struct{}

func (failingLookup) Lookup(ctx context.Context, surface, raw string) ([]lexicon.Entry, error) {
	return nil, errLookupUnavailable
}

var errLookupUnavailable = errTest("lookup backend down")

type errTest string

func (e errTest) Error() string { return string(e) }
