package bahr

import (
	"testing"

	"github.com/aruuz-ai/go-bahr/catalogue"
)

func TestSymbolLenIgnoresBoundaryMarkers(t *testing.T) {
	if got := symbolLen("=-+==~--"); got != 6 {
		t.Fatalf("symbolLen = %d, want 6", got)
	}
}

func TestSymbolMatchesAmbiguousAcceptsEitherWeight(t *testing.T) {
	if !symbolMatches(catalogue.Ambiguous, catalogue.Long) {
		t.Fatalf("ambiguous should match long")
	}
	if !symbolMatches(catalogue.Ambiguous, catalogue.Short) {
		t.Fatalf("ambiguous should match short")
	}
	if symbolMatches(catalogue.Long, catalogue.Short) {
		t.Fatalf("long should not match short")
	}
}

func TestIsMatchSkipsBoundaryMarkersAndAllowsShortPrefix(t *testing.T) {
	if !isMatch("=-", "=-+==") {
		t.Fatalf("partial prefix should be accepted ahead of a boundary marker")
	}
	if !isMatch("=-==", "=-+==") {
		t.Fatalf("boundary marker should be skipped when comparing symbols")
	}
}

func TestIsMatchRejectsSymbolMismatch(t *testing.T) {
	if isMatch("-", "=") {
		t.Fatalf("- should not match = at the same position")
	}
}

func TestCheckCodeLengthRequiresExactLengthMatch(t *testing.T) {
	cat := catalogue.New()
	survivors := checkCodeLength(cat.Pattern(2), []int{2}, cat)
	if len(survivors) != 1 {
		t.Fatalf("exact pattern should survive checkCodeLength, got %v", survivors)
	}
	short := cat.Pattern(2)[:len(cat.Pattern(2))-3]
	if s := checkCodeLength(short, []int{2}, cat); len(s) != 0 {
		t.Fatalf("truncated code should not survive checkCodeLength, got %v", s)
	}
}

func TestChoicesForUnionsCodesAndGraftCodes(t *testing.T) {
	w := &Word{
		Codes: []string{"-", "="}, Taqti: []string{"a", "b"},
		GraftCodes: []string{"=="}, GraftTaqti: []string{"c"},
	}
	choices := choicesFor(w)
	if len(choices) != 3 {
		t.Fatalf("choicesFor returned %d choices, want 3", len(choices))
	}
}
