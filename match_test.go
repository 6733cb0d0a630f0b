package bahr

import "testing"

func TestFlattenExplainOrdersBaseBeforeProsodyPerWord(t *testing.T) {
	w1 := &Word{ExplainBase: []string{"b1"}, ExplainProsody: []string{"p1"}}
	w2 := &Word{ExplainBase: []string{"b2"}}
	got := flattenExplain([]*Word{w1, w2})
	want := []string{"b1", "p1", "b2"}
	if len(got) != len(want) {
		t.Fatalf("flattenExplain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flattenExplain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnmatchedResultSkipsDroppedWords(t *testing.T) {
	kept := &Word{Codes: []string{"-"}}
	gone := &Word{Codes: []string{"="}, dropped: true}
	r := unmatchedResult("line", []*Word{kept, gone})

	if r.MeterName != "unmatched" {
		t.Fatalf("MeterName = %q, want unmatched", r.MeterName)
	}
	if r.FullCode != "-" {
		t.Fatalf("FullCode = %q, want -, dropped word must not contribute", r.FullCode)
	}
	if r.IsDominant {
		t.Fatalf("unmatched result must never be dominant")
	}
}
