package morph

import (
	"strings"
	"testing"

	"github.com/cognicore/nlplab/pkg/nlplab/lexicon"
)

func TestStemTableHits(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	for word, want := range DefaultStemMap {
		got := a.Stem([]string{word})
		if len(got) != 1 {
			t.Fatalf("Stem(%q) returned %d results", word, len(got))
		}
		if got[0].Normalized != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got[0].Normalized, want)
		}
	}
}

func TestLemmatizeTableHits(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	for word, want := range DefaultLemmaMap {
		got := a.Lemmatize([]string{word})
		if got[0].Normalized != want {
			t.Errorf("Lemmatize(%q) = %q, want %q", word, got[0].Normalized, want)
		}
	}
}

func TestMissesFallBackToLowercase(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	words := []string{"  Swimming ", "TABLES", "happily"}
	for _, res := range [][]Annotation{a.Stem(words), a.Lemmatize(words)} {
		for i, w := range words {
			want := strings.ToLower(strings.TrimSpace(w))
			if res[i].Normalized != want {
				t.Errorf("%q normalized to %q, want %q", w, res[i].Normalized, want)
			}
		}
	}
}

func TestOriginalKeepsCaseAfterTrim(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	got := a.Lemmatize([]string{" Mice ", "Better"})
	want := []Annotation{
		{Original: "Mice", Normalized: "mouse"},
		{Original: "Better", Normalized: "good"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lemmatize()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStemAndLemmaDiffer(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	stem := a.Stem([]string{"ran", "easily", "eaten"})
	lemma := a.Lemmatize([]string{"ran", "easily", "eaten"})

	wantStem := []string{"ran", "easili", "eaten"}
	wantLemma := []string{"run", "easily", "eat"}
	for i := range wantStem {
		if stem[i].Normalized != wantStem[i] {
			t.Errorf("stem[%d] = %q, want %q", i, stem[i].Normalized, wantStem[i])
		}
		if lemma[i].Normalized != wantLemma[i] {
			t.Errorf("lemma[%d] = %q, want %q", i, lemma[i].Normalized, wantLemma[i])
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	words := []string{"walked", "children", "walking", "feet"}

	got := a.Lemmatize(words)
	for i, w := range words {
		if got[i].Original != w {
			t.Errorf("position %d: got %q, want %q", i, got[i].Original, w)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	if got := a.Stem(nil); len(got) != 0 {
		t.Errorf("Stem(nil) = %v, want empty", got)
	}
}

func TestCustomTables(t *testing.T) {
	stems := lexicon.New()
	stems.AddGroup("connect", []string{"connection", "connected"})

	a := NewAnalyzer(stems, nil)
	got := a.Stem([]string{"Connection", "running"})
	if got[0].Normalized != "connect" {
		t.Errorf("custom stem = %q, want 'connect'", got[0].Normalized)
	}
	if got[1].Normalized != "running" {
		t.Errorf("word outside custom table = %q, want identity 'running'", got[1].Normalized)
	}
}

func TestIdempotent(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	words := []string{"running", "mice", "xyz"}

	first := a.Stem(words)
	second := a.Stem(words)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Stem not repeatable at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
