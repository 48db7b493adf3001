package semantic

import (
	"errors"
	"testing"

	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

func TestRecognizeObamaHawaii(t *testing.T) {
	r := NewRecognizer(nil)

	got := r.Recognize("Barack Obama visited Hawaii")
	want := []Entity{
		{Text: "Barack", Label: LabelPerson, Start: 0, End: 1},
		{Text: "Obama", Label: LabelPerson, Start: 1, End: 2},
		{Text: "Hawaii", Label: LabelGPE, Start: 3, End: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("Recognize returned %d entities, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entity[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecognizeOrganizations(t *testing.T) {
	r := NewRecognizer(nil)

	got := r.Recognize("Alice works at GOOGLE with Bob")
	labels := map[string]string{}
	for _, e := range got {
		labels[e.Text] = e.Label
		if e.End != e.Start+1 {
			t.Errorf("entity %q spans %d..%d, want one word", e.Text, e.Start, e.End)
		}
	}
	if labels["GOOGLE"] != LabelOrg || labels["Alice"] != LabelPerson || labels["Bob"] != LabelPerson {
		t.Errorf("unexpected labels: %v", labels)
	}
}

func TestRecognizeSkipsPunctuatedAndMultiWord(t *testing.T) {
	r := NewRecognizer(nil)

	if got := r.Recognize("I love Paris."); len(got) != 0 {
		t.Errorf("'Paris.' should not match, got %+v", got)
	}
	if got := r.Recognize("New York"); len(got) != 0 {
		t.Errorf("multi-word names never match, got %+v", got)
	}
}

func TestRecognizeNothing(t *testing.T) {
	r := NewRecognizer(nil)

	got := r.Recognize("the weather is nice")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestGazetteerPriority(t *testing.T) {
	g := NewGazetteer()
	if err := g.Add(LabelOrg, []string{"Jordan"}); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(LabelPerson, []string{"jordan"}); err != nil {
		t.Fatal(err)
	}

	label, ok := g.Label("jordan")
	if !ok || label != LabelPerson {
		t.Errorf("Label('jordan') = %q, %v; want PERSON first", label, ok)
	}
}

func TestGazetteerRejectsUnknownLabel(t *testing.T) {
	g := NewGazetteer()
	err := g.Add("LOC", []string{"paris"})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Add(LOC) error = %v, want ErrInvalidConfig", err)
	}
}

func TestDefaultGazetteerSizes(t *testing.T) {
	g := DefaultGazetteer()
	if g.Size(LabelPerson) != 8 || g.Size(LabelGPE) != 7 || g.Size(LabelOrg) != 6 {
		t.Errorf("sizes = %d/%d/%d, want 8/7/6", g.Size(LabelPerson), g.Size(LabelGPE), g.Size(LabelOrg))
	}
}
