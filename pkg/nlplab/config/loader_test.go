package config

import (
	"testing"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}
	if comp.Morph == nil || comp.Tagger == nil || comp.Recognizer == nil ||
		comp.Disambiguator == nil || comp.Discourse == nil {
		t.Fatal("all components should be built")
	}

	stems := comp.Morph.Stem([]string{"running"})
	if stems[0].Normalized != "run" {
		t.Errorf("got %q, want run", stems[0].Normalized)
	}
}

func TestLoaderNonExistentTables(t *testing.T) {
	loader := Loader{TablesPath: "/nonexistent/tables.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent tables file")
	}
}

func TestLoaderNonExistentStems(t *testing.T) {
	loader := Loader{StemsPath: "/nonexistent/stems.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent stems file")
	}
}

func TestLoaderOverrides(t *testing.T) {
	loader := Loader{
		TablesPath: "testdata/tables.yaml",
		StemsPath:  "testdata/stems.yaml",
	}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	stems := comp.Morph.Stem([]string{"swimming", "singing", "running"})
	want := []string{"swim", "sing", "run"}
	for i, w := range want {
		if stems[i].Normalized != w {
			t.Errorf("stem %d: got %q, want %q", i, stems[i].Normalized, w)
		}
	}

	lemmas := comp.Morph.Lemmatize([]string{"swam"})
	if lemmas[0].Normalized != "swim" {
		t.Errorf("got %q, want swim", lemmas[0].Normalized)
	}

	ents := comp.Recognizer.Recognize("Sarah joined Mozilla")
	if len(ents) != 2 || ents[0].Label != "PERSON" || ents[1].Label != "ORG" {
		t.Errorf("got %v", ents)
	}

	senses := comp.Disambiguator.Disambiguate("The bat left the cave")
	if len(senses) != 1 || senses[0].Sense != "animal" {
		t.Errorf("got %v", senses)
	}

	if topic := comp.Discourse.ExtractTopic("What a goal"); topic != "Sports" {
		t.Errorf("got %q, want Sports", topic)
	}
}

func TestLoaderChainedLemmaOverride(t *testing.T) {
	path := writeFile(t, "tables.yaml", "lemmas:\n  good: well\n")

	loader := Loader{TablesPath: path}

	for i := 0; i < 50; i++ {
		comp, err := loader.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		lemmas := comp.Morph.Lemmatize([]string{"good", "better"})
		if lemmas[0].Normalized != "well" || lemmas[1].Normalized != "good" {
			t.Fatalf("run %d: got %q, %q, want well, good",
				i, lemmas[0].Normalized, lemmas[1].Normalized)
		}
	}
}
