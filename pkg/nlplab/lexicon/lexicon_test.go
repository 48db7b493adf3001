package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTableNew(t *testing.T) {
	tab := New()
	if tab == nil {
		t.Fatal("New() returned nil")
	}

	stats := tab.Stats()
	if stats.Groups != 0 || stats.Entries != 0 {
		t.Errorf("New table should be empty, got %+v", stats)
	}
}

func TestTableAddGroup(t *testing.T) {
	tab := New()
	tab.AddGroup("run", []string{"running", "runs"})

	if got := tab.Normalize("running"); got != "run" {
		t.Errorf("Normalize('running') = %q, want 'run'", got)
	}
	if got := tab.Normalize("run"); got != "run" {
		t.Errorf("Normalize('run') = %q, want 'run'", got)
	}

	variants := tab.Variants("runs")
	if len(variants) != 3 || variants[0] != "run" {
		t.Errorf("Variants('runs') = %v, want canonical first and 3 entries", variants)
	}
}

func TestTableNormalizeTrimsAndLowercases(t *testing.T) {
	tab := FromMap(map[string]string{"mice": "mouse"})

	tests := []struct {
		input string
		want  string
	}{
		{"mice", "mouse"},
		{"  MICE ", "mouse"},
		{"Mouse", "mouse"},
		{" Unknown ", "unknown"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tab.Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTableLookup(t *testing.T) {
	tab := FromMap(map[string]string{"feet": "foot"})

	if got, ok := tab.Lookup("Feet"); !ok || got != "foot" {
		t.Errorf("Lookup('Feet') = %q, %v; want 'foot', true", got, ok)
	}
	if _, ok := tab.Lookup("hands"); ok {
		t.Error("Lookup('hands') should miss")
	}
}

func TestTableVariantsUnknown(t *testing.T) {
	tab := New()
	got := tab.Variants("Zebra")
	if len(got) != 1 || got[0] != "zebra" {
		t.Errorf("Variants('Zebra') = %v, want [zebra]", got)
	}
}

func TestTableSetMovesVariant(t *testing.T) {
	tab := New()
	tab.AddGroup("ran", nil)
	tab.AddGroup("run", []string{"running"})

	tab.Set("ran", "run")

	if got := tab.Normalize("ran"); got != "run" {
		t.Errorf("Normalize('ran') = %q, want 'run'", got)
	}
	if got := tab.Variants("running"); len(got) != 3 {
		t.Errorf("Variants('running') = %v, want 3 entries", got)
	}
}

func TestTableRegroupRemovesStaleEntries(t *testing.T) {
	tab := New()
	tab.AddGroup("eat", []string{"eating", "eaten"})
	tab.AddGroup("eat", []string{"eating"})

	if _, ok := tab.Lookup("eaten"); ok {
		t.Error("'eaten' should be gone after regrouping")
	}
}

func TestTableMerge(t *testing.T) {
	base := FromMap(map[string]string{"ran": "ran", "runs": "run"})
	override := FromMap(map[string]string{"ran": "run"})

	base.Merge(override)

	if got := base.Normalize("ran"); got != "run" {
		t.Errorf("after Merge, Normalize('ran') = %q, want 'run'", got)
	}
	if got := base.Normalize("runs"); got != "run" {
		t.Errorf("after Merge, Normalize('runs') = %q, want 'run'", got)
	}

	base.Merge(nil)
}

func TestFromMapChainedEntries(t *testing.T) {
	m := map[string]string{"better": "good", "good": "well"}

	for i := 0; i < 100; i++ {
		tab := FromMap(m)
		if got := tab.Normalize("good"); got != "well" {
			t.Fatalf("run %d: Normalize('good') = %q, want 'well'", i, got)
		}
		if got := tab.Normalize("better"); got != "good" {
			t.Fatalf("run %d: Normalize('better') = %q, want 'good'", i, got)
		}
		if got := tab.Normalize("well"); got != "well" {
			t.Fatalf("run %d: Normalize('well') = %q, want 'well'", i, got)
		}
	}
}

func TestTableMergeChainedOverride(t *testing.T) {
	for i := 0; i < 100; i++ {
		base := FromMap(map[string]string{"better": "good", "best": "good"})
		base.Merge(FromMap(map[string]string{"good": "well"}))

		if got := base.Normalize("good"); got != "well" {
			t.Fatalf("run %d: Normalize('good') = %q, want 'well'", i, got)
		}
		if got := base.Normalize("better"); got != "good" {
			t.Fatalf("run %d: Normalize('better') = %q, want 'good'", i, got)
		}
	}
}

func TestTableSetKeepsExistingTargetEntry(t *testing.T) {
	tab := FromMap(map[string]string{"good": "well"})
	tab.Set("better", "good")

	if got := tab.Normalize("good"); got != "well" {
		t.Errorf("Normalize('good') = %q, want 'well'", got)
	}
	if got := tab.Normalize("better"); got != "good" {
		t.Errorf("Normalize('better') = %q, want 'good'", got)
	}
}

func TestTableCanonicalsSorted(t *testing.T) {
	tab := FromMap(map[string]string{"teeth": "tooth", "children": "child", "feet": "foot"})
	got := tab.Canonicals()
	want := []string{"child", "foot", "tooth"}
	if len(got) != len(want) {
		t.Fatalf("Canonicals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Canonicals()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemmas.yaml")
	content := `groups:
  - canonical: Mouse
    variants: [mice, MICE]
  - canonical: child
    variants: [children]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}

	if got := tab.Normalize("Mice"); got != "mouse" {
		t.Errorf("Normalize('Mice') = %q, want 'mouse'", got)
	}
	if got := tab.Normalize("children"); got != "child" {
		t.Errorf("Normalize('children') = %q, want 'child'", got)
	}

	stats := tab.Stats()
	if stats.Groups != 2 || stats.Entries != 4 {
		t.Errorf("Stats() = %+v, want 2 groups, 4 entries", stats)
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromYAMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("groups: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromYAML(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
