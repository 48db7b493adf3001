package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Table maps surface word forms to a normal form (a stem or a lemma).
//
// The variant -> normal form index is authoritative. Groups (a normal form
// and the surface forms that reduce to it) are derived from it after every
// change. A normal form reduces to itself unless it has an entry of its own,
// so chained entries such as better -> good, good -> well are kept as given.
// Lookups are case-insensitive and ignore surrounding whitespace; words that
// are not in the table normalize to their own lowercase form.
//
// A Table is not safe for concurrent mutation. Build it once, then share it
// read-only.
type Table struct {
	// canonical -> surface forms reducing to it, canonical first when it
	// reduces to itself
	// Example: "run" -> ["run", "running", "runs"]
	groups map[string][]string

	// variant -> canonical
	// Example: "running" -> "run", "runs" -> "run"
	reverseIndex map[string]string
}

// New creates an empty table.
func New() *Table {
	return &Table{
		groups:       make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// FromMap builds a table from a variant -> normal form mapping.
// Every entry is kept exactly; normal forms without an entry of their own
// map to themselves.
func FromMap(m map[string]string) *Table {
	t := New()
	for _, variant := range sortedKeys(m) {
		if v, c := key(variant), key(m[variant]); v != "" && c != "" {
			t.reverseIndex[v] = c
		}
	}
	t.selfMapTargets()
	t.regroup()
	return t
}

// Group is one canonical form with its variants, as stored in YAML.
type Group struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// LoadFromYAML loads a table from a YAML file.
//
// Expected format:
//
//	groups:
//	  - canonical: run
//	    variants: [running, runs]
//	  - canonical: mouse
//	    variants: [mice]
func LoadFromYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Groups []Group `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	t := New()
	for _, g := range doc.Groups {
		t.addGroup(g.Canonical, g.Variants)
	}
	t.regroup()
	return t, nil
}

// AddGroup adds a canonical form and its variants.
// The canonical form always reduces to itself and is the first entry of the
// group. If the group already exists, its old entries are removed first.
func (t *Table) AddGroup(canonical string, variants []string) {
	t.addGroup(canonical, variants)
	t.regroup()
}

func (t *Table) addGroup(canonical string, variants []string) {
	canonical = key(canonical)
	if canonical == "" {
		return
	}

	for v, c := range t.reverseIndex {
		if c == canonical {
			delete(t.reverseIndex, v)
		}
	}

	t.reverseIndex[canonical] = canonical
	for _, v := range variants {
		if v = key(v); v != "" {
			t.reverseIndex[v] = canonical
		}
	}
}

// Set maps a single variant to a normal form. The normal form is added as
// its own entry if it has none.
func (t *Table) Set(variant, canonical string) {
	variant, canonical = key(variant), key(canonical)
	if variant == "" || canonical == "" {
		return
	}
	t.reverseIndex[variant] = canonical
	t.selfMapTargets()
	t.regroup()
}

// Merge copies every entry of other into t. Entries of other win.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, v := range sortedKeys(other.reverseIndex) {
		t.reverseIndex[v] = other.reverseIndex[v]
	}
	t.selfMapTargets()
	t.regroup()
}

// selfMapTargets adds an identity entry for every normal form that has no
// entry of its own.
func (t *Table) selfMapTargets() {
	for _, c := range sortedValues(t.reverseIndex) {
		if _, ok := t.reverseIndex[c]; !ok {
			t.reverseIndex[c] = c
		}
	}
}

// regroup derives the groups from the reverse index.
func (t *Table) regroup() {
	groups := make(map[string][]string)
	for _, v := range sortedKeys(t.reverseIndex) {
		c := t.reverseIndex[v]
		if v == c {
			groups[c] = append([]string{c}, groups[c]...)
			continue
		}
		groups[c] = append(groups[c], v)
	}
	t.groups = groups
}

// Normalize returns the normal form of a word.
// If the word is not in the table, returns the trimmed, lowercased word.
//
// Examples:
//   - Normalize(" Running ") -> "run"
//   - Normalize("Unknown") -> "unknown"
func (t *Table) Normalize(word string) string {
	word = key(word)
	if canonical, ok := t.reverseIndex[word]; ok {
		return canonical
	}
	return word
}

// Lookup returns the normal form and whether the word is in the table.
func (t *Table) Lookup(word string) (string, bool) {
	canonical, ok := t.reverseIndex[key(word)]
	return canonical, ok
}

// Variants returns all forms that share the word's normal form.
// If the word is not in the table, returns a slice containing only the word.
//
// Examples:
//   - Variants("running") -> ["run", "running", "runs"]
//   - Variants("unknown") -> ["unknown"]
func (t *Table) Variants(word string) []string {
	word = key(word)
	if canonical, ok := t.reverseIndex[word]; ok {
		if variants, ok := t.groups[canonical]; ok {
			return variants
		}
	}
	return []string{word}
}

// Canonicals returns the canonical forms in sorted order.
func (t *Table) Canonicals() []string {
	out := make([]string, 0, len(t.groups))
	for c := range t.groups {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct surface forms in the table.
func (t *Table) Len() int {
	return len(t.reverseIndex)
}

// Stats returns statistics about the table contents.
func (t *Table) Stats() Stats {
	return Stats{
		Groups:  len(t.groups),
		Entries: len(t.reverseIndex),
	}
}

// Stats holds statistics about table contents.
type Stats struct {
	Groups  int // Number of canonical forms
	Entries int // Number of surface forms, canonical forms included
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedValues(m map[string]string) []string {
	seen := make(map[string]bool, len(m))
	out := make([]string, 0, len(m))
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func key(word string) string {
	return strings.ToLower(textutil.Trim(word))
}
