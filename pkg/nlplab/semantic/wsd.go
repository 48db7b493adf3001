package semantic

import (
	"fmt"
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// SenseConfidence is reported for every disambiguated word.
const SenseConfidence = 0.85

// SenseEntry describes the sense chosen for an ambiguous word when any of
// its context keywords occurs in the text.
type SenseEntry struct {
	Context    []string `json:"context" yaml:"context"`
	Sense      string   `json:"sense" yaml:"sense"`
	Definition string   `json:"definition" yaml:"definition"`
}

// Sense is a disambiguation result.
type Sense struct {
	Word       string  `json:"word"`
	Sense      string  `json:"sense"`
	Definition string  `json:"definition"`
	Confidence float64 `json:"confidence"`
}

// Disambiguator picks word senses from a fixed inventory.
type Disambiguator struct {
	senses map[string]SenseEntry
}

// NewDisambiguator creates a disambiguator. A nil inventory selects
// DefaultSenses.
func NewDisambiguator(senses map[string]SenseEntry) *Disambiguator {
	if senses == nil {
		senses = DefaultSenses
	}
	inv := make(map[string]SenseEntry, len(senses))
	for word, e := range senses {
		ctx := make([]string, len(e.Context))
		for i, c := range e.Context {
			ctx[i] = strings.ToLower(c)
		}
		e.Context = ctx
		inv[strings.ToLower(word)] = e
	}
	return &Disambiguator{senses: inv}
}

// Validate reports entries that could never fire or would fire empty.
func (e SenseEntry) Validate() error {
	if len(e.Context) == 0 {
		return fmt.Errorf("no context keywords: %w", internalerr.ErrInvalidConfig)
	}
	for _, c := range e.Context {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("blank context keyword: %w", internalerr.ErrInvalidConfig)
		}
	}
	if e.Sense == "" {
		return fmt.Errorf("empty sense: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Disambiguate emits a Sense for every occurrence of an ambiguous word whose
// context keywords appear anywhere in the text (substring match, so "deposited"
// counts for "deposit"). Words without context are skipped.
func (d *Disambiguator) Disambiguate(text string) []Sense {
	lower := strings.ToLower(text)

	results := []Sense{}
	for _, w := range textutil.Fields(lower) {
		entry, ok := d.senses[w]
		if !ok || !textutil.ContainsAny(lower, entry.Context...) {
			continue
		}
		results = append(results, Sense{
			Word:       w,
			Sense:      entry.Sense,
			Definition: entry.Definition,
			Confidence: SenseConfidence,
		})
	}
	return results
}

// DefaultSenses is the built-in sense inventory.
var DefaultSenses = map[string]SenseEntry{
	"bank": {
		Context:    []string{"money", "deposit", "account", "financial"},
		Sense:      "financial institution",
		Definition: "A financial establishment that invests money deposited by customers",
	},
	"bark": {
		Context:    []string{"dog", "animal", "sound"},
		Sense:      "dog sound",
		Definition: "The sound made by a dog",
	},
	"bass": {
		Context:    []string{"fish", "water", "fishing"},
		Sense:      "fish",
		Definition: "A type of fish found in freshwater and marine environments",
	},
}
