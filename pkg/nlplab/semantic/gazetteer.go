// Package semantic recognizes named entities from closed name lists and
// disambiguates a handful of ambiguous words from context keywords.
package semantic

import (
	"fmt"
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

// Entity labels, in lookup priority order.
const (
	LabelPerson = "PERSON"
	LabelGPE    = "GPE"
	LabelOrg    = "ORG"
)

// Labels lists the supported entity labels in priority order.
var Labels = []string{LabelPerson, LabelGPE, LabelOrg}

// Gazetteer holds the known names per entity label.
type Gazetteer struct {
	names map[string]map[string]struct{} // label → lowercase names
}

// NewGazetteer creates an empty gazetteer.
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{names: make(map[string]map[string]struct{}, len(Labels))}
	for _, l := range Labels {
		g.names[l] = make(map[string]struct{})
	}
	return g
}

// Add registers names under label. Names are matched case-insensitively.
func (g *Gazetteer) Add(label string, names []string) error {
	set, ok := g.names[label]
	if !ok {
		return fmt.Errorf("entity label %q: %w", label, internalerr.ErrInvalidConfig)
	}
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return nil
}

// Label returns the label of a lowercase word, checking labels in priority
// order.
func (g *Gazetteer) Label(word string) (string, bool) {
	for _, l := range Labels {
		if _, ok := g.names[l][word]; ok {
			return l, true
		}
	}
	return "", false
}

// Size returns the number of names registered under label.
func (g *Gazetteer) Size(label string) int {
	return len(g.names[label])
}

// DefaultNames is the built-in gazetteer content.
// Multi-word names such as "new york" are listed but never match, because
// lookup is word by word.
var DefaultNames = map[string][]string{
	LabelPerson: {"barack", "obama", "john", "mary", "alice", "bob", "smith", "johnson"},
	LabelGPE:    {"hawaii", "california", "london", "paris", "tokyo", "new york", "washington"},
	LabelOrg:    {"apple", "google", "microsoft", "facebook", "amazon", "netflix"},
}

// DefaultGazetteer returns a gazetteer loaded with DefaultNames.
func DefaultGazetteer() *Gazetteer {
	g := NewGazetteer()
	for label, names := range DefaultNames {
		// labels in DefaultNames are all valid
		_ = g.Add(label, names)
	}
	return g
}
