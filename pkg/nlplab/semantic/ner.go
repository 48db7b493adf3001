package semantic

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Entity is a recognized one-word named entity. Start and End are word
// indexes, End exclusive.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Recognizer finds gazetteer names in text.
type Recognizer struct {
	gazetteer *Gazetteer
}

// NewRecognizer creates a recognizer. A nil gazetteer selects the default.
func NewRecognizer(g *Gazetteer) *Recognizer {
	if g == nil {
		g = DefaultGazetteer()
	}
	return &Recognizer{gazetteer: g}
}

// Recognize returns one entity per word found in the gazetteer.
// Entity text keeps the original case; punctuation attached to a word
// prevents a match ("Hawaii." is not found).
func (r *Recognizer) Recognize(text string) []Entity {
	original := textutil.Fields(text)
	lower := textutil.Fields(strings.ToLower(text))

	entities := []Entity{}
	for i, w := range lower {
		label, ok := r.gazetteer.Label(w)
		if !ok {
			continue
		}
		surface := w
		if i < len(original) {
			surface = original[i]
		}
		entities = append(entities, Entity{
			Text:  surface,
			Label: label,
			Start: i,
			End:   i + 1,
		})
	}
	return entities
}
