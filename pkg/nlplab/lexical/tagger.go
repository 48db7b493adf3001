package lexical

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// DefaultTag is assigned to words missing from the tag table.
const DefaultTag = "NN"

// Tagged is a word with its part-of-speech tag.
type Tagged struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// Tagger assigns part-of-speech tags by dictionary lookup.
// There is no context handling and no ambiguity resolution.
type Tagger struct {
	lexicon map[string]string
}

// NewTagger creates a tagger from a word -> tag table.
// A nil table selects DefaultTags.
func NewTagger(tags map[string]string) *Tagger {
	if tags == nil {
		tags = DefaultTags
	}
	lex := make(map[string]string, len(tags))
	for w, tag := range tags {
		lex[strings.ToLower(w)] = tag
	}
	return &Tagger{lexicon: lex}
}

// Tag splits text on whitespace and tags every field.
// Words keep their original case; lookup is case-insensitive.
func (t *Tagger) Tag(text string) []Tagged {
	words := textutil.Fields(text)
	out := make([]Tagged, len(words))
	for i, w := range words {
		out[i] = Tagged{Word: w, Tag: t.Lookup(w)}
	}
	return out
}

// Lookup returns the tag of a single word, DefaultTag when unknown.
func (t *Tagger) Lookup(word string) string {
	if tag, ok := t.lexicon[strings.ToLower(word)]; ok {
		return tag
	}
	return DefaultTag
}

// DefaultTags is the built-in tag table (Penn Treebank labels).
var DefaultTags = map[string]string{
	"the": "DT", "a": "DT", "an": "DT",
	"quick": "JJ", "brown": "JJ", "big": "JJ", "small": "JJ", "good": "JJ", "bad": "JJ",
	"fox": "NN", "cat": "NN", "dog": "NN", "house": "NN", "car": "NN", "book": "NN",
	"jumps": "VBZ", "runs": "VBZ", "walks": "VBZ", "sits": "VBZ", "stands": "VBZ",
	"jumped": "VBD", "ran": "VBD", "walked": "VBD", "sat": "VBD",
	"over": "IN", "under": "IN", "on": "IN", "in": "IN", "at": "IN",
	"and": "CC", "but": "CC", "or": "CC",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
	"john": "NNP", "mary": "NNP", "london": "NNP", "apple": "NNP",
}
