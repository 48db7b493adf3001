// Package morph implements table-driven stemming and lemmatization.
//
// There are no suffix-stripping rules: a word is either in the table or it
// normalizes to its own lowercase form.
package morph

import (
	"github.com/cognicore/nlplab/pkg/nlplab/lexicon"
	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Annotation pairs a word with its normal form.
type Annotation struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// Analyzer reduces words with a stem table and a lemma table.
type Analyzer struct {
	stems  *lexicon.Table
	lemmas *lexicon.Table
}

// NewAnalyzer creates an analyzer. Nil tables fall back to the defaults.
func NewAnalyzer(stems, lemmas *lexicon.Table) *Analyzer {
	if stems == nil {
		stems = DefaultStems()
	}
	if lemmas == nil {
		lemmas = DefaultLemmas()
	}
	return &Analyzer{stems: stems, lemmas: lemmas}
}

// Stem reduces each word to its table-defined truncated form.
func (a *Analyzer) Stem(words []string) []Annotation {
	return annotate(a.stems, words)
}

// Lemmatize reduces each word to its table-defined dictionary form.
func (a *Analyzer) Lemmatize(words []string) []Annotation {
	return annotate(a.lemmas, words)
}

func annotate(table *lexicon.Table, words []string) []Annotation {
	out := make([]Annotation, len(words))
	for i, w := range words {
		out[i] = Annotation{
			Original:   textutil.Trim(w),
			Normalized: table.Normalize(w),
		}
	}
	return out
}

// DefaultStemMap is the built-in stem table.
var DefaultStemMap = map[string]string{
	"running": "run",
	"runs":    "run",
	"ran":     "ran",
	"better":  "better",
	"good":    "good",
	"mice":    "mice",
	"easily":  "easili",
	"fairly":  "fairli",
	"jumping": "jump",
	"jumped":  "jump",
	"eating":  "eat",
	"eaten":   "eaten",
	"quickly": "quickli",
	"walking": "walk",
	"walked":  "walk",
}

// DefaultLemmaMap is the built-in lemma table.
var DefaultLemmaMap = map[string]string{
	"running":  "run",
	"runs":     "run",
	"ran":      "run",
	"better":   "good",
	"good":     "good",
	"mice":     "mouse",
	"easily":   "easily",
	"fairly":   "fairly",
	"jumping":  "jump",
	"jumped":   "jump",
	"eating":   "eat",
	"eaten":    "eat",
	"quickly":  "quickly",
	"walking":  "walk",
	"walked":   "walk",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
}

// DefaultStems returns a fresh table built from DefaultStemMap.
func DefaultStems() *lexicon.Table {
	return lexicon.FromMap(DefaultStemMap)
}

// DefaultLemmas returns a fresh table built from DefaultLemmaMap.
func DefaultLemmas() *lexicon.Table {
	return lexicon.FromMap(DefaultLemmaMap)
}
