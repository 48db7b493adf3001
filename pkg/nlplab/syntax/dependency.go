// Package syntax assigns heuristic dependency relations and builds bracketed
// constituency strings.
//
// Neither is a parser. DependencyParse runs a fixed, single-pass rule list
// over each word; a sentence may legitimately end up with several ROOTs.
package syntax

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Relation labels.
const (
	RelDet   = "det"
	RelRoot  = "ROOT"
	RelNsubj = "nsubj"
	RelPrep  = "prep"
	RelPobj  = "pobj"
)

// Dependency is the relation of one word to its head.
type Dependency struct {
	Word     string `json:"word"`
	Relation string `json:"relation"`
	Head     string `json:"head"`
}

// Position is the view of a sentence that a Rule inspects.
type Position struct {
	Words []string
	Index int
}

// Word returns the word at the position.
func (p Position) Word() string { return p.Words[p.Index] }

// Prev returns the previous word, or "" at the start of the sentence.
func (p Position) Prev() string {
	if p.Index == 0 {
		return ""
	}
	return p.Words[p.Index-1]
}

// Next returns the next word, or "" at the end of the sentence.
func (p Position) Next() string {
	if p.Index+1 >= len(p.Words) {
		return ""
	}
	return p.Words[p.Index+1]
}

// Rule assigns Relation when Match holds. Head picks the head word.
type Rule struct {
	Name     string
	Relation string
	Match    func(Position) bool
	Head     func(Position) string
}

// DependencyRules is evaluated in order for every word; the first match wins.
// The last rule always matches.
var DependencyRules = []Rule{
	{
		Name:     "determiner",
		Relation: RelDet,
		Match:    func(p Position) bool { return isOneOf(p.Word(), "the", "a", "an") },
		Head:     func(p Position) string { return orSelf(p.Next(), p) },
	},
	{
		Name:     "inflected-verb",
		Relation: RelRoot,
		Match: func(p Position) bool {
			w := p.Word()
			return strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ed")
		},
		Head: self,
	},
	{
		Name:     "subject-after-determiner",
		Relation: RelNsubj,
		Match:    func(p Position) bool { return isOneOf(p.Prev(), "the", "a") },
		Head: func(p Position) string {
			for _, w := range p.Words {
				if strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ed") {
					return w
				}
			}
			return p.Word()
		},
	},
	{
		Name:     "preposition",
		Relation: RelPrep,
		Match:    func(p Position) bool { return isOneOf(p.Word(), "on", "in", "at", "over") },
		Head:     func(p Position) string { return orSelf(p.Prev(), p) },
	},
	{
		Name:     "prepositional-object",
		Relation: RelPobj,
		Match:    func(p Position) bool { return isOneOf(p.Prev(), "on", "in") },
		Head:     func(p Position) string { return p.Prev() },
	},
	{
		Name:     "fallback",
		Relation: RelRoot,
		Match:    func(Position) bool { return true },
		Head:     self,
	},
}

// DependencyParse lowercases text, splits it on whitespace and labels every
// word with the first matching rule.
func DependencyParse(text string) []Dependency {
	words := textutil.Fields(strings.ToLower(text))
	deps := make([]Dependency, len(words))
	for i := range words {
		p := Position{Words: words, Index: i}
		rule := Apply(p)
		deps[i] = Dependency{
			Word:     words[i],
			Relation: rule.Relation,
			Head:     rule.Head(p),
		}
	}
	return deps
}

// Apply returns the first rule matching p.
func Apply(p Position) Rule {
	for _, r := range DependencyRules {
		if r.Match(p) {
			return r
		}
	}
	return DependencyRules[len(DependencyRules)-1]
}

func self(p Position) string { return p.Word() }

func orSelf(w string, p Position) string {
	if w == "" {
		return p.Word()
	}
	return w
}

func isOneOf(w string, set ...string) bool {
	for _, s := range set {
		if w == s {
			return true
		}
	}
	return false
}
