// Package discourse links mentions across sentences, scores the coherence of
// adjacent sentences and splits text into topical segments.
//
// Sentences are the non-empty, trimmed pieces of the text split on '.'.
package discourse

import "strings"

// WordPair is a pair of words treated as semantically related, in either
// order.
type WordPair [2]string

// Options holds the word lists used by an Analyzer. Zero-valued fields fall
// back to the defaults.
type Options struct {
	Entities      []string   // proper nouns that open or continue a chain
	Pronouns      []string   // pronouns linked to the current entity
	SemanticPairs []WordPair // related words for coherence scoring
	ShiftMarkers  []string   // discourse markers that open a new segment
	Topics        []TopicRule
}

// Analyzer runs the discourse operations. It is immutable after creation.
type Analyzer struct {
	entities     map[string]struct{}
	pronouns     map[string]struct{}
	pairs        []WordPair
	shiftMarkers []string
	topics       *Topics
}

// NewAnalyzer creates an analyzer from opts.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Entities == nil {
		opts.Entities = DefaultEntities
	}
	if opts.Pronouns == nil {
		opts.Pronouns = DefaultPronouns
	}
	if opts.SemanticPairs == nil {
		opts.SemanticPairs = DefaultSemanticPairs
	}
	if opts.ShiftMarkers == nil {
		opts.ShiftMarkers = DefaultShiftMarkers
	}
	if opts.Topics == nil {
		opts.Topics = DefaultTopicRules
	}
	return &Analyzer{
		entities:     toSet(opts.Entities),
		pronouns:     toSet(opts.Pronouns),
		pairs:        lowerPairs(opts.SemanticPairs),
		shiftMarkers: lowerAll(opts.ShiftMarkers),
		topics:       NewTopics(opts.Topics),
	}
}

// DefaultEntities are the proper nouns recognized by coreference resolution.
var DefaultEntities = []string{"john", "alice", "mary", "bob", "sarah", "mike"}

// DefaultPronouns are linked to the most recent entity.
var DefaultPronouns = []string{"he", "she", "it", "they", "him", "her", "them", "his", "hers", "its", "their"}

// DefaultSemanticPairs add 0.3 each to a coherence score.
var DefaultSemanticPairs = []WordPair{
	{"john", "he"}, {"alice", "she"}, {"mary", "she"},
	{"store", "shop"}, {"bought", "purchased"}, {"expensive", "costly"},
	{"milk", "groceries"}, {"bread", "groceries"}, {"programming", "coding"},
	{"company", "business"}, {"profits", "money"}, {"stock", "shares"},
}

// DefaultShiftMarkers open a new discourse segment.
var DefaultShiftMarkers = []string{
	"however", "but", "meanwhile", "on the other hand", "in contrast",
	"furthermore", "moreover", "additionally", "next", "then",
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func lowerPairs(pairs []WordPair) []WordPair {
	out := make([]WordPair, len(pairs))
	for i, p := range pairs {
		out[i] = WordPair{strings.ToLower(p[0]), strings.ToLower(p[1])}
	}
	return out
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
