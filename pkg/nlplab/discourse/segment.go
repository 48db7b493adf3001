package discourse

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Segment is a run of sentences under one topic. StartIndex is the 0-based
// index of its first sentence.
type Segment struct {
	Sentences  []string `json:"sentences"`
	Topic      string   `json:"topic"`
	StartIndex int      `json:"startIndex"`
}

// Segment groups sentences into topical segments. A sentence containing a
// shift marker (substring match) starts a new segment unless the current one
// is still empty. Each segment takes the topic of its first sentence.
func (a *Analyzer) Segment(text string) []Segment {
	segments := []Segment{}
	var current Segment

	for i, sentence := range textutil.Sentences(text) {
		lower := strings.ToLower(sentence)
		shift := textutil.ContainsAny(lower, a.shiftMarkers...)

		if shift && len(current.Sentences) > 0 {
			segments = append(segments, current)
			current = Segment{
				Sentences:  []string{sentence},
				Topic:      a.topics.Extract(sentence),
				StartIndex: i,
			}
			continue
		}

		current.Sentences = append(current.Sentences, sentence)
		if current.Topic == "" {
			current.Topic = a.topics.Extract(sentence)
		}
	}

	if len(current.Sentences) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// ExtractTopic labels a sentence with the analyzer's topic rules.
func (a *Analyzer) ExtractTopic(sentence string) string {
	return a.topics.Extract(sentence)
}
