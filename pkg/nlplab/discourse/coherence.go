package discourse

import (
	"math"
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// semanticBonus is added per related word pair found across two sentences.
const semanticBonus = 0.3

// PairScore is the coherence of two adjacent sentences (1-based indexes).
type PairScore struct {
	Sentence1 int     `json:"sentence1"`
	Sentence2 int     `json:"sentence2"`
	Score     float64 `json:"score"`
	Text1     string  `json:"text1"`
	Text2     string  `json:"text2"`
}

// Coherence is the result of AnalyzeCoherence.
//
// Average is nil when the text has fewer than two sentences: there is no
// pair to average. This is expected, not an error.
type Coherence struct {
	Scores    []PairScore `json:"scores"`
	Average   *float64    `json:"average"`
	Sentences []string    `json:"sentences"`
}

// Defined reports whether an average exists.
func (c Coherence) Defined() bool {
	return c.Average != nil
}

// Mean returns the average score, or NaN when undefined.
func (c Coherence) Mean() float64 {
	if c.Average == nil {
		return math.NaN()
	}
	return *c.Average
}

// AnalyzeCoherence scores every pair of adjacent sentences.
//
// A pair scores the share of the first sentence's words (repeats counted)
// that occur in the second, relative to the longer sentence, plus 0.3 per
// related word pair present across the two in either order. Scores are
// capped at 1 and rounded to three decimals; the average is taken over the
// rounded scores and rounded again.
func (a *Analyzer) AnalyzeCoherence(text string) Coherence {
	sentences := textutil.Sentences(text)
	result := Coherence{Scores: []PairScore{}, Sentences: sentences}

	sum := 0.0
	for i := 0; i+1 < len(sentences); i++ {
		s1 := textutil.Fields(strings.ToLower(sentences[i]))
		s2 := textutil.Fields(strings.ToLower(sentences[i+1]))

		score := math.Min(overlap(s1, s2)+a.semanticScore(s1, s2), 1.0)
		score = textutil.Round3(score)
		sum += score

		result.Scores = append(result.Scores, PairScore{
			Sentence1: i + 1,
			Sentence2: i + 2,
			Score:     score,
			Text1:     sentences[i],
			Text2:     sentences[i+1],
		})
	}

	if n := len(result.Scores); n > 0 {
		avg := textutil.Round3(sum / float64(n))
		result.Average = &avg
	}
	return result
}

func overlap(s1, s2 []string) float64 {
	shared := 0
	for _, w := range s1 {
		if contains(s2, w) {
			shared++
		}
	}
	longest := len(s1)
	if len(s2) > longest {
		longest = len(s2)
	}
	return float64(shared) / float64(longest)
}

func (a *Analyzer) semanticScore(s1, s2 []string) float64 {
	score := 0.0
	for _, p := range a.pairs {
		if (contains(s1, p[0]) && contains(s2, p[1])) || (contains(s1, p[1]) && contains(s2, p[0])) {
			score += semanticBonus
		}
	}
	return score
}
