// Package report renders analysis results as display cards: a title and a
// list of text lines, the way the demo front end presents them.
package report

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/nlplab/pkg/nlplab/discourse"
	"github.com/cognicore/nlplab/pkg/nlplab/lexical"
	"github.com/cognicore/nlplab/pkg/nlplab/morph"
	"github.com/cognicore/nlplab/pkg/nlplab/pragmatic"
	"github.com/cognicore/nlplab/pkg/nlplab/semantic"
	"github.com/cognicore/nlplab/pkg/nlplab/syntax"
)

// Hints shown when an operation finds nothing.
const (
	HintNoEntities  = `No named entities found. Try using names like "Barack Obama" or places like "Hawaii".`
	HintNoSenses    = `No ambiguous words found. Try using words like "bank", "bark", or "bass" in context.`
	HintNoChains    = `No coreference chains found. Try using pronouns like "he", "she", "it" referring to named entities.`
	HintNoSegments  = `No discourse segments identified. Try using transition words like "however", "furthermore", or "meanwhile".`
	undefinedScore  = "undefined (fewer than two sentences)"
	percentTemplate = "%.0f%%"
)

// Builder constructs result cards with unique, time-ordered IDs.
// It is safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new card builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Card is a rendered result.
type Card struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Lines     []string  `json:"lines"`
	Empty     bool      `json:"empty"`
	CreatedAt time.Time `json:"createdAt"`
}

// String renders the card as plain text.
func (c Card) String() string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString(":\n")
	for _, l := range c.Lines {
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// NewID returns a fresh ULID string.
func (b *Builder) NewID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(b.now()), b.entropy).String()
}

// Build renders output under title. Unknown output types are formatted with
// %v on a single line.
func (b *Builder) Build(title string, output any) Card {
	lines, empty := Lines(output)
	return Card{
		ID:        b.NewID(),
		Title:     title,
		Lines:     lines,
		Empty:     empty,
		CreatedAt: b.now(),
	}
}

// Lines renders output as display lines and reports whether the result was
// empty (in which case the lines hold a hint).
func Lines(output any) ([]string, bool) {
	switch v := output.(type) {
	case []morph.Annotation:
		lines := make([]string, len(v))
		for i, a := range v {
			lines[i] = fmt.Sprintf("%s → %s", a.Original, a.Normalized)
		}
		return lines, len(v) == 0

	case []lexical.Token:
		return []string{strings.Join(lexical.Texts(v), "  ")}, len(v) == 0

	case []lexical.Tagged:
		lines := make([]string, len(v))
		for i, t := range v {
			lines[i] = fmt.Sprintf("%s  %s", t.Word, t.Tag)
		}
		return lines, len(v) == 0

	case []syntax.Dependency:
		lines := make([]string, len(v))
		for i, d := range v {
			lines[i] = fmt.Sprintf("%s → %s → %s", d.Word, d.Relation, d.Head)
		}
		return lines, len(v) == 0

	case string:
		return []string{v}, v == ""

	case []semantic.Entity:
		if len(v) == 0 {
			return []string{HintNoEntities}, true
		}
		lines := make([]string, len(v))
		for i, e := range v {
			lines[i] = fmt.Sprintf("%s [%s]", e.Text, e.Label)
		}
		return lines, false

	case []semantic.Sense:
		if len(v) == 0 {
			return []string{HintNoSenses}, true
		}
		var lines []string
		for _, s := range v {
			lines = append(lines,
				fmt.Sprintf("%s (Confidence: "+percentTemplate+")", s.Word, s.Confidence*100),
				"  Sense: "+s.Sense,
				"  Definition: "+s.Definition,
			)
		}
		return lines, false

	case pragmatic.Intent:
		return []string{
			"Intent: " + v.Intent,
			fmt.Sprintf("Confidence: "+percentTemplate, v.Confidence*100),
			v.Explanation,
		}, false

	case pragmatic.Context:
		return contextLines(v), false

	case discourse.Chains:
		if len(v) == 0 {
			return []string{HintNoChains}, true
		}
		lines := make([]string, len(v))
		for i, ch := range v {
			mentions := make([]string, len(ch.Mentions))
			for j, m := range ch.Mentions {
				mentions[j] = fmt.Sprintf("%s (S%d, %s)", m.Mention, m.SentenceIndex, m.Type)
			}
			lines[i] = strings.ToUpper(ch.Entity) + ": " + strings.Join(mentions, ", ")
		}
		return lines, false

	case discourse.Coherence:
		return coherenceLines(v), len(v.Sentences) == 0

	case []discourse.Segment:
		if len(v) == 0 {
			return []string{HintNoSegments}, true
		}
		lines := make([]string, len(v))
		for i, s := range v {
			text := strings.Join(s.Sentences, ". ")
			if len(s.Sentences) > 0 {
				text += "."
			}
			lines[i] = fmt.Sprintf("Segment %d [%s]: %s", i+1, s.Topic, text)
		}
		return lines, false
	}

	return []string{fmt.Sprintf("%v", output)}, output == nil
}

func contextLines(c pragmatic.Context) []string {
	rows := []struct{ key, value string }{
		{"Literal Meaning", c.LiteralMeaning},
		{"Pragmatic Meaning", c.PragmaticMeaning},
		{"Speech Act", c.SpeechAct},
		{"Implicature", c.Implicature},
	}
	var lines []string
	for _, r := range rows {
		if r.value != "" {
			lines = append(lines, r.key+": "+r.value)
		}
	}
	return lines
}

func coherenceLines(c discourse.Coherence) []string {
	overall := undefinedScore
	if c.Defined() {
		overall = formatScore(*c.Average)
	}
	lines := []string{"Overall Coherence Score: " + overall}
	for _, s := range c.Scores {
		lines = append(lines, fmt.Sprintf("S%d → S%d: %s", s.Sentence1, s.Sentence2, formatScore(s.Score)))
	}
	lines = append(lines, "Sentence Breakdown:")
	for i, s := range c.Sentences {
		lines = append(lines, fmt.Sprintf("S%d: %q", i+1, s))
	}
	return lines
}

// formatScore prints a rounded score without trailing zeros (0.5, 0.333, 1).
func formatScore(f float64) string {
	return fmt.Sprintf("%g", f)
}
