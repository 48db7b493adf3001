package nlplab

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
	"github.com/cognicore/nlplab/pkg/nlplab/report"
	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Phase names.
const (
	PhaseOverview      = "overview"
	PhaseMorphological = "morphological"
	PhaseLexical       = "lexical"
	PhaseSyntactic     = "syntactic"
	PhaseSemantic      = "semantic"
	PhasePragmatic     = "pragmatic"
	PhaseDiscourse     = "discourse"
)

// Operation describes one analysis the engine offers.
type Operation struct {
	Name   string        `json:"name"`
	Phase  string        `json:"phase"`
	Title  string        `json:"title"`
	Sample string        `json:"sample"`
	Delay  time.Duration `json:"-"`

	run func(e *Engine, input string) any
}

// MarshalJSON publishes the delay in milliseconds.
func (o Operation) MarshalJSON() ([]byte, error) {
	type plain Operation
	return json.Marshal(struct {
		plain
		DelayMS int64 `json:"delayMs"`
	}{plain(o), o.Delay.Milliseconds()})
}

var operations = []Operation{
	{
		Name: "stem", Phase: PhaseMorphological, Title: "Stemming Results",
		Sample: "running, runs, easily, fairly, jumped", Delay: 800 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.Stem(words(in)) },
	},
	{
		Name: "lemmatize", Phase: PhaseMorphological, Title: "Lemmatization Results",
		Sample: "running, better, mice, children, feet", Delay: 800 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.Lemmatize(words(in)) },
	},
	{
		Name: "tokenize", Phase: PhaseLexical, Title: "Tokenization Results",
		Sample: "I have $5 and 3 books.", Delay: 600 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.Tokenize(in) },
	},
	{
		Name: "pos", Phase: PhaseLexical, Title: "POS Tagging Results",
		Sample: "The quick brown fox jumps over the dog", Delay: 700 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.POSTag(in) },
	},
	{
		Name: "dependency", Phase: PhaseSyntactic, Title: "Dependency Parsing Results",
		Sample: "The cat sits on the mat", Delay: 900 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.DependencyParse(in) },
	},
	{
		Name: "tree", Phase: PhaseSyntactic, Title: "Parse Tree Results",
		Sample: "John loves Mary", Delay: 1000 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.ParseTree(in) },
	},
	{
		Name: "ner", Phase: PhaseSemantic, Title: "Named Entity Recognition Results",
		Sample: "Barack Obama was born in Hawaii", Delay: 800 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.NamedEntityRecognition(in) },
	},
	{
		Name: "wsd", Phase: PhaseSemantic, Title: "Word Sense Disambiguation Results",
		Sample: "I went to the bank to deposit money", Delay: 1100 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.WordSenseDisambiguation(in) },
	},
	{
		Name: "intent", Phase: PhasePragmatic, Title: "Intent Recognition Results",
		Sample: "Can you close the window?", Delay: 700 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.IntentRecognition(in) },
	},
	{
		Name: "context", Phase: PhasePragmatic, Title: "Context Analysis Results",
		Sample: "It's cold in here", Delay: 900 * time.Millisecond,
		run: func(e *Engine, in string) any { return e.ContextAnalysis(in) },
	},
	{
		Name: "coreference", Phase: PhaseDiscourse, Title: "Coreference Resolution Results",
		Sample: "John went to the store. He bought milk and bread. The groceries were expensive.",
		Delay:  1200 * time.Millisecond,
		run:    func(e *Engine, in string) any { return e.CoreferenceResolution(in) },
	},
	{
		Name: "coherence", Phase: PhaseDiscourse, Title: "Coherence Analysis Results",
		Sample: "John went to the store. He bought milk and bread. The groceries were expensive.",
		Delay:  1100 * time.Millisecond,
		run:    func(e *Engine, in string) any { return e.CoherenceAnalysis(in) },
	},
	{
		Name: "segmentation", Phase: PhaseDiscourse, Title: "Discourse Segmentation Results",
		Sample: "The company reported profits. However, the stock fell. Meanwhile, layoffs began.",
		Delay:  1000 * time.Millisecond,
		run:    func(e *Engine, in string) any { return e.DiscourseSegmentation(in) },
	},
}

// Operations returns the operation catalogue in display order.
func Operations() []Operation {
	return append([]Operation(nil), operations...)
}

// Lookup finds an operation by name.
func Lookup(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Phase groups the operations of one linguistic phase.
type Phase struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
}

// Phases returns the overview followed by the six analysis phases.
func Phases() []Phase {
	phases := []Phase{{Name: PhaseOverview, Operations: []string{}}}
	index := map[string]int{}
	for _, op := range operations {
		i, ok := index[op.Phase]
		if !ok {
			i = len(phases)
			index[op.Phase] = i
			phases = append(phases, Phase{Name: op.Phase})
		}
		phases[i].Operations = append(phases[i].Operations, op.Name)
	}
	return phases
}

// Request asks for one operation on one input.
type Request struct {
	Op        string `json:"op"`
	Text      string `json:"text"`
	StripHTML bool   `json:"stripHtml,omitempty"`
}

// Result is the envelope returned by Analyze.
type Result struct {
	ID     string      `json:"id"`
	Op     string      `json:"op"`
	Phase  string      `json:"phase"`
	Title  string      `json:"title"`
	Input  string      `json:"input"`
	Output any         `json:"output"`
	Card   report.Card `json:"card"`
}

// Analyze runs the named operation. Empty or whitespace-only input is
// rejected with ErrEmptyInput, matching the demo where an empty box does
// nothing. When delays are enabled, Analyze waits for the operation's delay
// first and returns ctx.Err() if the context ends sooner.
func (e *Engine) Analyze(ctx context.Context, req Request) (Result, error) {
	op, ok := Lookup(req.Op)
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", req.Op, internalerr.ErrUnknownOperation)
	}

	input := req.Text
	if req.StripHTML {
		input = textutil.StripHTML(input)
	}
	if textutil.IsBlank(input) {
		return Result{}, fmt.Errorf("%s: %w", op.Name, internalerr.ErrEmptyInput)
	}

	if e.delays {
		if err := Wait(ctx, op.Delay); err != nil {
			return Result{}, err
		}
	}

	output := op.run(e, input)
	card := e.cards.Build(op.Title, output)
	return Result{
		ID:     card.ID,
		Op:     op.Name,
		Phase:  op.Phase,
		Title:  op.Title,
		Input:  input,
		Output: output,
		Card:   card,
	}, nil
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
