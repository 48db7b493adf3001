// Package nlplab is a teaching engine for the phases of natural language
// processing: morphology, lexical analysis, syntax, semantics, pragmatics
// and discourse.
//
// Every operation is a table lookup or a short ordered rule chain over small
// built-in vocabularies. The results are illustrative, not linguistically
// accurate.
package nlplab

import (
	"github.com/cognicore/nlplab/pkg/nlplab/config"
	"github.com/cognicore/nlplab/pkg/nlplab/discourse"
	"github.com/cognicore/nlplab/pkg/nlplab/lexical"
	"github.com/cognicore/nlplab/pkg/nlplab/morph"
	"github.com/cognicore/nlplab/pkg/nlplab/pragmatic"
	"github.com/cognicore/nlplab/pkg/nlplab/report"
	"github.com/cognicore/nlplab/pkg/nlplab/semantic"
	"github.com/cognicore/nlplab/pkg/nlplab/syntax"
	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Engine is the annotation engine facade. It is safe for concurrent use.
type Engine struct {
	morph     *morph.Analyzer
	tagger    *lexical.Tagger
	ner       *semantic.Recognizer
	wsd       *semantic.Disambiguator
	discourse *discourse.Analyzer
	cards     *report.Builder
	delays    bool
}

// Options configures an Engine.
type Options struct {
	// Components built by config.Loader. Nil selects the built-in tables.
	Components *config.Components

	// SimulateDelay makes Analyze wait for each operation's Delay before
	// running it.
	SimulateDelay bool
}

// New creates an Engine.
func New(opts Options) *Engine {
	comp := opts.Components
	if comp == nil {
		// built-in tables always validate
		comp, _ = config.Build(config.DefaultTables(), nil, nil)
	}
	return &Engine{
		morph:     comp.Morph,
		tagger:    comp.Tagger,
		ner:       comp.Recognizer,
		wsd:       comp.Disambiguator,
		discourse: comp.Discourse,
		cards:     report.New(),
		delays:    opts.SimulateDelay,
	}
}

// Stem reduces each word to its stem.
func (e *Engine) Stem(words []string) []morph.Annotation {
	return e.morph.Stem(words)
}

// Lemmatize reduces each word to its lemma.
func (e *Engine) Lemmatize(words []string) []morph.Annotation {
	return e.morph.Lemmatize(words)
}

// Tokenize splits text into word and punctuation tokens.
func (e *Engine) Tokenize(text string) []lexical.Token {
	return lexical.Tokenize(text)
}

// POSTag assigns a part-of-speech tag to each whitespace-separated word.
func (e *Engine) POSTag(text string) []lexical.Tagged {
	return e.tagger.Tag(text)
}

// DependencyParse links each word to a head word with a relation.
func (e *Engine) DependencyParse(text string) []syntax.Dependency {
	return syntax.DependencyParse(text)
}

// ParseTree returns a bracketed NP/VP constituency string.
func (e *Engine) ParseTree(text string) string {
	return syntax.ParseTree(text)
}

// NamedEntityRecognition finds gazetteer entities in text.
func (e *Engine) NamedEntityRecognition(text string) []semantic.Entity {
	return e.ner.Recognize(text)
}

// WordSenseDisambiguation picks a sense for each ambiguous word in context.
func (e *Engine) WordSenseDisambiguation(text string) []semantic.Sense {
	return e.wsd.Disambiguate(text)
}

// IntentRecognition classifies the speaker intent of an utterance.
func (e *Engine) IntentRecognition(text string) pragmatic.Intent {
	return pragmatic.RecognizeIntent(text)
}

// ContextAnalysis infers the speech act and implied meaning of text.
func (e *Engine) ContextAnalysis(text string) pragmatic.Context {
	return pragmatic.AnalyzeContext(text)
}

// CoreferenceResolution groups entity mentions and pronouns into chains.
func (e *Engine) CoreferenceResolution(text string) discourse.Chains {
	return e.discourse.ResolveCoreference(text)
}

// CoherenceAnalysis scores adjacent sentence pairs. The average is undefined
// for fewer than two sentences.
func (e *Engine) CoherenceAnalysis(text string) discourse.Coherence {
	return e.discourse.AnalyzeCoherence(text)
}

// DiscourseSegmentation groups sentences into topical segments.
func (e *Engine) DiscourseSegmentation(text string) []discourse.Segment {
	return e.discourse.Segment(text)
}

// ExtractTopic labels a sentence with a topic.
func (e *Engine) ExtractTopic(sentence string) string {
	return e.discourse.ExtractTopic(sentence)
}

// words parses the word-list input of stem and lemmatize.
func words(input string) []string {
	return textutil.WordList(input)
}
