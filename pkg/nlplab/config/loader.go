package config

import (
	"fmt"

	"github.com/cognicore/nlplab/pkg/nlplab/discourse"
	"github.com/cognicore/nlplab/pkg/nlplab/lexical"
	"github.com/cognicore/nlplab/pkg/nlplab/lexicon"
	"github.com/cognicore/nlplab/pkg/nlplab/morph"
	"github.com/cognicore/nlplab/pkg/nlplab/semantic"
)

// Loader loads the table files and constructs components.
// Every path is optional; an empty Loader yields the built-in tables.
type Loader struct {
	TablesPath string // Tables override file
	StemsPath  string // lexicon group file merged into the stem table
	LemmasPath string // lexicon group file merged into the lemma table
}

// Components holds the analysis components built from the tables.
type Components struct {
	Tables        *Tables
	Morph         *morph.Analyzer
	Tagger        *lexical.Tagger
	Recognizer    *semantic.Recognizer
	Disambiguator *semantic.Disambiguator
	Discourse     *discourse.Analyzer
}

// Load reads all configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	tables := DefaultTables()

	if l.TablesPath != "" {
		override, err := LoadTables(l.TablesPath)
		if err != nil {
			return nil, fmt.Errorf("load tables: %w", err)
		}
		tables.Merge(override)
	}

	stems := lexicon.FromMap(tables.Stems)
	if l.StemsPath != "" {
		groups, err := lexicon.LoadFromYAML(l.StemsPath)
		if err != nil {
			return nil, fmt.Errorf("load stems: %w", err)
		}
		stems.Merge(groups)
	}

	lemmas := lexicon.FromMap(tables.Lemmas)
	if l.LemmasPath != "" {
		groups, err := lexicon.LoadFromYAML(l.LemmasPath)
		if err != nil {
			return nil, fmt.Errorf("load lemmas: %w", err)
		}
		lemmas.Merge(groups)
	}

	return Build(tables, stems, lemmas)
}

// Build constructs components from validated tables. Nil lexicon tables are
// built from tables.Stems and tables.Lemmas.
func Build(tables *Tables, stems, lemmas *lexicon.Table) (*Components, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	if stems == nil {
		stems = lexicon.FromMap(tables.Stems)
	}
	if lemmas == nil {
		lemmas = lexicon.FromMap(tables.Lemmas)
	}

	gaz := semantic.NewGazetteer()
	for label, names := range tables.Gazetteer {
		if err := gaz.Add(label, names); err != nil {
			return nil, err
		}
	}

	return &Components{
		Tables:        tables,
		Morph:         morph.NewAnalyzer(stems, lemmas),
		Tagger:        lexical.NewTagger(tables.POS),
		Recognizer:    semantic.NewRecognizer(gaz),
		Disambiguator: semantic.NewDisambiguator(tables.Senses),
		Discourse: discourse.NewAnalyzer(discourse.Options{
			Entities:      tables.Entities,
			Pronouns:      tables.Pronouns,
			SemanticPairs: tables.Pairs(),
			ShiftMarkers:  tables.ShiftMarkers,
			Topics:        tables.Topics,
		}),
	}, nil
}
