// Package config loads linguistic table overrides from YAML and builds the
// analysis components from them.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/nlplab/pkg/nlplab/discourse"
	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
	"github.com/cognicore/nlplab/pkg/nlplab/lexical"
	"github.com/cognicore/nlplab/pkg/nlplab/morph"
	"github.com/cognicore/nlplab/pkg/nlplab/semantic"
)

// Tables holds every lookup table and word list the engine uses.
//
// In an override file, map entries are merged key by key onto the defaults
// and a list that is present replaces the default list.
type Tables struct {
	Stems         map[string]string              `yaml:"stems"`
	Lemmas        map[string]string              `yaml:"lemmas"`
	POS           map[string]string              `yaml:"pos"`
	Gazetteer     map[string][]string            `yaml:"gazetteer"`
	Senses        map[string]semantic.SenseEntry `yaml:"senses"`
	Entities      []string                       `yaml:"entities"`
	Pronouns      []string                       `yaml:"pronouns"`
	SemanticPairs [][]string                     `yaml:"semanticPairs"`
	ShiftMarkers  []string                       `yaml:"shiftMarkers"`
	Topics        []discourse.TopicRule          `yaml:"topics"`
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() *Tables {
	t := &Tables{
		Stems:        copyMap(morph.DefaultStemMap),
		Lemmas:       copyMap(morph.DefaultLemmaMap),
		POS:          copyMap(lexical.DefaultTags),
		Gazetteer:    make(map[string][]string, len(semantic.DefaultNames)),
		Senses:       make(map[string]semantic.SenseEntry, len(semantic.DefaultSenses)),
		Entities:     append([]string(nil), discourse.DefaultEntities...),
		Pronouns:     append([]string(nil), discourse.DefaultPronouns...),
		ShiftMarkers: append([]string(nil), discourse.DefaultShiftMarkers...),
		Topics:       append([]discourse.TopicRule(nil), discourse.DefaultTopicRules...),
	}
	for label, names := range semantic.DefaultNames {
		t.Gazetteer[label] = append([]string(nil), names...)
	}
	for word, e := range semantic.DefaultSenses {
		t.Senses[word] = e
	}
	for _, p := range discourse.DefaultSemanticPairs {
		t.SemanticPairs = append(t.SemanticPairs, []string{p[0], p[1]})
	}
	return t
}

// LoadTables reads an override file. The result holds only what the file
// sets; use Merge to apply it onto DefaultTables.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &t, nil
}

// Merge applies override onto t.
func (t *Tables) Merge(override *Tables) {
	if override == nil {
		return
	}
	mergeMap(t.Stems, override.Stems)
	mergeMap(t.Lemmas, override.Lemmas)
	mergeMap(t.POS, override.POS)
	for label, names := range override.Gazetteer {
		t.Gazetteer[label] = append(t.Gazetteer[label], names...)
	}
	for word, e := range override.Senses {
		t.Senses[strings.ToLower(word)] = e
	}
	if override.Entities != nil {
		t.Entities = override.Entities
	}
	if override.Pronouns != nil {
		t.Pronouns = override.Pronouns
	}
	if override.SemanticPairs != nil {
		t.SemanticPairs = override.SemanticPairs
	}
	if override.ShiftMarkers != nil {
		t.ShiftMarkers = override.ShiftMarkers
	}
	if override.Topics != nil {
		t.Topics = override.Topics
	}
}

// Validate checks the tables for entries the engine cannot use.
func (t *Tables) Validate() error {
	for label := range t.Gazetteer {
		if !isLabel(label) {
			return fmt.Errorf("gazetteer label %q: %w", label, internalerr.ErrInvalidConfig)
		}
	}
	for word, e := range t.Senses {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("sense %q: %w", word, err)
		}
	}
	for i, p := range t.SemanticPairs {
		if len(p) != 2 {
			return fmt.Errorf("semantic pair %d has %d words: %w", i, len(p), internalerr.ErrInvalidConfig)
		}
	}
	for i, r := range t.Topics {
		if r.Topic == "" {
			return fmt.Errorf("topic rule %d has no name: %w", i, internalerr.ErrInvalidConfig)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("topic %q has no keywords: %w", r.Topic, internalerr.ErrInvalidConfig)
		}
	}
	return nil
}

// Pairs returns the semantic pairs as discourse word pairs.
func (t *Tables) Pairs() []discourse.WordPair {
	if t.SemanticPairs == nil {
		return nil
	}
	out := make([]discourse.WordPair, 0, len(t.SemanticPairs))
	for _, p := range t.SemanticPairs {
		if len(p) == 2 {
			out = append(out, discourse.WordPair{p[0], p[1]})
		}
	}
	return out
}

func isLabel(label string) bool {
	for _, l := range semantic.Labels {
		if l == label {
			return true
		}
	}
	return false
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	mergeMap(out, m)
	return out
}

func mergeMap(dst, src map[string]string) {
	for k, v := range src {
		dst[strings.ToLower(k)] = v
	}
}
