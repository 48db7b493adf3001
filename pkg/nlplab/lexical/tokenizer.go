// Package lexical splits text into tokens and tags words with parts of speech.
package lexical

import (
	"regexp"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Token is one fragment of tokenized text.
type Token struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// boundary matches the separators that are kept as tokens of their own:
// whitespace runs (dropped later), single punctuation marks, currency amounts
// and bare digit runs.
var boundary = regexp.MustCompile(`[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+|[.,!?;:]|[$]\d+|\d+`)

// Tokenize splits text into word, punctuation and number tokens.
// Whitespace is discarded; Position is the index in the resulting sequence.
//
// Example: "I have $5 and 3 books." -> I, have, $5, and, 3, books, .
func Tokenize(text string) []Token {
	tokens := []Token{}
	emit := func(piece string) {
		if textutil.IsBlank(piece) {
			return
		}
		tokens = append(tokens, Token{Text: piece, Position: len(tokens)})
	}

	last := 0
	for _, loc := range boundary.FindAllStringIndex(text, -1) {
		emit(text[last:loc[0]])
		emit(text[loc[0]:loc[1]])
		last = loc[1]
	}
	emit(text[last:])

	return tokens
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
