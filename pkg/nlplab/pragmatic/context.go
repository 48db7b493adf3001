package pragmatic

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Speech acts.
const (
	ActRequest   = "REQUEST"
	ActQuestion  = "QUESTION"
	ActAssertion = "ASSERTION"
)

// Context is the pragmatic reading of an utterance. Empty fields mean no
// inference was made, which is a valid outcome.
type Context struct {
	LiteralMeaning   string `json:"literalMeaning"`
	PragmaticMeaning string `json:"pragmaticMeaning,omitempty"`
	SpeechAct        string `json:"speechAct,omitempty"`
	Implicature      string `json:"implicature,omitempty"`
}

// Inferred reports whether any pragmatic field was filled in.
func (c Context) Inferred() bool {
	return c.SpeechAct != "" || c.PragmaticMeaning != "" || c.Implicature != ""
}

var (
	copularMarkers     = []string{"it's", "this is"}
	temperatureMarkers = []string{"cold", "hot", "warm", "cool"}
)

// AnalyzeContext infers the speech act and implicature of text.
//
// Questions (any '?') are requests when phrased "can/could/would you",
// otherwise information seeking. Copular statements ("it's", "this is")
// are assertions; mentioning a temperature turns them into an indirect
// request. Everything else gets only the literal meaning.
func AnalyzeContext(text string) Context {
	lower := strings.ToLower(text)
	c := Context{LiteralMeaning: text}

	switch {
	case strings.Contains(text, "?"):
		if textutil.ContainsAny(lower, indirectRequest...) {
			c.SpeechAct = ActRequest
			c.PragmaticMeaning = "Polite request for action"
			c.Implicature = "Speaker wants the listener to perform an action"
		} else {
			c.SpeechAct = ActQuestion
			c.PragmaticMeaning = "Information seeking"
			c.Implicature = "Speaker wants information from listener"
		}
	case textutil.ContainsAny(lower, copularMarkers...):
		c.SpeechAct = ActAssertion
		if textutil.ContainsAny(lower, temperatureMarkers...) {
			c.PragmaticMeaning = "Indirect request to adjust temperature"
			c.Implicature = "Speaker wants temperature to be changed"
		} else {
			c.PragmaticMeaning = "Statement of fact or opinion"
		}
	}

	return c
}
