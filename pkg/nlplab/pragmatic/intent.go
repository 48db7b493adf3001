// Package pragmatic classifies the intent and speech act of an utterance
// with ordered keyword rules.
package pragmatic

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// Intent categories.
const (
	IntentRequest   = "REQUEST"
	IntentQuestion  = "QUESTION"
	IntentGreeting  = "GREETING"
	IntentGratitude = "GRATITUDE"
	IntentStatement = "STATEMENT"
)

// Intent is the classified intent of an utterance.
type Intent struct {
	Intent      string  `json:"intent"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// IntentRule fires when the lowercase text contains any of Markers.
// A rule without markers always fires.
type IntentRule struct {
	Markers []string
	Result  Intent
}

// Matches reports whether the rule fires for lowercase text.
func (r IntentRule) Matches(lower string) bool {
	return len(r.Markers) == 0 || textutil.ContainsAny(lower, r.Markers...)
}

// Polite request markers, shared with context analysis.
var (
	requestMarkers  = []string{"can you", "could you", "would you", "please"}
	indirectRequest = []string{"can you", "could you", "would you"}
)

// IntentRules is evaluated in order; the first match wins.
// Markers match as substrings, so "this" contains the greeting "hi".
var IntentRules = []IntentRule{
	{
		Markers: requestMarkers,
		Result:  Intent{IntentRequest, 0.92, "Polite request pattern detected"},
	},
	{
		Markers: []string{"what", "where", "when", "how", "why", "who"},
		Result:  Intent{IntentQuestion, 0.88, "Interrogative word detected"},
	},
	{
		Markers: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		Result:  Intent{IntentGreeting, 0.95, "Greeting phrase detected"},
	},
	{
		Markers: []string{"thank you", "thanks", "appreciate"},
		Result:  Intent{IntentGratitude, 0.90, "Gratitude expression detected"},
	},
	{
		Result: Intent{IntentStatement, 0.70, "Default classification for declarative sentence"},
	},
}

// RecognizeIntent classifies text with IntentRules.
func RecognizeIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range IntentRules {
		if r.Matches(lower) {
			return r.Result
		}
	}
	return IntentRules[len(IntentRules)-1].Result
}
