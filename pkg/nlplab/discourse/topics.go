package discourse

import (
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// GeneralTopic is assigned when no rule matches.
const GeneralTopic = "General"

// TopicRule labels a sentence with Topic when it contains any keyword.
type TopicRule struct {
	Topic    string   `yaml:"topic" json:"topic"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Topics is an ordered topic rule list; the first matching rule wins.
type Topics struct {
	rules []TopicRule
}

// NewTopics creates a topic list. Keywords are lowercased.
func NewTopics(rules []TopicRule) *Topics {
	normalized := make([]TopicRule, len(rules))
	for i, r := range rules {
		normalized[i] = TopicRule{Topic: r.Topic, Keywords: lowerAll(r.Keywords)}
	}
	return &Topics{rules: normalized}
}

// Extract returns the topic of sentence, GeneralTopic when nothing matches.
func (t *Topics) Extract(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, r := range t.rules {
		if textutil.ContainsAny(lower, r.Keywords...) {
			return r.Topic
		}
	}
	return GeneralTopic
}

// Names returns the topic labels in rule order, GeneralTopic last.
func (t *Topics) Names() []string {
	out := make([]string, 0, len(t.rules)+1)
	for _, r := range t.rules {
		out = append(out, r.Topic)
	}
	return append(out, GeneralTopic)
}

// DefaultTopicRules is the built-in keyword → topic mapping.
var DefaultTopicRules = []TopicRule{
	{Topic: "Finance", Keywords: []string{"profit", "money", "financial"}},
	{Topic: "Market", Keywords: []string{"stock", "market", "shares"}},
	{Topic: "Employment", Keywords: []string{"layoff", "job", "employment"}},
	{Topic: "Shopping", Keywords: []string{"store", "shop", "buy"}},
	{Topic: "Technology", Keywords: []string{"programming", "code", "software"}},
	{Topic: "Food", Keywords: []string{"food", "groceries", "milk", "bread"}},
}
