// Package textutil holds the splitting, matching and rounding helpers shared
// by every analysis phase.
//
// Splitting follows regular-expression split semantics rather than
// strings.Fields: leading or trailing whitespace yields an empty first or last
// field, and the empty string yields a single empty field. Word indexes
// produced by the analyzers depend on this.
package textutil

import (
	"math"
	"math/big"
	"regexp"
	"strings"
)

// whitespace is the class used for word splitting and trimming. It is wider
// than the RE2 \s class (vertical tab, no-break space, the Unicode space
// separators and the byte order mark).
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var whitespaceRun = regexp.MustCompile(`[` + whitespace + `]+`)

// Fields splits text on runs of whitespace.
//
// Examples:
//   - Fields("the fox") -> ["the", "fox"]
//   - Fields(" the fox ") -> ["", "the", "fox", ""]
//   - Fields("") -> [""]
func Fields(text string) []string {
	return whitespaceRun.Split(text, -1)
}

// IsSpace reports whether r belongs to the whitespace class used by Fields.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return Trim(s) == ""
}

// Sentences splits text on '.', trims every piece and drops empty pieces.
// Abbreviations and other punctuation are not considered.
func Sentences(text string) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = Trim(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// WordList parses a comma-separated word list ("running, ran, mice").
// Pieces are trimmed but not dropped, so "a,,b" yields an empty middle word.
func WordList(input string) []string {
	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = Trim(parts[i])
	}
	return parts
}

// ContainsAny reports whether s contains any of the keywords as a substring.
func ContainsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Round3 rounds x to three decimals, resolving ties away from zero on the
// exact binary value of x (0.0625 -> 0.063). NaN and infinities pass through.
func Round3(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(x)
	scaled.Mul(scaled, big.NewFloat(1000))
	scaled.Add(scaled, big.NewFloat(0.5))
	n, _ := scaled.Int(nil)

	r := float64(n.Int64()) / 1000
	if neg {
		r = -r
	}
	return r
}
