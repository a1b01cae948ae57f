package querystats

import (
	"strings"
	"unicode"
)

// Canonicalize folds a question into its counting key: lower case, single
// spaces, trailing punctuation stripped. "Weather in Jurong?" and
// "weather in jurong" count as the same question.
func Canonicalize(question string) string {
	question = strings.ToLower(strings.TrimSpace(question))
	question = strings.TrimRightFunc(question, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	return strings.Join(strings.Fields(question), " ")
}
