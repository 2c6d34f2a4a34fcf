package content

import "strings"

// maxReplySentences caps conversational replies.
const maxReplySentences = 3

// LimitSentences keeps at most the first n ". "-separated fragments of
// text and guarantees a trailing period. This is a heuristic, not real
// sentence segmentation: abbreviations and decimal numbers count as
// boundaries, and trailing text without a period is kept as-is. Good
// enough for capping model chatter at a few sentences.
func LimitSentences(text string, n int) string {
	fragments := strings.Split(strings.TrimSpace(text), ". ")
	if len(fragments) > n {
		fragments = fragments[:n]
	}
	result := strings.TrimSpace(strings.Join(fragments, ". "))
	if result != "" && !strings.HasSuffix(result, ".") {
		result += "."
	}
	return result
}
