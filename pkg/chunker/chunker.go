// Package chunker splits text into bounded-length chunks suitable for
// piecewise speech synthesis.
package chunker

import "strings"

// DefaultLimit is the character budget per chunk.
const DefaultLimit = 120

// Split strips angle-bracket tags from text and greedily packs
// whitespace-separated words into chunks of at most limit characters.
// A single word longer than limit becomes its own oversized chunk.
// Joining the chunks with single spaces reproduces the tag-stripped,
// whitespace-normalized input.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	words := strings.Fields(StripTags(text))
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, w := range words {
		if current.Len() == 0 {
			current.WriteString(w)
			continue
		}
		if current.Len()+1+len(w) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(w)
			continue
		}
		current.WriteByte(' ')
		current.WriteString(w)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// StripTags removes anything between '<' and '>' inclusive. Markup that
// slips into stored content would otherwise be read aloud verbatim.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
