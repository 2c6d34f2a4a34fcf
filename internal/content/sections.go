package content

import "strings"

// SectionKind identifies one of the five content categories a stored
// interview document may contain.
type SectionKind string

const (
	SectionInterviewQuestions SectionKind = "interview_questions"
	SectionStudyMaterial      SectionKind = "study_material"
	SectionTips               SectionKind = "tips"
	SectionMockInterview      SectionKind = "mock_interview"
	SectionCommonMistakes     SectionKind = "common_mistakes"
)

// Sentinel strings surfaced to the client instead of errors. A missing
// section or document is a normal, recoverable condition.
const (
	SectionNotFound = "Section not found"
	NoContentFound  = "No content found"
)

// sectionMarkers maps each section kind to the glyph that prefixes its
// heading line in the source documents. Order is fixed; extraction scans
// this table instead of deriving a lookahead pattern per kind.
var sectionMarkers = []struct {
	glyph string
	kind  SectionKind
}{
	{"📌", SectionInterviewQuestions},
	{"📚", SectionStudyMaterial},
	{"💡", SectionTips},
	{"🎯", SectionMockInterview},
	{"⚠️", SectionCommonMistakes},
}

// ParseSectionKind validates a client-supplied section type string.
func ParseSectionKind(s string) (SectionKind, bool) {
	for _, m := range sectionMarkers {
		if string(m.kind) == s {
			return m.kind, true
		}
	}
	return "", false
}

// ExtractSection returns the block of text belonging to the given section
// kind: everything after the first line beginning with the kind's glyph,
// up to the next blank-line-separated block that starts with any other
// recognized glyph, or end of document. The result is trimmed. When the
// document has no heading for the kind, SectionNotFound is returned.
func ExtractSection(text string, kind SectionKind) string {
	glyph := ""
	for _, m := range sectionMarkers {
		if m.kind == kind {
			glyph = m.glyph
			break
		}
	}
	if glyph == "" {
		return SectionNotFound
	}

	body, ok := afterMarkerLine(text, glyph)
	if !ok {
		return SectionNotFound
	}

	end := len(body)
	for _, m := range sectionMarkers {
		if m.glyph == glyph {
			continue
		}
		if i := strings.Index(body, "\n\n"+m.glyph); i >= 0 && i < end {
			end = i
		}
	}

	return strings.TrimSpace(body[:end])
}

// afterMarkerLine finds the first line prefixed with glyph and returns the
// text that follows that line.
func afterMarkerLine(text, glyph string) (string, bool) {
	idx := 0
	for idx < len(text) {
		lineEnd := strings.IndexByte(text[idx:], '\n')
		var line string
		var next int
		if lineEnd < 0 {
			line = text[idx:]
			next = len(text)
		} else {
			line = text[idx : idx+lineEnd]
			next = idx + lineEnd + 1
		}
		if strings.HasPrefix(line, glyph) {
			return text[next:], true
		}
		idx = next
		if lineEnd < 0 {
			break
		}
	}
	return "", false
}
