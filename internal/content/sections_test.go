package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `Infosys - Software Engineer Interview Guide

📌 Interview Questions
1. Explain the four pillars of OOP.
2. What is a deadlock?

📚 Study Material
Operating systems, DBMS normalization, and basic data structures.

💡 Tips
Be concise. Use the STAR method for behavioral questions.

🎯 Mock Interview
Q: Tell me about yourself.
A: Keep it under two minutes.

⚠️ Common Mistakes
Rambling answers and not asking clarifying questions.`

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name string
		kind SectionKind
		want string
	}{
		{
			name: "interview questions",
			kind: SectionInterviewQuestions,
			want: "1. Explain the four pillars of OOP.\n2. What is a deadlock?",
		},
		{
			name: "study material",
			kind: SectionStudyMaterial,
			want: "Operating systems, DBMS normalization, and basic data structures.",
		},
		{
			name: "tips",
			kind: SectionTips,
			want: "Be concise. Use the STAR method for behavioral questions.",
		},
		{
			name: "mock interview",
			kind: SectionMockInterview,
			want: "Q: Tell me about yourself.\nA: Keep it under two minutes.",
		},
		{
			name: "common mistakes runs to end of document",
			kind: SectionCommonMistakes,
			want: "Rambling answers and not asking clarifying questions.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSection(sampleDoc, tt.kind))
		})
	}
}

func TestExtractSectionMissingHeading(t *testing.T) {
	doc := "📌 Interview Questions\nWhat is a pointer?"
	assert.Equal(t, SectionNotFound, ExtractSection(doc, SectionTips))
	assert.Equal(t, SectionNotFound, ExtractSection("", SectionTips))
}

func TestExtractSectionHeadingWithTrailingText(t *testing.T) {
	// The glyph only has to prefix the line; the rest of the heading is
	// free-form.
	doc := "💡 Tips for Software Engineer at Infosys\nPractice aloud.\n\n🎯 Mock Interview\nQ: hello"
	assert.Equal(t, "Practice aloud.", ExtractSection(doc, SectionTips))
}

func TestExtractSectionGlyphMidLineIgnored(t *testing.T) {
	// A glyph that does not start its line is content, not a heading.
	doc := "Intro mentioning 💡 inline.\n\n💡 Tips\nSleep well."
	assert.Equal(t, "Sleep well.", ExtractSection(doc, SectionTips))
}

func TestParseSectionKind(t *testing.T) {
	kind, ok := ParseSectionKind("study_material")
	require.True(t, ok)
	assert.Equal(t, SectionStudyMaterial, kind)

	_, ok = ParseSectionKind("salary_expectations")
	assert.False(t, ok)

	_, ok = ParseSectionKind("")
	assert.False(t, ok)
}
