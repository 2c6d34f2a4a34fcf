package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_EmptyInput(t *testing.T) {
	assert.Nil(t, Split("", 120))
	assert.Nil(t, Split("   \n\t  ", 120))
	assert.Nil(t, Split("<p></p>", 120))
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	chunks := Split("hello world", 120)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestSplit_RespectsLimit(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 40)
	chunks := Split(text, 120)
	require.NotEmpty(t, chunks)
	for i, c := range chunks {
		assert.LessOrEqual(t, len(c), 120, "chunk %d over limit: %q", i, c)
		assert.NotEmpty(t, c)
	}
}

func TestSplit_OversizedWordGetsOwnChunk(t *testing.T) {
	long := strings.Repeat("x", 150)
	chunks := Split("short "+long+" tail", 120)
	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "tail", chunks[2])
}

func TestSplit_RejoinReconstructsInput(t *testing.T) {
	cases := []string{
		"Tell me about yourself and your background.",
		"one  two\tthree\n\nfour five",
		strings.Repeat("the quick brown fox jumps over the lazy dog ", 12),
		"<b>bold</b> and <i>italic</i> words survive without markup",
	}
	for _, text := range cases {
		chunks := Split(text, 40)
		joined := strings.Join(chunks, " ")
		want := strings.Join(strings.Fields(StripTags(text)), " ")
		assert.Equal(t, want, joined)
	}
}

func TestSplit_ZeroLimitUsesDefault(t *testing.T) {
	text := strings.Repeat("word ", 100)
	chunks := Split(text, 0)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), DefaultLimit)
	}
}

func TestStripTags(t *testing.T) {
	cases := map[string]string{
		"plain text":            "plain text",
		"<p>hello</p>":          "hello",
		"a <br/> b":             "a  b",
		"unclosed <tag carries": "unclosed ",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripTags(in))
	}
}
