// internal/ai/cleanup_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStripsGenerationTag(t *testing.T) {
	input := "A great product.\n\nGeneration ID: 1714040000000 - internal tag, never mention it in the output."
	got := Clean(input)

	assert.Equal(t, "A great product.", got)
	assert.NotContains(t, got, "Generation ID:")
}

func TestCleanStripsMarkdown(t *testing.T) {
	input := "# Amazing Headphones\n\n**Crystal clear** sound with *deep* bass.\n\n- Long battery life\n- Comfortable fit"
	got := Clean(input)

	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "- ")
	assert.Contains(t, got, "Crystal clear sound with deep bass.")
	assert.Contains(t, got, "Amazing Headphones")
	assert.Contains(t, got, "Long battery life")
}

func TestCleanTrimsWhitespace(t *testing.T) {
	got := Clean("  \n\nsome text\n\n  ")
	assert.Equal(t, "some text", got)
}

func TestCleanLeavesPlainTextAlone(t *testing.T) {
	input := "First paragraph.\n\nSecond paragraph with 3-4 benefits."
	assert.Equal(t, input, Clean(input))
}

func TestCleanTagInMiddleOfText(t *testing.T) {
	input := "Before.\nGeneration ID: 42 - internal tag, never mention it in the output.\nAfter."
	got := Clean(input)

	assert.NotContains(t, got, "Generation ID:")
	assert.Contains(t, got, "Before.")
	assert.Contains(t, got, "After.")
}

func TestStripMarkdownEmphasisKeepsInnerText(t *testing.T) {
	assert.Equal(t, "bold and italic", StripMarkdownEmphasis("**bold** and *italic*"))
}
