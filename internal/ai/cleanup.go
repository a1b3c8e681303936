// internal/ai/cleanup.go
package ai

import (
	"regexp"
	"strings"
)

// Transform is a single pure text-cleanup step.
type Transform func(string) string

var (
	generationTagPattern = regexp.MustCompile(`Generation ID: \d+ -[^\n]*`)
	boldPattern          = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern        = regexp.MustCompile(`\*(.*?)\*`)
	headingPattern       = regexp.MustCompile(`(?m)^#+\s*`)
	bulletPattern        = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
)

// StripGenerationTag removes the timestamp tag BuildPrompt injects in case
// the provider echoes it back.
func StripGenerationTag(s string) string {
	return generationTagPattern.ReplaceAllString(s, "")
}

// StripMarkdownEmphasis unwraps **bold** and *italic* spans.
func StripMarkdownEmphasis(s string) string {
	s = boldPattern.ReplaceAllString(s, "$1")
	return italicPattern.ReplaceAllString(s, "$1")
}

// StripMarkdownHeadings drops leading # markers.
func StripMarkdownHeadings(s string) string {
	return headingPattern.ReplaceAllString(s, "")
}

// StripListMarkers drops leading -/* bullet markers.
func StripListMarkers(s string) string {
	return bulletPattern.ReplaceAllString(s, "")
}

// cleanupChain is applied in order; the tag must go first so emphasis
// stripping never splits it, and whitespace is trimmed after every step.
var cleanupChain = []Transform{
	StripGenerationTag,
	StripMarkdownEmphasis,
	StripMarkdownHeadings,
	StripListMarkers,
}

// Clean runs the full cleanup chain over generated text.
func Clean(s string) string {
	for _, transform := range cleanupChain {
		s = strings.TrimSpace(transform(s))
	}
	return s
}
