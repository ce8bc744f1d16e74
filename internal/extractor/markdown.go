package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	blankLinePattern  = regexp.MustCompile(`\n\s*\n`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Markdown heading heuristic bounds. A short paragraph with no period and at
// most this many words is promoted to a level-2 heading.
const (
	headingMaxChars = 60
	headingMaxWords = 6
)

// ConvertToMarkdown renders raw document text as approximate markdown. It is
// a pure function: whitespace is normalized within paragraphs, blank-line
// boundaries split paragraphs, and short sentence-free paragraphs become
// headings. The heuristic is lossy; it exists to seed question generation,
// not to recover document structure.
func ConvertToMarkdown(rawText, fileName string) string {
	if strings.TrimSpace(rawText) == "" {
		return fmt.Sprintf("# %s\n\n*No content extracted*", fileName)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n\n", fileName)

	for _, paragraph := range splitParagraphs(rawText) {
		if isHeading(paragraph) {
			fmt.Fprintf(&builder, "## %s\n\n", paragraph)
		} else {
			fmt.Fprintf(&builder, "%s\n\n", paragraph)
		}
	}
	return builder.String()
}

// splitParagraphs breaks text on blank lines and normalizes whitespace
// inside each paragraph. Fragments of ten characters or fewer are dropped.
func splitParagraphs(text string) []string {
	chunks := blankLinePattern.Split(text, -1)
	paragraphs := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		normalized := strings.TrimSpace(whitespacePattern.ReplaceAllString(chunk, " "))
		if len(normalized) > 10 {
			paragraphs = append(paragraphs, normalized)
		}
	}
	return paragraphs
}

func isHeading(paragraph string) bool {
	return len(paragraph) < headingMaxChars &&
		!strings.Contains(paragraph, ".") &&
		len(strings.Fields(paragraph)) <= headingMaxWords
}
