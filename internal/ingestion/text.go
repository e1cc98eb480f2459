// Package ingestion turns input files into clean plain text the parser can
// consume: line-ending and whitespace normalization for text files, body
// extraction for postings pasted or saved as HTML.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var blankRunsRe = regexp.MustCompile(`\n\n\n+`)
var innerSpaceRe = regexp.MustCompile(`\s+`)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// Reduce 3+ consecutive blank lines to a single blank line
	result = blankRunsRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Preserve markdown headings, normalize leading spaces to 0
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists with their indentation
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse internal runs of whitespace, keep indentation
	leadingSpace := len(line) - len(trimmed)
	content := innerSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// IngestFromFile reads a résumé or posting file, extracts text if the
// content is HTML, cleans it, and returns the cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	if LooksLikeHTML(text) {
		extracted, err := ExtractHTMLText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract HTML text: %w", err)
		}
		text = extracted
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned), nil
}
