package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
)

// SearchEntry represents a single searchable page in the site index.
type SearchEntry struct {
	Path    string `json:"path"`
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// maxIndexedContent caps how much body text each entry carries. The index is
// fetched by every page load, so it has to stay small.
const maxIndexedContent = 2000

// BuildSearchIndex creates a client-side search index from the corpus.
func BuildSearchIndex(docs []*content.Document) []SearchEntry {
	entries := make([]SearchEntry, 0, len(docs))

	for _, doc := range docs {
		body := plainText(doc.Body)
		if len(body) > maxIndexedContent {
			body = body[:maxIndexedContent]
		}

		summary := doc.Description()
		if summary == "" {
			summary = firstParagraph(doc.Body)
		}

		entries = append(entries, SearchEntry{
			Path:    htmlRelPath(doc.RelPath),
			Topic:   doc.Slug,
			Title:   doc.Title(),
			Summary: summary,
			Content: body,
		})
	}

	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// firstParagraph returns the first non-heading, non-empty line of markdown.
func firstParagraph(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

// plainText flattens markdown into a single searchable line. Headings keep
// their text, markup characters are dropped.
func plainText(body string) string {
	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "---" {
			continue
		}
		line = strings.TrimLeft(line, "#> ")
		line = strings.ReplaceAll(line, "`", "")
		line = strings.ReplaceAll(line, "**", "")
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
