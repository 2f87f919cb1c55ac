package content

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a single content page parsed from the corpus.
type Document struct {
	Path        string            // Absolute path on disk.
	RelPath     string            // Path relative to the content root.
	Slug        string            // Topic slug derived from RelPath.
	FrontMatter map[string]string // Parsed YAML front matter.
	Body        string            // Markdown body without front matter.
	Raw         string            // Full file content.
	ContentHash string            // SHA-256 hex digest of the file content.
}

// Title returns the page title: the front matter title if present, otherwise
// the first H1 heading, otherwise the file stem.
func (d *Document) Title() string {
	if t := d.FrontMatter["title"]; t != "" {
		return t
	}
	for _, line := range strings.Split(d.Body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(d.RelPath), filepath.Ext(d.RelPath))
}

// Description returns the front matter description, if any.
func (d *Document) Description() string {
	return d.FrontMatter["description"]
}

// ParseFrontMatter splits raw content into front matter metadata and body.
// Content without a leading --- block is returned unchanged with nil metadata.
func ParseFrontMatter(raw string) (map[string]string, string, error) {
	if !strings.HasPrefix(raw, "---") {
		return nil, raw, nil
	}

	parts := strings.SplitN(raw, "---", 3)
	if len(parts) < 3 {
		return nil, raw, nil
	}

	var meta map[string]string
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return nil, "", fmt.Errorf("parsing front matter: %w", err)
	}

	return meta, strings.TrimLeft(parts[2], "\n"), nil
}

// Slugify converts a relative content path into a topic slug. Directory
// separators become underscores and the extension is dropped, so
// "angular/angular-cli.mdx" becomes "angular_angular-cli".
func Slugify(relPath string) string {
	p := filepath.ToSlash(relPath)
	p = strings.TrimSuffix(p, filepath.Ext(p))
	return strings.ReplaceAll(p, "/", "_")
}

// Link is a hyperlink extracted from a document body.
type Link struct {
	Text string
	URL  string
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	htmlLinkRe     = regexp.MustCompile(`<a\s+[^>]*href=["']([^"']*)["'][^>]*>(.*?)</a>`)
)

// ExtractLinks returns all markdown and HTML links found in the body.
func ExtractLinks(body string) []Link {
	var links []Link
	for _, m := range markdownLinkRe.FindAllStringSubmatch(body, -1) {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	for _, m := range htmlLinkRe.FindAllStringSubmatch(body, -1) {
		links = append(links, Link{Text: m[2], URL: m[1]})
	}
	return links
}
