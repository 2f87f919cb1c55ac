package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yshashi/InterviewHelper-sub002/internal/content"
)

// Generator converts the content corpus into a static HTML site with the
// quiz, feedback and account widgets wired in.
type Generator struct {
	ContentDir string
	OutputDir  string
	SiteName   string
	Include    []string
	Exclude    []string
}

// NewGenerator creates a Generator with the given directories.
func NewGenerator(contentDir, outputDir, siteName string) *Generator {
	return &Generator{
		ContentDir: contentDir,
		OutputDir:  outputDir,
		SiteName:   siteName,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	SiteName string
	Topic    string // Topic slug for the quiz widget; empty disables it.
	PagePath string // Site-absolute path used by the feedback widget.
	Content  template.HTML
	TreeHTML template.HTML
	BasePath string
}

// Generate builds the full static site. Returns the number of content pages
// rendered; the account pages and index are written on top of that.
func (g *Generator) Generate() (int, error) {
	docs, err := content.Walk(content.CorpusConfig{
		RootDir: g.ContentDir,
		Include: g.Include,
		Exclude: g.Exclude,
	})
	if err != nil {
		return 0, fmt.Errorf("walking content dir: %w", err)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("no content files found in %s", g.ContentDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Sidebar tree over the rendered page paths.
	var htmlPaths []string
	titleMap := make(map[string]string)
	for _, doc := range docs {
		p := htmlRelPath(doc.RelPath)
		htmlPaths = append(htmlPaths, p)
		titleMap[p] = doc.Title()
	}
	tree := BuildTree(htmlPaths, titleMap)

	if err := WriteSearchIndex(BuildSearchIndex(docs), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "app.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	for _, doc := range docs {
		if err := g.renderDoc(md, tmpl, tree, doc); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", doc.RelPath, err)
		}
	}

	if err := g.renderIndex(tmpl, tree, docs); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}
	if err := g.renderAccountPages(tmpl, tree); err != nil {
		return 0, err
	}

	return len(docs), nil
}

// renderDoc converts a single content document into an HTML page.
func (g *Generator) renderDoc(md goldmark.Markdown, tmpl *template.Template, tree *PageTree, doc *content.Document) error {
	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(doc.Body), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	htmlContent := rewriteContentLinks(htmlBuf.String())

	relPath := htmlRelPath(doc.RelPath)
	basePath := basePathFor(relPath)

	data := pageData{
		Title:    doc.Title(),
		SiteName: g.SiteName,
		Topic:    doc.Slug,
		PagePath: "/" + strings.TrimSuffix(relPath, ".html"),
		Content:  template.HTML(htmlContent),
		TreeHTML: template.HTML(tree.ToHTML(relPath, basePath)),
		BasePath: basePath,
	}

	return g.writePage(tmpl, relPath, data)
}

// renderIndex writes the landing page: a topic listing grouped by directory.
func (g *Generator) renderIndex(tmpl *template.Template, tree *PageTree, docs []*content.Document) error {
	var b strings.Builder
	b.WriteString("<h1>" + template.HTMLEscapeString(g.SiteName) + "</h1>\n")
	b.WriteString(`<p class="index-intro">Interview questions and answers, organized by topic. Pick a page to read, then take the quiz at the bottom to check yourself.</p>` + "\n")

	b.WriteString(`<div class="topic-grid">` + "\n")
	for _, section := range tree.Children {
		if !section.IsDir {
			continue
		}
		b.WriteString(`<div class="topic-card"><h2>` + template.HTMLEscapeString(section.Title) + "</h2>\n<ul>\n")
		for _, page := range section.Children {
			if page.IsDir {
				continue
			}
			title := page.Title
			if title == "" {
				title = strings.TrimSuffix(page.Name, ".html")
			}
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`+"\n",
				template.HTMLEscapeString(page.Path), template.HTMLEscapeString(title))
		}
		b.WriteString("</ul></div>\n")
	}
	b.WriteString("</div>\n")

	data := pageData{
		Title:    g.SiteName,
		SiteName: g.SiteName,
		Content:  template.HTML(b.String()),
		TreeHTML: template.HTML(tree.ToHTML("index.html", "")),
	}
	return g.writePage(tmpl, "index.html", data)
}

// renderAccountPages writes the login, register and profile pages. Their
// bodies are static HTML; app.js drives the forms.
func (g *Generator) renderAccountPages(tmpl *template.Template, tree *PageTree) error {
	pages := []struct {
		path  string
		title string
		body  string
	}{
		{"login.html", "Sign in", loginPageContent},
		{"register.html", "Create account", registerPageContent},
		{"profile.html", "Your profile", profilePageContent},
	}

	for _, p := range pages {
		data := pageData{
			Title:    p.title,
			SiteName: g.SiteName,
			Content:  template.HTML(p.body),
			TreeHTML: template.HTML(tree.ToHTML(p.path, "")),
		}
		if err := g.writePage(tmpl, p.path, data); err != nil {
			return fmt.Errorf("rendering %s: %w", p.path, err)
		}
	}
	return nil
}

// writePage executes the page template into OutputDir/relPath.
func (g *Generator) writePage(tmpl *template.Template, relPath string, data pageData) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// htmlRelPath converts a content path to its rendered HTML equivalent.
func htmlRelPath(relPath string) string {
	p := filepath.ToSlash(relPath)
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".html"
}

// basePathFor computes the relative prefix back to the site root.
func basePathFor(relPath string) string {
	depth := strings.Count(filepath.ToSlash(relPath), "/")
	return strings.Repeat("../", depth)
}

// rewriteContentLinks changes .md and .mdx links in rendered HTML to .html so
// cross-references keep working on the generated site.
func rewriteContentLinks(htmlContent string) string {
	result := htmlContent
	for _, ext := range []string{".mdx", ".md"} {
		result = strings.ReplaceAll(result, ext+`"`, `.html"`)
		result = strings.ReplaceAll(result, ext+"#", ".html#")
	}
	return result
}
