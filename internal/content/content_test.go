package content

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const samplePage = `---
title: Angular CLI
description: Common Angular CLI interview questions
layout: qa
---

# Angular CLI

**What is the Angular CLI?**

The [Angular CLI](https://angular.dev/tools/cli) is a command-line interface tool.
`

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter(samplePage)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta["title"] != "Angular CLI" {
		t.Errorf("title = %q, want %q", meta["title"], "Angular CLI")
	}
	if meta["layout"] != "qa" {
		t.Errorf("layout = %q, want %q", meta["layout"], "qa")
	}
	if body == "" || body[0] != '#' {
		t.Errorf("body should start at the H1 heading, got %q", body[:min(len(body), 20)])
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	meta, body, err := ParseFrontMatter("# Just a heading\n")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != "# Just a heading\n" {
		t.Errorf("body altered: %q", body)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"angular/angular-cli.mdx", "angular_angular-cli"},
		{"dotnet/ef-core.md", "dotnet_ef-core"},
		{"index.mdx", "index"},
		{"a/b/c.mdx", "a_b_c"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractLinks(t *testing.T) {
	body := `See [the docs](https://example.com/docs) and <a href="/login">log in</a>.`
	links := ExtractLinks(body)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0].Text != "the docs" || links[0].URL != "https://example.com/docs" {
		t.Errorf("markdown link = %+v", links[0])
	}
	if links[1].Text != "log in" || links[1].URL != "/login" {
		t.Errorf("html link = %+v", links[1])
	}
}

func TestWalkParsesDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "angular/angular-cli.mdx", samplePage)
	writeFile(t, dir, "javascript/closures.mdx", "---\ntitle: Closures\n---\n\nBody.\n")
	writeFile(t, dir, "notes.txt", "not content")

	docs, err := Walk(CorpusConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}

	byslug := map[string]*Document{}
	for _, d := range docs {
		byslug[d.Slug] = d
	}

	doc := byslug["angular_angular-cli"]
	if doc == nil {
		t.Fatal("missing angular_angular-cli document")
	}
	if doc.Title() != "Angular CLI" {
		t.Errorf("Title = %q, want %q", doc.Title(), "Angular CLI")
	}
	if doc.ContentHash == "" {
		t.Error("ContentHash empty")
	}
}

func TestWalkRespectsExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.mdx", "# Keep\n")
	writeFile(t, dir, "skip.draft.mdx", "# Skip\n")
	writeFile(t, dir, "node_modules/dep/readme.mdx", "# Dep\n")

	docs, err := Walk(CorpusConfig{RootDir: dir, Exclude: []string{"*.draft.mdx"}})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(docs))
	}
	if docs[0].Slug != "keep" {
		t.Errorf("Slug = %q, want keep", docs[0].Slug)
	}
}

func TestWalkSkipsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.mdx", "# Big\n"+string(make([]byte, 100)))
	writeFile(t, dir, "small.mdx", "# Small\n")

	docs, err := Walk(CorpusConfig{RootDir: dir, MaxFileSize: 50})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(docs) != 1 || docs[0].Slug != "small" {
		t.Fatalf("expected only small.mdx, got %d docs", len(docs))
	}
}
