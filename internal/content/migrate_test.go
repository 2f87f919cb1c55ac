package content

import (
	"os"
	"path/filepath"
	"testing"
)

const oldLayout = "layout: ../../layouts/QALayout.astro"
const newLayout = "layout: ../../layouts/QAPageLayout.astro"

func TestMigrateLayoutRewritesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "angular/cli.mdx", "---\ntitle: CLI\n"+oldLayout+"\n---\n\nBody.\n")
	writeFile(t, dir, "dotnet/efcore.mdx", "---\ntitle: EF Core\n"+newLayout+"\n---\n\nBody.\n")

	result, err := MigrateLayout(dir, oldLayout, newLayout)
	if err != nil {
		t.Fatalf("MigrateLayout: %v", err)
	}

	if result.Scanned != 2 {
		t.Errorf("Scanned = %d, want 2", result.Scanned)
	}
	if len(result.Rewritten) != 1 || result.Rewritten[0] != "angular/cli.mdx" {
		t.Errorf("Rewritten = %v, want [angular/cli.mdx]", result.Rewritten)
	}

	data, err := os.ReadFile(filepath.Join(dir, "angular", "cli.mdx"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	meta, _, err := ParseFrontMatter(string(data))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta["layout"] != "../../layouts/QAPageLayout.astro" {
		t.Errorf("layout = %q, want rewritten value", meta["layout"])
	}
}

func TestMigrateLayoutLeavesUnmatchedFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	original := "---\ntitle: Plain\n---\n\nNo layout here.\n"
	path := writeFile(t, dir, "plain.mdx", original)

	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	result, err := MigrateLayout(dir, oldLayout, newLayout)
	if err != nil {
		t.Fatalf("MigrateLayout: %v", err)
	}
	if len(result.Rewritten) != 0 {
		t.Errorf("Rewritten = %v, want none", result.Rewritten)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unmatched file was rewritten")
	}

	data, _ := os.ReadFile(path)
	if string(data) != original {
		t.Error("unmatched file content changed")
	}
}

func TestMigrateLayoutRequiresFromString(t *testing.T) {
	if _, err := MigrateLayout(t.TempDir(), "", "x"); err == nil {
		t.Error("expected error for empty from string")
	}
}

func TestMigrateLayoutIgnoresNonMDX(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", oldLayout)

	result, err := MigrateLayout(dir, oldLayout, newLayout)
	if err != nil {
		t.Fatalf("MigrateLayout: %v", err)
	}
	if result.Scanned != 0 {
		t.Errorf("Scanned = %d, want 0 (.md files are out of scope)", result.Scanned)
	}
}
