package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MigrateResult reports the outcome of a layout migration run.
type MigrateResult struct {
	Scanned   int      // Files inspected.
	Rewritten []string // Relative paths of files that changed.
}

// MigrateLayout rewrites a fixed front-matter string across every .mdx file
// under dir. Files that do not contain the from string are left untouched.
func MigrateLayout(dir, from, to string) (*MigrateResult, error) {
	if from == "" {
		return nil, fmt.Errorf("migrate: from string is required")
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("migrate: resolve dir: %w", err)
	}

	docs, err := Walk(CorpusConfig{RootDir: root, Include: []string{"**/*.mdx"}})
	if err != nil {
		return nil, err
	}

	result := &MigrateResult{}
	for _, doc := range docs {
		result.Scanned++
		if !strings.Contains(doc.Raw, from) {
			continue
		}

		updated := strings.ReplaceAll(doc.Raw, from, to)
		if err := os.WriteFile(doc.Path, []byte(updated), 0o644); err != nil {
			return nil, fmt.Errorf("migrate: writing %s: %w", doc.RelPath, err)
		}
		result.Rewritten = append(result.Rewritten, doc.RelPath)
	}

	return result, nil
}
