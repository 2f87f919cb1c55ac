package content

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMaxFileSize is the maximum content file size to process (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// DefaultExcludeDirs are directory names skipped during traversal.
var DefaultExcludeDirs = []string{
	".git",
	"node_modules",
	"dist",
	"build",
	".next",
	".interviewhelper",
}

// CorpusConfig controls the behaviour of the Walk function.
type CorpusConfig struct {
	RootDir     string   // Root content directory.
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses the content directory and returns every parsed document
// that passes filtering, ordered by relative path.
func Walk(config CorpusConfig) ([]*Document, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("content: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	include := config.Include
	if len(include) == 0 {
		include = []string{"**/*.mdx", "**/*.md"}
	}

	var docs []*Document

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !matchesAny(relPath, include) {
			return nil
		}
		if matchesAny(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		doc, err := readDocument(path, filepath.ToSlash(relPath))
		if err != nil {
			return fmt.Errorf("content: %s: %w", relPath, err)
		}
		docs = append(docs, doc)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// readDocument loads and parses a single content file.
func readDocument(path, relPath string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := string(data)
	meta, body, err := ParseFrontMatter(raw)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = map[string]string{}
	}

	sum := sha256.Sum256(data)

	return &Document{
		Path:        path,
		RelPath:     relPath,
		Slug:        Slugify(relPath),
		FrontMatter: meta,
		Body:        body,
		Raw:         raw,
		ContentHash: hex.EncodeToString(sum[:]),
	}, nil
}

// shouldExcludeDir checks whether a directory name matches any default
// exclusion. This is used during traversal to skip entire subtrees.
func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludeDirs {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also matches bare filenames.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
