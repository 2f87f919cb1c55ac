package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImportResult summarizes an import run over a questions directory.
type ImportResult struct {
	Files    int      // JSON files read.
	Imported []string // Topics inserted or updated.
	Skipped  []string // Topics left untouched because the data was identical.
}

// ReadSetFile parses a generated questions file: a JSON array of questions.
func ReadSetFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return questions, nil
}

// ImportDir loads every *.json file in dir into the store. The topic slug is
// the file stem, mirroring how the generator names its output.
func ImportDir(ctx context.Context, store *Store, dir string) (*ImportResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading questions dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	result := &ImportResult{}
	for _, path := range paths {
		questions, err := ReadSetFile(path)
		if err != nil {
			return nil, err
		}
		result.Files++

		filename := filepath.Base(path)
		topic := strings.TrimSuffix(filename, ".json")

		changed, err := store.Upsert(ctx, topic, questions, filename)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", topic, err)
		}
		if changed {
			result.Imported = append(result.Imported, topic)
		} else {
			result.Skipped = append(result.Skipped, topic)
		}
	}

	return result, nil
}
