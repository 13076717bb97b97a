// Package testdata provides a small, complete reference dataset and a corpus
// of labeled pairs for classification tests.
package testdata

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

//go:embed love_params.csv centroids.json mapping.json copy.json
var files embed.FS

//go:embed corpus.json
var corpusJSON []byte

// Files lists the reference data files written by WriteDir.
var Files = []string{"love_params.csv", "centroids.json", "mapping.json", "copy.json"}

// CorpusEntry is a labeled type pair with its expected classification.
type CorpusEntry struct {
	TypeA              string `json:"type_a"`
	TypeB              string `json:"type_b"`
	ExpectedMacro      string `json:"expected_macro"`
	ExpectedSecond     string `json:"expected_second"` // "" when not a hybrid
	ExpectedQuadrant   string `json:"expected_quadrant"`
	ExpectedMicro      string `json:"expected_micro"`
	ExpectedConfidence int    `json:"expected_confidence"`
	Description        string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}

// File returns the contents of one embedded reference file.
func File(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// WriteDir writes the named reference files (all of Files when none are
// given) into dir.
func WriteDir(dir string, names ...string) error {
	if len(names) == 0 {
		names = Files
	}
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("testdata: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("testdata: %w", err)
		}
	}
	return nil
}
