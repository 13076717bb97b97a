package lovetype

import (
	"errors"
	"fmt"

	"github.com/hejijunhao/lovetype/internal/engine"
	"github.com/hejijunhao/lovetype/internal/refdata"
)

// Lovetype is a pair compatibility classifier over one reference data
// directory. Safe for concurrent use.
type Lovetype struct {
	engine *engine.Engine
	store  *refdata.Store
}

// New creates a Lovetype instance. No files are read until the first call
// that needs them.
func New(opts ...Option) (*Lovetype, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.dataDir == "" {
		return nil, errors.New("lovetype: data dir is empty")
	}

	store := refdata.New(o.dataDir, refdata.WithLogger(o.logger))
	return &Lovetype{engine: engine.New(store), store: store}, nil
}

// DataDir returns the reference data directory.
func (l *Lovetype) DataDir() string {
	return l.store.Dir()
}

// Classify classifies an ordered pair of type names.
func (l *Lovetype) Classify(typeA, typeB string) (Result, error) {
	return l.engine.Classify(typeA, typeB)
}

// ClassifyBatch classifies each pair in order and stops at the first error.
func (l *Lovetype) ClassifyBatch(pairs []Pair) ([]Result, error) {
	return l.engine.ClassifyBatch(pairs)
}

// Types lists the type names in the attribute table in file order. A missing
// table yields an empty list.
func (l *Lovetype) Types() ([]string, error) {
	return l.engine.Types()
}

// AllPairs returns every ordered pair of the attribute table's type names.
// See PairsOf.
func (l *Lovetype) AllPairs() ([]Pair, error) {
	types, err := l.Types()
	if err != nil {
		return nil, err
	}
	return PairsOf(types), nil
}

// PairsOf returns every ordered pair of distinct names, self-pairs
// included, in input order. Repeated names contribute one entry.
func PairsOf(types []string) []Pair {
	seen := make(map[string]bool, len(types))
	names := types[:0:0]
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			names = append(names, t)
		}
	}
	pairs := make([]Pair, 0, len(names)*len(names))
	for _, a := range names {
		for _, b := range names {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs
}

// Health reports "ok" or "missing" for each reference dataset without
// parsing any file.
func (l *Lovetype) Health() map[string]string {
	return l.engine.Health()
}

// Preload reads and validates every reference dataset up front. It returns
// all load failures joined.
func (l *Lovetype) Preload() error {
	var errs []error
	if _, err := l.store.Constants(); err != nil {
		errs = append(errs, err)
	}
	if _, err := l.store.Attributes(); err != nil {
		errs = append(errs, err)
	}
	if _, err := l.store.Centroids(); err != nil {
		errs = append(errs, err)
	}
	if _, err := l.store.Mapping(); err != nil {
		errs = append(errs, err)
	}
	if _, err := l.store.Copy(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("lovetype: preload: %w", err)
	}
	return nil
}
