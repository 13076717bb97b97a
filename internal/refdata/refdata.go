// Package refdata loads the read-only reference datasets (attribute table,
// centroids, mapping table, copy and constants) from a data directory.
//
// Each dataset is parsed on first access and cached for the lifetime of the
// Store. Concurrent first accesses share one load; a failed load is not
// cached, so a later access retries once the file has been fixed.
package refdata

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hejijunhao/lovetype/internal/metrics"
	"github.com/hejijunhao/lovetype/internal/model"
)

var (
	// ErrMissing reports that no candidate file exists for a required dataset.
	ErrMissing = errors.New("missing reference data")
	// ErrInvalid reports a dataset that exists but cannot be parsed or validated.
	ErrInvalid = errors.New("invalid reference data")
)

// Dataset names, as reported by Health and used in log lines and metrics.
const (
	DatasetParams    = "params"
	DatasetCentroids = "centroids"
	DatasetMapping   = "mapping"
	DatasetCopy      = "copy"
	DatasetConstants = "constants"
)

// Candidate file names per dataset, probed in order.
var fileCandidates = map[string][]string{
	DatasetParams:    {"love_params.csv"},
	DatasetCentroids: {"centroids.json", "Centroids.json"},
	DatasetMapping:   {"mapping.json", "Mapping.json"},
	DatasetCopy:      {"copy.json", "Copy.json"},
	DatasetConstants: {"constants.json", "Constants.json"},
}

// healthDatasets are the datasets reported by Health, in report order.
var healthDatasets = []string{DatasetParams, DatasetCentroids, DatasetMapping, DatasetCopy}

// Store is a lazily loaded, process-lifetime cache of the reference datasets.
// Safe for concurrent use.
type Store struct {
	dir    string
	logger *slog.Logger
	group  singleflight.Group

	attributes cached[*model.AttributeTable]
	centroids  cached[[]model.Centroid]
	mapping    cached[model.MappingTable]
	copybook   cached[model.CopyBook]
	constants  cached[model.Constants]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load events. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a Store reading from dir. Nothing is read until first access.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Attributes returns the attribute table.
func (s *Store) Attributes() (*model.AttributeTable, error) {
	return load(s, DatasetParams, &s.attributes, s.loadAttributes)
}

// Centroids returns the centroids in file order.
func (s *Store) Centroids() ([]model.Centroid, error) {
	return load(s, DatasetCentroids, &s.centroids, s.loadCentroids)
}

// Mapping returns the macro × quadrant → micro-type table.
func (s *Store) Mapping() (model.MappingTable, error) {
	return load(s, DatasetMapping, &s.mapping, s.loadMapping)
}

// Copy returns the copy book. A missing copy file yields an empty book.
func (s *Store) Copy() (model.CopyBook, error) {
	return load(s, DatasetCopy, &s.copybook, s.loadCopy)
}

// Constants returns the classification parameters, defaults merged with the
// optional constants file. Never fails.
func (s *Store) Constants() (model.Constants, error) {
	return load(s, DatasetConstants, &s.constants, s.loadConstants)
}

// Types lists the attribute table's type names in file order. An absent
// table yields an empty list rather than ErrMissing.
func (s *Store) Types() ([]string, error) {
	tbl, err := s.Attributes()
	if errors.Is(err, ErrMissing) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return tbl.Names(), nil
}

// Health reports "ok" or "missing" per dataset by probing file names only.
func (s *Store) Health() map[string]string {
	status := make(map[string]string, len(healthDatasets))
	for _, ds := range healthDatasets {
		if s.find(ds) != "" {
			status[ds] = "ok"
		} else {
			status[ds] = "missing"
		}
	}
	return status
}

// HealthDatasets returns the dataset names reported by Health, in order.
func HealthDatasets() []string {
	return append([]string(nil), healthDatasets...)
}

// find returns the first existing candidate path for dataset, or "".
func (s *Store) find(dataset string) string {
	for _, name := range fileCandidates[dataset] {
		p := filepath.Join(s.dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// require is find for mandatory datasets.
func (s *Store) require(dataset string) (string, error) {
	p := s.find(dataset)
	if p == "" {
		return "", fmt.Errorf("%w: %s not found in %s", ErrMissing, fileCandidates[dataset][0], s.dir)
	}
	return p, nil
}

// cached holds one dataset snapshot once it has loaded successfully.
type cached[T any] struct {
	mu     sync.RWMutex
	loaded bool
	val    T
}

func (c *cached[T]) get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val, c.loaded
}

func (c *cached[T]) set(v T) {
	c.mu.Lock()
	c.val = v
	c.loaded = true
	c.mu.Unlock()
}

// load returns the cached snapshot or runs fn once across concurrent callers.
func load[T any](s *Store, dataset string, c *cached[T], fn func() (T, error)) (T, error) {
	if v, ok := c.get(); ok {
		return v, nil
	}
	v, err, _ := s.group.Do(dataset, func() (any, error) {
		if v, ok := c.get(); ok {
			return v, nil
		}
		v, err := fn()
		metrics.RecordReferenceLoad(dataset, loadResult(err))
		if err != nil {
			s.logger.Warn("reference data load failed", "dataset", dataset, "dir", s.dir, "error", err)
			return nil, err
		}
		c.set(v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func loadResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissing):
		return "missing"
	default:
		return "invalid"
	}
}
