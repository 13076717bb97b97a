package refdata

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/hejijunhao/lovetype/internal/model"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// readJSON reads a JSON dataset file, tolerating a leading UTF-8 BOM.
func readJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

func (s *Store) loadCentroids() ([]model.Centroid, error) {
	path, err := s.require(DatasetCentroids)
	if err != nil {
		return nil, err
	}
	data, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	cs, err := ParseCentroids(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	s.logger.Info("reference data loaded", "dataset", DatasetCentroids, "path", path, "centroids", len(cs))
	return cs, nil
}

// ParseCentroids decodes {"name": {"dyn","sta","bond","trust"}} keeping the
// object's key order, which is the tie-break order for equal distances.
func ParseCentroids(data []byte) ([]model.Centroid, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var out []model.Centroid
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := tok.(string)
		var raw struct {
			Dyn   *float64 `json:"dyn"`
			Sta   *float64 `json:"sta"`
			Bond  *float64 `json:"bond"`
			Trust *float64 `json:"trust"`
		}
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("centroid %q: %w", name, err)
		}
		if raw.Dyn == nil || raw.Sta == nil || raw.Bond == nil || raw.Trust == nil {
			return nil, fmt.Errorf("centroid %q: dyn, sta, bond and trust are required", name)
		}
		c := model.Centroid{
			Name:  name,
			Point: model.Point{Dyn: *raw.Dyn, Sta: *raw.Sta, Bond: *raw.Bond, Trust: *raw.Trust},
		}
		// A repeated key keeps its first position and its last value.
		if i, dup := seen[name]; dup {
			out[i] = c
			continue
		}
		seen[name] = len(out)
		out = append(out, c)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after centroids object")
	}
	return out, nil
}

func expectDelim(dec *stdjson.Decoder, want stdjson.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(stdjson.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func (s *Store) loadMapping() (model.MappingTable, error) {
	path, err := s.require(DatasetMapping)
	if err != nil {
		return nil, err
	}
	data, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	s.logger.Info("reference data loaded", "dataset", DatasetMapping, "path", path, "macros", len(m))
	return m, nil
}

// ParseMapping decodes {"macro": {"A": "micro", ...}}.
func ParseMapping(data []byte) (model.MappingTable, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	m := make(model.MappingTable, len(raw))
	for macro, quads := range raw {
		row := make(map[model.Quadrant]string, len(quads))
		for label, micro := range quads {
			q, err := model.ParseQuadrant(label)
			if err != nil {
				return nil, fmt.Errorf("macro %q: %w", macro, err)
			}
			row[q] = micro
		}
		m[macro] = row
	}
	return m, nil
}

func (s *Store) loadCopy() (model.CopyBook, error) {
	path := s.find(DatasetCopy)
	if path == "" {
		s.logger.Info("copy dataset absent, continuing without copy", "dir", s.dir)
		return model.CopyBook{}, nil
	}
	data, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	var book model.CopyBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	if book == nil {
		book = model.CopyBook{}
	}
	s.logger.Info("reference data loaded", "dataset", DatasetCopy, "path", path, "entries", len(book))
	return book, nil
}
