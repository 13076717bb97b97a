package model

import "sort"

// AttributeRow is one row of the attribute table: raw values for a type.
type AttributeRow struct {
	Name        string
	Empathy     int
	Harmony     int
	Dependency  int
	Stimulation int
	Trust       int
}

// AttributeTable holds rows in file order. Duplicate names are kept.
type AttributeTable struct {
	Rows  []AttributeRow
	index map[string]int
}

// NewAttributeTable indexes rows by name; the first row of a name wins.
func NewAttributeTable(rows []AttributeRow) *AttributeTable {
	idx := make(map[string]int, len(rows))
	for i, r := range rows {
		if _, ok := idx[r.Name]; !ok {
			idx[r.Name] = i
		}
	}
	return &AttributeTable{Rows: rows, index: idx}
}

// Lookup finds a row by exact name.
func (t *AttributeTable) Lookup(name string) (AttributeRow, bool) {
	i, ok := t.index[name]
	if !ok {
		return AttributeRow{}, false
	}
	return t.Rows[i], true
}

// Names lists type names in file order, duplicates included.
func (t *AttributeTable) Names() []string {
	names := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		names[i] = r.Name
	}
	return names
}

// CopyEntry is descriptive text for a micro-type.
type CopyEntry struct {
	Catch string `json:"catch"`
	Body  string `json:"body"`
}

// CopyBook maps micro-type names to their copy.
type CopyBook map[string]CopyEntry

// Entry returns the copy for micro, or empty strings when absent.
func (b CopyBook) Entry(micro string) CopyEntry {
	return b[micro]
}

// KnownTypes returns every micro-type name with copy, sorted.
func (b CopyBook) KnownTypes() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Weights scale each axis in the centroid distance.
type Weights struct {
	Dyn   float64 `koanf:"w_dyn" json:"w_dyn"`
	Sta   float64 `koanf:"w_sta" json:"w_sta"`
	Bond  float64 `koanf:"w_bond" json:"w_bond"`
	Trust float64 `koanf:"w_trust" json:"w_trust"`
}

// Constants are the tunable classification parameters.
type Constants struct {
	Weights      Weights `koanf:"weights" json:"weights"`
	TrustHigh    float64 `koanf:"trust_high" json:"trust_high"`
	MarginHybrid float64 `koanf:"margin_hybrid" json:"margin_hybrid"`
	TrustDivisor float64 `koanf:"trust_divisor" json:"trust_divisor"`
}

// DefaultConstants returns the built-in parameter set.
func DefaultConstants() Constants {
	return Constants{
		Weights:      Weights{Dyn: 1.0, Sta: 1.0, Bond: 1.0, Trust: 0.4},
		TrustHigh:    0.55,
		MarginHybrid: 0.06,
		TrustDivisor: 200.0,
	}
}
