package model

import "fmt"

// Quadrant is one of the four cells of the dyn/sta × trust decision table.
type Quadrant int

const (
	QuadrantA Quadrant = iota // dyn >= sta, trust high
	QuadrantB                 // dyn >= sta, trust low
	QuadrantC                 // dyn < sta, trust high
	QuadrantD                 // dyn < sta, trust low
)

var quadrantNames = [...]string{"A", "B", "C", "D"}

func (q Quadrant) String() string {
	if q < QuadrantA || q > QuadrantD {
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
	return quadrantNames[q]
}

// ParseQuadrant converts "A".."D" to a Quadrant.
func ParseQuadrant(s string) (Quadrant, error) {
	for i, name := range quadrantNames {
		if s == name {
			return Quadrant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quadrant %q", s)
}

func (q Quadrant) MarshalText() ([]byte, error) {
	if q < QuadrantA || q > QuadrantD {
		return nil, fmt.Errorf("invalid quadrant %d", int(q))
	}
	return []byte(quadrantNames[q]), nil
}

func (q *Quadrant) UnmarshalText(b []byte) error {
	v, err := ParseQuadrant(string(b))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// Point is a location in ratio space.
type Point struct {
	Dyn   float64 `json:"dyn"`
	Sta   float64 `json:"sta"`
	Bond  float64 `json:"bond"`
	Trust float64 `json:"trust"`
}

// Ratios returns the wire form of the point.
func (p Point) Ratios() Ratios {
	return Ratios{Dyn: p.Dyn, Sta: p.Sta, Bond: p.Bond, Trust: p.Trust}
}

// Centroid is the prototype point of a macro-category.
type Centroid struct {
	Name string
	Point
}

// MappingTable resolves (macro, quadrant) to a micro-type name.
type MappingTable map[string]map[Quadrant]string

// Lookup returns the micro-type for the pair. Empty names count as absent.
func (m MappingTable) Lookup(macro string, q Quadrant) (string, bool) {
	micro := m[macro][q]
	return micro, micro != ""
}
