package taxonomy

import (
	"errors"
	"fmt"

	"github.com/hejijunhao/lovetype/internal/model"
)

// ErrMissingMapping is returned when the mapping table has no micro type for
// a macro category and quadrant.
var ErrMissingMapping = errors.New("mapping missing")

// ResolveQuadrant places a projected point in one of four quadrants. Both
// comparisons are inclusive: dyn == sta counts as dynamic and
// trust == trustHigh counts as high trust.
func ResolveQuadrant(p model.Point, trustHigh float64) model.Quadrant {
	dynamic := p.Dyn >= p.Sta
	trusting := p.Trust >= trustHigh
	switch {
	case dynamic && trusting:
		return model.QuadrantA
	case dynamic:
		return model.QuadrantB
	case trusting:
		return model.QuadrantC
	default:
		return model.QuadrantD
	}
}

// ResolveMicroType looks up the micro type for a macro category and quadrant.
func ResolveMicroType(mapping model.MappingTable, macro string, q model.Quadrant) (string, error) {
	name, ok := mapping.Lookup(macro, q)
	if !ok {
		return "", fmt.Errorf("%w: %s-%s", ErrMissingMapping, macro, q)
	}
	return name, nil
}
