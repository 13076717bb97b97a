package scorer

import (
	"errors"
	"fmt"

	"github.com/hejijunhao/lovetype/internal/model"
)

// ErrUnknownType is returned when a type has no row in the attribute table.
var ErrUnknownType = errors.New("unknown type")

// pointsPerUnit scales raw attribute values into point scores.
const pointsPerUnit = 10

// Score looks up a type's raw attributes and scales them into points.
func Score(table *model.AttributeTable, name string) (model.Scores, error) {
	row, ok := table.Lookup(name)
	if !ok {
		return model.Scores{}, fmt.Errorf("%w: type %q not found in attribute table", ErrUnknownType, name)
	}
	return model.Scores{
		Empathy:     row.Empathy * pointsPerUnit,
		Harmony:     row.Harmony * pointsPerUnit,
		Dependency:  row.Dependency * pointsPerUnit,
		Stimulation: row.Stimulation * pointsPerUnit,
		Trust:       row.Trust * pointsPerUnit,
	}, nil
}

// Combine sums two score sets attribute by attribute.
func Combine(a, b model.Scores) model.Scores {
	return model.Scores{
		Empathy:     a.Empathy + b.Empathy,
		Harmony:     a.Harmony + b.Harmony,
		Dependency:  a.Dependency + b.Dependency,
		Stimulation: a.Stimulation + b.Stimulation,
		Trust:       a.Trust + b.Trust,
	}
}
