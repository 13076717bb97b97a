package engine

import (
	"errors"

	"github.com/hejijunhao/lovetype/internal/engine/classifier"
	"github.com/hejijunhao/lovetype/internal/engine/projection"
	"github.com/hejijunhao/lovetype/internal/engine/scorer"
	"github.com/hejijunhao/lovetype/internal/engine/taxonomy"
	"github.com/hejijunhao/lovetype/internal/metrics"
	"github.com/hejijunhao/lovetype/internal/model"
	"github.com/hejijunhao/lovetype/internal/refdata"
)

// Reference supplies the reference datasets a classification reads.
// *refdata.Store satisfies it.
type Reference interface {
	Attributes() (*model.AttributeTable, error)
	Centroids() ([]model.Centroid, error)
	Mapping() (model.MappingTable, error)
	Copy() (model.CopyBook, error)
	Constants() (model.Constants, error)
	Types() ([]string, error)
	Health() map[string]string
}

// Engine orchestrates the score → project → match → resolve pipeline.
type Engine struct {
	ref Reference
}

// New creates an Engine over the given reference data.
func New(ref Reference) *Engine {
	return &Engine{ref: ref}
}

// Classify computes the compatibility result for a pair of types.
func (e *Engine) Classify(typeA, typeB string) (model.Result, error) {
	res, err := e.classify(typeA, typeB)
	if err != nil {
		metrics.RecordClassificationError(errorKind(err))
		return model.Result{}, err
	}
	metrics.RecordClassification(res.Macro.Top, res.Macro.Second != nil, res.Confidence)
	return res, nil
}

func (e *Engine) classify(typeA, typeB string) (model.Result, error) {
	consts, err := e.ref.Constants()
	if err != nil {
		return model.Result{}, err
	}
	table, err := e.ref.Attributes()
	if err != nil {
		return model.Result{}, err
	}
	centroids, err := e.ref.Centroids()
	if err != nil {
		return model.Result{}, err
	}
	mapping, err := e.ref.Mapping()
	if err != nil {
		return model.Result{}, err
	}
	book, err := e.ref.Copy()
	if err != nil {
		return model.Result{}, err
	}

	sa, err := scorer.Score(table, typeA)
	if err != nil {
		return model.Result{}, err
	}
	sb, err := scorer.Score(table, typeB)
	if err != nil {
		return model.Result{}, err
	}
	total := scorer.Combine(sa, sb)
	point := projection.Project(total, consts.TrustDivisor)

	cls := classifier.New(consts.Weights, consts.MarginHybrid)
	match, err := cls.Match(point, centroids)
	if err != nil {
		return model.Result{}, err
	}

	top := match.Top()
	quadrant := taxonomy.ResolveQuadrant(point, consts.TrustHigh)
	micro, err := taxonomy.ResolveMicroType(mapping, top.Name, quadrant)
	if err != nil {
		return model.Result{}, err
	}

	var second *string
	if name, ok := match.Second(); ok {
		second = &name
	}
	entry := book.Entry(micro)

	return model.Result{
		Scores: total,
		Ratios: point.Ratios(),
		Macro: model.Macro{
			Top:        top.Name,
			Second:     second,
			Margin:     projection.Round(match.Margin, 6),
			Candidates: match.Candidates(),
		},
		Micro:      model.Micro{Quadrant: quadrant, Type: micro},
		Copy:       model.Copy{Catch: entry.Catch, Body: entry.Body},
		Confidence: classifier.Confidence(top.Distance, match.Margin),
		KnownTypes: book.KnownTypes(),
	}, nil
}

// ClassifyBatch classifies each pair in order. It stops at the first error.
func (e *Engine) ClassifyBatch(pairs []model.Pair) ([]model.Result, error) {
	results := make([]model.Result, 0, len(pairs))
	for _, p := range pairs {
		res, err := e.Classify(p.A, p.B)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Types lists the type names in the attribute table.
func (e *Engine) Types() ([]string, error) {
	return e.ref.Types()
}

// Health reports per-dataset presence.
func (e *Engine) Health() map[string]string {
	return e.ref.Health()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, scorer.ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, taxonomy.ErrMissingMapping):
		return "missing_mapping"
	case errors.Is(err, refdata.ErrMissing):
		return "missing_data"
	case errors.Is(err, refdata.ErrInvalid), errors.Is(err, classifier.ErrTooFewCentroids):
		return "invalid_data"
	default:
		return "other"
	}
}
