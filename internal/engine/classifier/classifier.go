package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hejijunhao/lovetype/internal/engine/projection"
	"github.com/hejijunhao/lovetype/internal/model"
)

// ErrTooFewCentroids is returned when fewer than two centroids are loaded,
// leaving no runner-up to measure a margin against.
var ErrTooFewCentroids = errors.New("at least 2 centroids are required")

// topCandidates is how many ranked centroids a Match reports.
const topCandidates = 3

// Ranked is a centroid with its weighted distance from the point.
type Ranked struct {
	Name     string
	Distance float64
}

// Match is the outcome of ranking a point against all centroids.
type Match struct {
	Ranked []Ranked // every centroid, nearest first
	Margin float64  // runner-up distance minus top distance, full precision
	Hybrid bool     // Margin <= the hybrid threshold
}

// Top returns the nearest centroid.
func (m Match) Top() Ranked {
	return m.Ranked[0]
}

// Second returns the runner-up name when the match is a hybrid.
func (m Match) Second() (string, bool) {
	if !m.Hybrid {
		return "", false
	}
	return m.Ranked[1].Name, true
}

// Candidates returns up to three ranked centroids with distances rounded to
// six decimal places.
func (m Match) Candidates() []model.Candidate {
	n := min(topCandidates, len(m.Ranked))
	out := make([]model.Candidate, n)
	for i, r := range m.Ranked[:n] {
		out[i] = model.Candidate{Name: r.Name, Distance: projection.Round(r.Distance, 6)}
	}
	return out
}

// Classifier ranks projected points against macro-category centroids.
type Classifier struct {
	Weights      model.Weights
	MarginHybrid float64
}

// New creates a Classifier with the given axis weights and hybrid threshold.
func New(weights model.Weights, marginHybrid float64) *Classifier {
	return &Classifier{Weights: weights, MarginHybrid: marginHybrid}
}

// Match ranks every centroid by weighted Euclidean distance from p. Equal
// distances keep the centroids' input order.
func (c *Classifier) Match(p model.Point, centroids []model.Centroid) (Match, error) {
	if len(centroids) < 2 {
		return Match{}, fmt.Errorf("%w, got %d", ErrTooFewCentroids, len(centroids))
	}

	ranked := make([]Ranked, len(centroids))
	for i, cen := range centroids {
		ranked[i] = Ranked{Name: cen.Name, Distance: c.Distance(p, cen.Point)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	margin := ranked[1].Distance - ranked[0].Distance
	return Match{
		Ranked: ranked,
		Margin: margin,
		Hybrid: margin <= c.MarginHybrid,
	}, nil
}

// Distance is the weighted Euclidean distance between two points.
func (c *Classifier) Distance(p, q model.Point) float64 {
	w := c.Weights
	dDyn := p.Dyn - q.Dyn
	dSta := p.Sta - q.Sta
	dBond := p.Bond - q.Bond
	dTrust := p.Trust - q.Trust
	// The conversions stop the compiler from fusing multiply-adds, which
	// would change results in the last bit on some architectures.
	return math.Sqrt(
		float64(w.Dyn*float64(dDyn*dDyn)) +
			float64(w.Sta*float64(dSta*dSta)) +
			float64(w.Bond*float64(dBond*dBond)) +
			float64(w.Trust*float64(dTrust*dTrust)),
	)
}
