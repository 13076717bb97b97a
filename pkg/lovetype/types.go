package lovetype

import "github.com/hejijunhao/lovetype/internal/model"

// Result is the classification of one pair. Its JSON form is the public wire
// contract, Japanese keys included.
type Result = model.Result

// Pair is an ordered pair of type names.
type Pair = model.Pair

// Quadrant is the dyn/sta × trust cell a pair falls in: A, B, C or D.
type Quadrant = model.Quadrant

// Result parts.
type (
	Scores    = model.Scores
	Ratios    = model.Ratios
	Macro     = model.Macro
	Candidate = model.Candidate
	Micro     = model.Micro
	Copy      = model.Copy
)
