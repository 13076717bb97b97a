package model

// Pair is a classification request: two type identifiers from the
// attribute table.
type Pair struct {
	A string `json:"typeA"`
	B string `json:"typeB"`
}
