package model

// Result is the classification output for one pair of types. Field order is
// the wire order; the Japanese keys are part of the public contract.
type Result struct {
	Scores     Scores   `json:"scores"`
	Ratios     Ratios   `json:"ratios"`
	Macro      Macro    `json:"macro"`
	Micro      Micro    `json:"micro"`
	Copy       Copy     `json:"copy"`
	Confidence int      `json:"confidence"`
	KnownTypes []string `json:"known_types"`
}

// Scores are the combined point scores of both types (raw value × 10, summed).
type Scores struct {
	Empathy     int `json:"共感"`
	Harmony     int `json:"調和"`
	Dependency  int `json:"依存"`
	Stimulation int `json:"刺激"`
	Trust       int `json:"信頼"`
}

// Ratios is the wire form of a projected Point.
type Ratios struct {
	Dyn   float64 `json:"動"`
	Sta   float64 `json:"静"`
	Bond  float64 `json:"絆"`
	Trust float64 `json:"信頼"`
}

// Macro describes the nearest-centroid outcome.
type Macro struct {
	Top        string      `json:"top"`
	Second     *string     `json:"second"` // nil unless the match is a hybrid
	Margin     float64     `json:"margin"`
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a ranked centroid with its rounded distance.
type Candidate struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// Micro is the resolved fine-grained type.
type Micro struct {
	Quadrant Quadrant `json:"quadrant"`
	Type     string   `json:"type"`
}

// Copy is the descriptive text attached to a micro-type.
type Copy struct {
	Catch string `json:"catch"`
	Body  string `json:"body"`
}
