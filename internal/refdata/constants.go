package refdata

import (
	"errors"
	"fmt"
	"math"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/hejijunhao/lovetype/internal/model"
)

// loadConstants layers the optional constants file over the built-in
// defaults, key by key. A broken file is reported and ignored.
func (s *Store) loadConstants() (model.Constants, error) {
	defaults := model.DefaultConstants()
	path := s.find(DatasetConstants)
	if path == "" {
		return defaults, nil
	}
	c, err := LoadConstants(path)
	if err != nil {
		s.logger.Warn("ignoring constants file, using defaults", "path", path, "error", err)
		return defaults, nil
	}
	s.logger.Info("reference data loaded", "dataset", DatasetConstants, "path", path,
		"trust_high", c.TrustHigh, "margin_hybrid", c.MarginHybrid, "trust_divisor", c.TrustDivisor)
	return c, nil
}

// LoadConstants reads a constants file and merges it over DefaultConstants.
// Keys absent from the file keep their default values.
func LoadConstants(path string) (model.Constants, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(model.DefaultConstants(), "koanf"), nil); err != nil {
		return model.Constants{}, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return model.Constants{}, fmt.Errorf("load %s: %w", path, err)
	}
	var c model.Constants
	if err := k.Unmarshal("", &c); err != nil {
		return model.Constants{}, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if err := ValidateConstants(c); err != nil {
		return model.Constants{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ValidateConstants checks weights are non-negative and the trust divisor
// is positive. All problems are reported together.
func ValidateConstants(c model.Constants) error {
	var errs []error
	weights := []struct {
		name string
		v    float64
	}{
		{"w_dyn", c.Weights.Dyn},
		{"w_sta", c.Weights.Sta},
		{"w_bond", c.Weights.Bond},
		{"w_trust", c.Weights.Trust},
	}
	for _, w := range weights {
		if !isFinite(w.v) || w.v < 0 {
			errs = append(errs, fmt.Errorf("weight %s must be a non-negative number, got %v", w.name, w.v))
		}
	}
	if !isFinite(c.TrustDivisor) || c.TrustDivisor <= 0 {
		errs = append(errs, fmt.Errorf("trust_divisor must be positive, got %v", c.TrustDivisor))
	}
	if !isFinite(c.TrustHigh) {
		errs = append(errs, fmt.Errorf("trust_high must be finite, got %v", c.TrustHigh))
	}
	if !isFinite(c.MarginHybrid) {
		errs = append(errs, fmt.Errorf("margin_hybrid must be finite, got %v", c.MarginHybrid))
	}
	return errors.Join(errs...)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
