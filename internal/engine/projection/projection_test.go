package projection

import (
	"math"
	"testing"

	"github.com/hejijunhao/lovetype/internal/model"
)

func TestProject(t *testing.T) {
	total := model.Scores{Empathy: 50, Harmony: 30, Dependency: 40, Stimulation: 100, Trust: 90}

	got := Project(total, 200)
	want := model.Point{Dyn: 0.4545, Sta: 0.3636, Bond: 0.1818, Trust: 0.45}
	if got != want {
		t.Fatalf("Project() = %+v, want %+v", got, want)
	}
}

func TestProjectSharesDenominator(t *testing.T) {
	tests := []model.Scores{
		{Empathy: 50, Harmony: 30, Dependency: 40, Stimulation: 100, Trust: 90},
		{Empathy: 10, Harmony: 0, Dependency: 0, Stimulation: 0, Trust: 0},
		{Empathy: 70, Harmony: 90, Dependency: 30, Stimulation: 20, Trust: 110},
		{Empathy: 30, Harmony: 70, Dependency: 10, Stimulation: 60, Trust: 20},
	}
	for _, s := range tests {
		p := Project(s, 200)
		T := Total(s)
		sum := (p.Dyn + p.Sta + p.Bond) * T
		want := float64(s.Stimulation + s.Empathy + s.Harmony + s.Dependency)
		// Each ratio carries at most 0.5e-4 rounding error.
		if tol := 1.5e-4 * T; math.Abs(sum-want) > tol {
			t.Errorf("scores %+v: (dyn+sta+bond)*T = %v, want %v ± %v", s, sum, want, tol)
		}
	}
}

func TestProjectAllZero(t *testing.T) {
	got := Project(model.Scores{}, 200)
	if got != (model.Point{}) {
		t.Fatalf("Project(zero) = %+v, want all zero", got)
	}
	for _, v := range []float64{got.Dyn, got.Sta, got.Bond, got.Trust} {
		if math.IsNaN(v) {
			t.Fatal("NaN ratio for zero scores")
		}
	}
}

func TestProjectTrustNotClamped(t *testing.T) {
	got := Project(model.Scores{Empathy: 10, Trust: 400}, 200)
	if got.Trust != 2 {
		t.Fatalf("Trust = %v, want 2", got.Trust)
	}
}

func TestProjectTrustDivisor(t *testing.T) {
	got := Project(model.Scores{Empathy: 10, Trust: 90}, 100)
	if got.Trust != 0.9 {
		t.Fatalf("Trust = %v, want 0.9", got.Trust)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.45454545, 4, 0.4545},
		{0.36363636, 4, 0.3636},
		{0.125, 2, 0.12},   // exact tie rounds to even
		{0.375, 2, 0.38},   // exact tie rounds to even
		{2.675, 2, 2.67},   // binary value sits below the tie
		{0.0140000001, 6, 0.014},
		{-0.00004, 4, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.Inf(1), 4); !math.IsInf(got, 1) {
		t.Fatalf("Round(+Inf) = %v", got)
	}
	if got := Round(math.NaN(), 4); !math.IsNaN(got) {
		t.Fatalf("Round(NaN) = %v", got)
	}
}
