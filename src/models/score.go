package models

import "fmt"

// Score is the reward-to-risk ratio used to rank spreads. A spread whose max
// loss is zero has no finite ratio and is marked Unbounded instead of
// dividing by zero; unbounded scores order ahead of every finite score.
type Score struct {
	Ratio     float64
	Unbounded bool
}

func NewFiniteScore(ratio float64) Score {
	return Score{Ratio: ratio}
}

func NewUnboundedScore() Score {
	return Score{Unbounded: true}
}

// GreaterThan reports whether s ranks strictly ahead of other. Two unbounded
// scores are equal.
func (s Score) GreaterThan(other Score) bool {
	if s.Unbounded {
		return !other.Unbounded
	}

	if other.Unbounded {
		return false
	}

	return s.Ratio > other.Ratio
}

func (s Score) String() string {
	if s.Unbounded {
		return "unbounded"
	}

	return fmt.Sprintf("%.6f", s.Ratio)
}
