package safehaven

import "fmt"

// MaxFaces is the largest number of distinct faces a bet can carry,
// the study models bets as six-sided dice at most.
const MaxFaces = 6

// Bet is a weighted dice bet. Each face is a wealth multiplier (1.05
// means +5%), and its weight is the number of sides showing that face.
type Bet struct {
	Name    string
	Faces   []float64
	Weights []int
}

// NewBet validates and builds a bet. A bet needs 1 to 6 faces, one
// weight per face, and every weight at least 1.
func NewBet(name string, faces []float64, weights []int) (Bet, error) {
	if len(faces) < 1 || len(faces) > MaxFaces {
		return Bet{}, fmt.Errorf("bet %q: want 1 to %d faces, got %d", name, MaxFaces, len(faces))
	}
	if len(faces) != len(weights) {
		return Bet{}, fmt.Errorf("bet %q: %d faces but %d weights", name, len(faces), len(weights))
	}
	for i, w := range weights {
		if w < 1 {
			return Bet{}, fmt.Errorf("bet %q: weight %d for face %g must be at least 1", name, w, faces[i])
		}
	}
	for _, f := range faces {
		if f < 0 {
			return Bet{}, fmt.Errorf("bet %q: face %g is negative, faces are wealth multipliers", name, f)
		}
	}
	return Bet{Name: name, Faces: faces, Weights: weights}, nil
}

// MustBet is like NewBet but panics on error. For declaring fixed bets.
func MustBet(name string, faces []float64, weights []int) Bet {
	b, err := NewBet(name, faces, weights)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Outcomes expands each face by its weight, so drawing uniformly from
// the result reproduces the weighted odds. Its length is the sum of the
// weights.
func (b Bet) Outcomes() []float64 {
	n := 0
	for _, w := range b.Weights {
		n += w
	}
	outcomes := make([]float64, 0, n)
	for i, face := range b.Faces {
		for range b.Weights[i] {
			outcomes = append(outcomes, face)
		}
	}
	return outcomes
}

// EvenOdds returns a bet where every face has weight 1.
func EvenOdds(name string, faces ...float64) (Bet, error) {
	weights := make([]int, len(faces))
	for i := range weights {
		weights[i] = 1
	}
	return NewBet(name, faces, weights)
}
