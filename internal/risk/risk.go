// Package risk produces the demo fraud indicator. The score is a
// pseudo-random float in [0,1) with no seeding guarantee; it stands in for a
// real model and carries no security weight.
package risk

import (
	"math/rand"
	"time"
)

type Scorer struct {
	r *rand.Rand
}

// New returns a time-seeded scorer. Scores are not reproducible across runs.
func New() *Scorer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource lets tests pin the sequence.
func NewWithSource(src rand.Source) *Scorer {
	return &Scorer{r: rand.New(src)}
}

// Score returns a value in [0,1) quantized to two decimals, matching the
// 0.00..0.99 range the display format shows.
func (s *Scorer) Score() float64 {
	return float64(s.r.Intn(100)) / 100.0
}
