// File: internal/dice/dice.go
package dice

import (
	"time"

	"golang.org/x/exp/rand"
)

// Roll is the visible face of each tetrahedral die: true when the marked
// tip is up.
type Roll []bool

// Count is the number of marked faces showing.
func (r Roll) Count() int {
	n := 0
	for _, up := range r {
		if up {
			n++
		}
	}
	return n
}

// Roller throws a fixed number of two-faced dice.
type Roller struct {
	rng *rand.Rand
	n   int
}

// NewRoller seeds from the clock when seed is 0.
func NewRoller(n int, seed uint64) *Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Roller{rng: rand.New(rand.NewSource(seed)), n: n}
}

func (r *Roller) Roll() Roll {
	out := make(Roll, r.n)
	for i := range out {
		out[i] = r.rng.Intn(2) == 1
	}
	return out
}
