package floaty

import "math/rand"

// Rand is the game's source of randomness. Seeding it makes spawns and the
// star field reproducible.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a generator seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.r.Float64()*(max-min)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}
