package ports

// Rand is the randomness source behind natural-mode jitter. *rand.Rand from
// math/rand/v2 satisfies it; tests inject a seeded source so timing bounds
// can be asserted deterministically.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}
