package rng

// Generator provides a simple random number.
// Card dealing draws ranks and suits through this interface so tests can
// script the exact cards dealt.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
