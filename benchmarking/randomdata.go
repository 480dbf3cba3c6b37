package benchmarking

import (
	"math/rand"

	mat "github.com/nathanhack/sparsemat"
)

// RandomErrorWeight creates an error pattern of length n with a Hamming
// weight equal to min(weight, n).
func RandomErrorWeight(n int, weight int) mat.SparseVector {
	if weight > n {
		weight = n
	}
	pattern := mat.CSRVec(n)
	for pattern.HammingWeight() < weight {
		pattern.Set(rand.Intn(n), 1)
	}
	return pattern
}

// RandomErrorCrossover creates an error pattern of length n flipping each
// position independently with the crossover probability.
func RandomErrorCrossover(n int, crossoverProbability float64) mat.SparseVector {
	pattern := mat.CSRVec(n)
	for i := 0; i < n; i++ {
		if rand.Float64() < crossoverProbability {
			pattern.Set(i, 1)
		}
	}
	return pattern
}
