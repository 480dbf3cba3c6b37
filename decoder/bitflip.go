package decoder

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

// BitFlip is a syndrome driven hard decision decoder in the Gallager style.
// Each iteration flips the bit participating in the most unsatisfied checks
// until the residual syndrome clears or MaxIter is reached. Unlike Table it
// needs no exhaustive enumeration, so it scales to codes (toric lattices,
// LDPC-like checks) whose lookup tables would exceed MaxTablePatterns, at the
// cost of no minimum weight guarantee.
type BitFlip struct {
	H       mat.SparseMat
	MaxIter int

	columnCache [][]int
}

// Decode estimates the error pattern behind the syndrome. A false converged
// return means the residual syndrome never cleared within MaxIter flips; the
// partial estimate is still returned.
func (b *BitFlip) Decode(syndrome mat.SparseVector) (pattern mat.SparseVector, converged bool) {
	if b.H == nil {
		panic("BitFlip H matrix must be set before calling Decode")
	}
	rows, cols := b.H.Dims()
	if syndrome.Len() != rows {
		panic(fmt.Sprintf("syndrome length == %v required but found %v", rows, syndrome.Len()))
	}

	if b.columnCache == nil {
		b.columnCache = make([][]int, cols)
		for c := 0; c < cols; c++ {
			b.columnCache[c] = b.H.Column(c).NonzeroArray()
		}
	}

	maxIter := b.MaxIter
	if maxIter <= 0 {
		maxIter = cols
	}

	pattern = mat.CSRVec(cols)
	residual := mat.CSRVecCopy(syndrome)

	for iter := 0; iter < maxIter; iter++ {
		if residual.IsZero() {
			return pattern, true
		}

		flip := b.argMaxUnsatisfied(residual)

		pattern.Set(flip, pattern.At(flip)+1)
		for _, check := range b.columnCache[flip] {
			residual.Set(check, residual.At(check)+1)
		}
	}

	return pattern, residual.IsZero()
}

// argMaxUnsatisfied scores each bit by unsatisfied minus satisfied checks it
// participates in, E_n = -sum(1-2*s_m) for m in M(n), and returns the first
// maximum.
func (b *BitFlip) argMaxUnsatisfied(residual mat.SparseVector) int {
	synIndices := residual.NonzeroArray()
	synLen := len(synIndices)

	best := 0
	bestScore := -(1 << 30)
	for n, checks := range b.columnCache {
		unsat := 0
		checksLen := len(checks)
		for i, j := 0, 0; i < checksLen && j < synLen; {
			if checks[i] == synIndices[j] {
				unsat++
				i++
				j++
			} else if checks[i] < synIndices[j] {
				i++
			} else {
				j++
			}
		}

		score := -len(checks) + 2*unsat
		if score > bestScore {
			best = n
			bestScore = score
		}
	}
	return best
}
