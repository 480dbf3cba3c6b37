package toric

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/css"
)

// New creates the [[2L^2, 2, L]] toric code on an L x L periodic lattice.
// Qubits sit on edges: horizontal edge (i,j) has index i*L+j and vertical
// edge (i,j) has index L^2+i*L+j. X-type stabilizers are the vertex (star)
// operators and Z-type stabilizers are the plaquette operators; both sets
// have one dependent row, leaving k=2 logical qubits.
func New(L int) (*css.Code, error) {
	if L < 2 {
		panic("toric codes require L >= 2")
	}

	n := 2 * L * L
	HX := mat.CSRMat(L*L, n)
	HZ := mat.CSRMat(L*L, n)

	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			s := i*L + j

			//vertex (i,j): the four edges touching it
			HX.Set(s, horizontal(L, i, j), 1)
			HX.Set(s, horizontal(L, i, j-1), 1)
			HX.Set(s, vertical(L, i, j), 1)
			HX.Set(s, vertical(L, i-1, j), 1)

			//plaquette with corner (i,j): the four edges around it
			HZ.Set(s, horizontal(L, i, j), 1)
			HZ.Set(s, horizontal(L, i+1, j), 1)
			HZ.Set(s, vertical(L, i, j), 1)
			HZ.Set(s, vertical(L, i, j+1), 1)
		}
	}

	return css.New(HX, HZ, L)
}

func horizontal(L, i, j int) int {
	return mod(i, L)*L + mod(j, L)
}

func vertical(L, i, j int) int {
	return L*L + mod(i, L)*L + mod(j, L)
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}
