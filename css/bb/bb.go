package bb

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/css"
)

// Term is a monomial x^X*y^Y in the bivariate group algebra over an l x m
// torus of cyclic shifts.
type Term struct {
	X, Y int
}

// New creates a bivariate bicycle code from the polynomials a and b over
// GF(2)[x,y]/(x^l-1, y^m-1): HX = [A|B] and HZ = [B^T|A^T], acting on
// n = 2*l*m qubits. A and B commute because x and y do, so the CSS condition
// holds by construction. knownDistance records the family distance when
// established, 0 otherwise.
func New(l, m int, a, b []Term, knownDistance int) (*css.Code, error) {
	if l < 1 || m < 1 {
		panic("bivariate bicycle codes require l >= 1 and m >= 1")
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("polynomials a and b must both have at least one term")
	}

	A := circulant(l, m, a)
	B := circulant(l, m, b)

	blocks := l * m
	n := 2 * blocks

	HX := mat.CSRMat(blocks, n)
	HX.SetMatrix(A, 0, 0)
	HX.SetMatrix(B, 0, blocks)

	HZ := mat.CSRMat(blocks, n)
	HZ.SetMatrix(B.T(), 0, 0)
	HZ.SetMatrix(A.T(), 0, blocks)

	return css.New(HX, HZ, knownDistance)
}

// Gross creates the [[144,12,12]] gross code, the bivariate bicycle code
// with l=12, m=6, a = x^3 + y + y^2 and b = y^3 + x + x^2.
func Gross() (*css.Code, error) {
	a := []Term{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	b := []Term{{X: 0, Y: 3}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	return New(12, 6, a, b, 12)
}

// circulant builds the l*m x l*m matrix of the polynomial acting on the
// group algebra basis, index (i,j) -> i*m+j.
func circulant(l, m int, terms []Term) mat.SparseMat {
	blocks := l * m
	M := mat.CSRMat(blocks, blocks)

	for i := 0; i < l; i++ {
		for j := 0; j < m; j++ {
			row := i*m + j
			for _, t := range terms {
				col := mod(i+t.X, l)*m + mod(j+t.Y, m)
				//terms are distinct monomials so entries never cancel
				M.Set(row, col, 1)
			}
		}
	}
	return M
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}
