package steane

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/css"
)

// New creates the [[7,1,3]] Steane code. Both stabilizer sectors use the
// Hamming(7,4) parity checks, whose columns are the bit patterns of 1..7, so
// the code corrects any single X and any single Z error.
func New() *css.Code {
	code, err := css.New(checks(), checks(), 3)
	if err != nil {
		panic(err) //unreachable, both sectors share the same shape
	}
	return code
}

func checks() mat.SparseMat {
	H := mat.CSRMat(3, 7)
	for i := 1; i <= 7; i++ {
		for j := 0; j < 3; j++ {
			if i&(1<<j) > 0 {
				H.Set(j, i-1, 1)
			}
		}
	}
	return H
}
