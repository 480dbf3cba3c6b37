package hamming

import (
	"context"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/classical"
)

// New creates the systematic Hamming code with paritySymbols number of parity
// symbols, a [2^m-1, 2^m-1-m, 3] code. Hamming codes can detect up to two-bit
// errors or correct one-bit errors without detection of uncorrected errors.
func New(ctx context.Context, paritySymbols int, threads int) (*classical.Code, error) {
	if paritySymbols < 3 {
		panic("hamming codes require >=3 parity symbols")
	}
	n := 1<<paritySymbols - 1
	H := mat.CSRMat(paritySymbols, n)

	//the columns are the bit patterns of every number in [1,n],
	// so every column is distinct and nonzero
	for i := 1; i <= n; i++ {
		vec := mat.CSRVec(paritySymbols)
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<j) > 0 {
				vec.Set(j, 1)
			}
		}
		H.SetColumn(i-1, vec)
	}

	code, err := classical.FromParityCheck(ctx, H, threads)
	if err != nil {
		return nil, fmt.Errorf("unable to create hamming code: %v", err)
	}
	return code, nil
}
