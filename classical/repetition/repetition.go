package repetition

import (
	"context"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/classical"
)

// New creates the [n,1,n] repetition code. The parity check matrix has n-1
// rows, row i checking positions i and i+1, so any single disagreement
// between neighbors shows up in the syndrome.
func New(ctx context.Context, n int, threads int) (*classical.Code, error) {
	if n < 2 {
		panic("repetition codes require n >= 2")
	}

	H := mat.CSRMat(n-1, n)
	for i := 0; i < n-1; i++ {
		H.Set(i, i, 1)
		H.Set(i, i+1, 1)
	}

	code, err := classical.FromParityCheck(ctx, H, threads)
	if err != nil {
		return nil, fmt.Errorf("unable to create repetition code: %v", err)
	}
	return code, nil
}
