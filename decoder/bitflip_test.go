package decoder

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/css/toric"
)

func TestBitFlipRepetition(t *testing.T) {
	H := mat.CSRMat(4, 5)
	for i := 0; i < 4; i++ {
		H.Set(i, i, 1)
		H.Set(i, i+1, 1)
	}

	bf := &BitFlip{H: H, MaxIter: 10}

	for i := 0; i < 5; i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			e := mat.CSRVec(5)
			e.Set(i, 1)
			syndrome := mat.CSRVec(4)
			syndrome.MatMul(H, e)

			pattern, converged := bf.Decode(syndrome)
			if !converged {
				t.Fatal("expected convergence on a single error")
			}
			if pattern.HammingDistance(e) != 0 {
				t.Fatalf("expected %v but found %v", e, pattern)
			}
		})
	}
}

func TestBitFlipToricSingleErrors(t *testing.T) {
	code, err := toric.New(3)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	bf := &BitFlip{H: code.HZ, MaxIter: 20}

	//every single bit flip clears its own syndrome
	for i := 0; i < code.Qubits(); i++ {
		e := mat.CSRVec(code.Qubits())
		e.Set(i, 1)
		syndrome := code.SyndromeZ(e)

		pattern, converged := bf.Decode(syndrome)
		if !converged {
			t.Fatalf("expected convergence on single error at %v", i)
		}

		check := code.SyndromeZ(pattern)
		if check.HammingDistance(syndrome) != 0 {
			t.Fatalf("expected the correction for error at %v to reproduce syndrome %v but found %v", i, syndrome, check)
		}
	}
}

func TestBitFlipZeroSyndrome(t *testing.T) {
	H := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)
	bf := &BitFlip{H: H, MaxIter: 5}

	pattern, converged := bf.Decode(mat.CSRVec(2))
	if !converged {
		t.Fatal("expected immediate convergence on zero syndrome")
	}
	if !pattern.IsZero() {
		t.Fatalf("expected zero pattern but found %v", pattern)
	}
}
