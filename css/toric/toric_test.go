package toric

import (
	"context"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		L int
	}{
		{2},
		{3},
		{4},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := New(test.L)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			if !code.Validate() {
				t.Fatal("expected vertex and plaquette stabilizers to commute")
			}

			n, k, d, err := code.Parameters(context.Background(), 0)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			expectedN := 2 * test.L * test.L
			if n != expectedN || k != 2 || d != test.L {
				t.Fatalf("expected [[%v,2,%v]] but found [[%v,%v,%v]]", expectedN, test.L, n, k, d)
			}
		})
	}
}

func TestStabilizerWeights(t *testing.T) {
	code, err := New(3)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	//every star and plaquette touches exactly four edges
	rows, _ := code.HX.Dims()
	for r := 0; r < rows; r++ {
		if w := code.HX.Row(r).HammingWeight(); w != 4 {
			t.Fatalf("expected weight 4 vertex stabilizer but row %v has weight %v", r, w)
		}
		if w := code.HZ.Row(r).HammingWeight(); w != 4 {
			t.Fatalf("expected weight 4 plaquette stabilizer but row %v has weight %v", r, w)
		}
	}
}
