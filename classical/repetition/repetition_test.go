package repetition

import (
	"context"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		n int
	}{
		{3},
		{5},
		{7},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := New(context.Background(), test.n, 0)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			if !actual.Validate() {
				t.Fatal("expected valid code")
			}

			n, k, d, err := actual.Parameters(context.Background(), 0)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if n != test.n || k != 1 || d != test.n {
				t.Fatalf("expected [%v,1,%v] but found [%v,%v,%v]", test.n, test.n, n, k, d)
			}
		})
	}
}
