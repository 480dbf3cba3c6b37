package steane

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	code := New()

	if !code.Validate() {
		t.Fatal("expected X and Z stabilizers to commute")
	}

	n, k, d, err := code.Parameters(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if n != 7 || k != 1 || d != 3 {
		t.Fatalf("expected [[7,1,3]] but found [[%v,%v,%v]]", n, k, d)
	}
}
