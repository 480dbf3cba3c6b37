package bb

import (
	"context"
	"testing"
)

func TestGross(t *testing.T) {
	code, err := Gross()
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if !code.Validate() {
		t.Fatal("expected X and Z stabilizers to commute")
	}

	n, k, d, err := code.Parameters(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if n != 144 || k != 12 || d != 12 {
		t.Fatalf("expected [[144,12,12]] but found [[%v,%v,%v]]", n, k, d)
	}
}

func TestNewToricAsBicycle(t *testing.T) {
	//1 + x and 1 + y generate a toric-like code with k=2
	a := []Term{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []Term{{X: 0, Y: 0}, {X: 0, Y: 1}}

	code, err := New(3, 3, a, b, 3)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if !code.Validate() {
		t.Fatal("expected X and Z stabilizers to commute")
	}

	k, err := code.LogicalQubits(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if k != 2 {
		t.Fatalf("expected k=2 but found %v", k)
	}
}
