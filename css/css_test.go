package css

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func hamming7() mat.SparseMat {
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

func TestNewDimensionMismatch(t *testing.T) {
	HX := hamming7()
	HZ := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)

	_, err := New(HX, HZ, 0)
	var mismatch DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DimensionMismatchError but found %v", err)
	}
}

func TestSyndromes(t *testing.T) {
	code, err := New(hamming7(), hamming7(), 3)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	//the all-zero pattern must produce the all-zero syndrome
	zero := mat.CSRVec(code.Qubits())
	if !code.SyndromeZ(zero).IsZero() || !code.SyndromeX(zero).IsZero() {
		t.Fatal("expected zero syndrome for zero error pattern")
	}

	//single bit flips produce the corresponding column of HZ
	for i := 0; i < code.Qubits(); i++ {
		e := mat.CSRVec(code.Qubits())
		e.Set(i, 1)

		syndrome := code.SyndromeZ(e)
		if syndrome.HammingDistance(code.HZ.Column(i)) != 0 {
			t.Fatalf("expected syndrome %v for single flip at %v but found %v", code.HZ.Column(i), i, syndrome)
		}
	}
}

func TestCodeJSON(t *testing.T) {
	code, err := New(hamming7(), hamming7(), 3)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	bs, err := json.Marshal(code)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	var actual Code
	err = json.Unmarshal(bs, &actual)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if !actual.HX.Equals(code.HX) || !actual.HZ.Equals(code.HZ) {
		t.Fatal("expected equal matrices after JSON round trip")
	}
	if actual.Distance != 3 {
		t.Fatalf("expected distance 3 but found %v", actual.Distance)
	}

	k, err := actual.LogicalQubits(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if k != 1 {
		t.Fatalf("expected k=1 but found %v", k)
	}
}
