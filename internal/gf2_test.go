package internal

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestGaussianJordanEliminationGF2(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected mat.SparseMat
	}{
		{ //Hamming(7,4) checks, already in [I,A] form
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
		},
		{ //one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			nil,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			gen, _ := GaussianJordanEliminationGF2(context.Background(), test.input, 0)

			if test.expected != nil {
				if !test.expected.Equals(gen) {
					t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, gen)
				}
			} else {
				if gen != nil {
					t.Fatalf("expected nil but found \n%v\n", gen)
				}
			}
		})
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		//repetition [3,1,3] checks
		{mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1), 2},
		//Hamming(7,4) checks
		{mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1), 3},
		//dependent row (row2 = row0+row1)
		{mat.CSRMat(3, 4, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0), 2},
		//zero matrix
		{mat.CSRMat(2, 4), 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := CalculateRank(context.Background(), test.input, 0, false)
			if actual != test.expected {
				t.Fatalf("expected rank %v but found %v", test.expected, actual)
			}
		})
	}
}

// rank must not depend on the order the checks are listed in
func TestCalculateRankRowPermutationInvariant(t *testing.T) {
	H := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)
	expected := CalculateRank(context.Background(), H, 0, false)

	rows, cols := H.Dims()
	order := []int{2, 0, 1}
	for trial := 0; trial < 5; trial++ {
		rand.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		permuted := mat.CSRMat(rows, cols)
		for r, r1 := range order {
			permuted.SetRow(r, H.Row(r1))
		}
		actual := CalculateRank(context.Background(), permuted, 0, false)
		if actual != expected {
			t.Fatalf("expected rank %v for permutation %v but found %v", expected, order, actual)
		}
	}
}

func TestCalculateRankIdempotent(t *testing.T) {
	H := mat.CSRMat(3, 4, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0)
	first := CalculateRank(context.Background(), H, 0, false)
	second := CalculateRank(context.Background(), H, 0, false)
	if first != second {
		t.Fatalf("expected %v but found %v", first, second)
	}
}

func TestSystematicFromH(t *testing.T) {
	H := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)

	order, G := SystematicFromH(context.Background(), H, 0)
	if order == nil || G == nil {
		t.Fatal("expected a systematic generator")
	}

	if !ValidateHGMatrices(G, ColumnSwapped(H, order)) {
		t.Fatal("expected G*H.T == 0")
	}
}
