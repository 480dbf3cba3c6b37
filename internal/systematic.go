package internal

import (
	"context"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// ExtractAFromH reduces H into [I,A] form and returns A together with the
// column ordering that restores the original column positions.
func ExtractAFromH(ctx context.Context, H mat.SparseMat, threads int) (A mat.SparseMat, columnOrdering []int) {
	m, N := H.Dims()

	gje, ordering := GaussianJordanEliminationGF2(ctx, H, threads)
	if gje == nil {
		return nil, nil
	}

	actual := gje.Slice(0, 0, m, m)
	if !actual.Equals(mat.CSRIdentity(m)) {
		logrus.Errorf("failed to transform H matrix into [I,*]")
		return nil, nil
	}

	//convert [I,A] into [A,I] ordering so the generator below
	// comes out in [I,A^T] form
	columnOrdering = make([]int, len(ordering))
	copy(columnOrdering[0:N-m], ordering[m:N])
	copy(columnOrdering[N-m:N], ordering[0:m])

	A = gje.Slice(0, m, m, N-m)
	return
}

// SystematicFromH derives a systematic generator G from parity check matrix H.
// The returned ordering maps systematic column positions back to the columns
// of the original H. A nil return means H's rows were linearly dependent.
func SystematicFromH(ctx context.Context, H mat.SparseMat, threads int) (HColumnOrder []int, G mat.SparseMat) {
	hrows, hcols := H.Dims()
	if hrows >= hcols {
		panic("H matrix shape == (rows, cols) where rows < cols required")
	}

	logrus.Debugf("creating generator matrix from H")
	A, columnSwaps := ExtractAFromH(ctx, H, threads)
	if A == nil {
		logrus.Debugf("unable to create generator matrix from H")
		return nil, nil
	}

	AT := A.T()
	atRows, atCols := AT.Dims()

	//G=[I, A^T]
	G = mat.DOKMat(atRows, atRows+atCols)
	G.SetMatrix(mat.CSRIdentity(atRows), 0, 0)
	G.SetMatrix(AT, 0, atRows)

	logrus.Debugf("generator matrix complete")
	return columnSwaps, G
}

func ColumnSwapped(H mat.SparseMat, order []int) mat.SparseMat {
	rows, cols := H.Dims()
	result := mat.CSRMat(rows, cols)

	for c, c1 := range order {
		result.SetColumn(c, H.Column(c1))
	}
	return result
}

// ValidateHGMatrices tests G*H.T == 0 over GF(2), where H.T is the transpose of H.
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, _ := G.Dims()
	cols, _ := H.Dims()

	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}

// ValidateCommuting tests that every row of A has even overlap with every row
// of B, the CSS condition A*B.T == 0 over GF(2).
func ValidateCommuting(A, B mat.SparseMat) bool {
	return ValidateHGMatrices(A, B)
}
