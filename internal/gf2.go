package internal

import (
	"context"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// CalculateRank returns the rank of H over GF(2) using XOR based row
// elimination. Floating point elimination is never used; a parity check
// matrix reduced with real arithmetic can report the wrong rank.
func CalculateRank(ctx context.Context, H mat.SparseMat, threads int, showProgressBar bool) int {
	if H == nil {
		return -1
	}

	work := mat.CSRMatCopy(H)
	rows, cols := work.Dims()

	limit := rows
	if cols < rows {
		limit = cols
	}

	columnSwapHistory := make([]int, cols)
	for c := 0; c < cols; c++ {
		columnSwapHistory[c] = c
	}

	return rowEchelon(ctx, limit, work, columnSwapHistory, threads, showProgressBar)
}

// GaussianJordanEliminationGF2 reduces H to reduced row echelon form over GF(2),
// swapping columns when a pivot is missing. It returns the reduced matrix and
// the column ordering, or nil when the rows are not linearly independent.
func GaussianJordanEliminationGF2(ctx context.Context, H mat.SparseMat, threads int) (mat.SparseMat, []int) {
	rows, cols := H.Dims()
	result := mat.CSRMatCopy(H)

	columnSwapHistory := make([]int, cols)
	for c := 0; c < cols; c++ {
		columnSwapHistory[c] = c
	}

	if cols < rows {
		return nil, nil
	}

	showBar := logrus.GetLevel() == logrus.DebugLevel

	//forward pass first so linearly dependent rows fail fast
	if rowEchelon(ctx, rows, result, columnSwapHistory, threads, showBar) != rows {
		logrus.Debugf("rows not linearly independent")
		return nil, nil
	}

	if !reduceAboveDiagonal(ctx, rows, result, threads, showBar) {
		return nil, nil
	}

	logrus.Debugf("GF(2) Gaussian-Jordan elimination complete")
	return result, columnSwapHistory
}

func rowEchelon(ctx context.Context, rows int, H mat.SparseMat, columnSwapHistory []int, threads int, showProgressBar bool) int {
	bar := pb.Full.New(rows)
	bar.Set("prefix", "Reducing Row ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}
		bar.Increment()

		pivots := pivotRows(H, r, columnSwapHistory)
		if pivots == nil {
			//no pivot anywhere at or below r, rank found
			return r
		}

		H.SwapRows(r, pivots[len(pivots)-1])

		//the rth row now has a pivot at (r,r), clear the
		// rth column from every row below it
		xorRows(ctx, r, H, threads, true)
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	return rows
}

func reduceAboveDiagonal(ctx context.Context, rows int, H mat.SparseMat, threads int, showProgressBar bool) bool {
	bar := pb.Full.New(rows)
	bar.Set("prefix", "Back Substituting Row ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		bar.Increment()
		xorRows(ctx, r, H, threads, false)
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()
	return true
}

// pivotRows returns the nonzero rows of column rowIndex, swapping in a usable
// pivot column when the current one has none at or below the diagonal.
// A nil return means no pivot exists anywhere right of the diagonal.
func pivotRows(H mat.SparseMat, rowIndex int, columnSwapHistory []int) []int {
	pivots := H.Column(rowIndex).NonzeroArray()
	if len(pivots) > 0 && pivots[len(pivots)-1] >= rowIndex {
		return pivots
	}

	colPivot := findPivotColGF2(H, rowIndex)
	if colPivot == -1 {
		return nil
	}

	H.SwapColumns(rowIndex, colPivot)
	swapColOrder(rowIndex, colPivot, columnSwapHistory)

	return H.Column(rowIndex).NonzeroArray()
}

func findPivotColGF2(H mat.SparseMat, forRow int) int {
	rows, _ := H.Dims()

	for r := forRow; r < rows; r++ {
		row := H.Row(r).NonzeroArray()
		if len(row) == 0 {
			continue
		}

		col := row[len(row)-1]
		if col > forRow {
			return col
		}
	}
	return -1
}

func swapColOrder(i, j int, colIndices []int) {
	x := len(colIndices)
	if 0 <= i && i < x && 0 <= j && j < x {
		idx := colIndices[i]
		colIndices[i] = colIndices[j]
		colIndices[j] = idx
	}
}

// xorRows adds (GF(2) subtract) the rowIndex row into every other row with a
// one in the rowIndex column. With belowOnly it clears only rows below the
// diagonal, the forward elimination case.
func xorRows(ctx context.Context, rowIndex int, result mat.SparseMat, threads int, belowOnly bool) {
	pivots := result.Column(rowIndex).NonzeroArray()
	pool := threadpool.NewFixedSize(ctx, threads, len(pivots))
	rrow := result.Row(rowIndex)
	mut := sync.RWMutex{}

	for _, index := range pivots {
		pIndex := index
		pool.Add(func() {
			if pIndex == rowIndex {
				return
			}
			if belowOnly && pIndex < rowIndex {
				return
			}
			mut.RLock()
			prow := result.Row(pIndex)
			mut.RUnlock()
			prow.Add(prow, rrow)
			mut.Lock()
			result.SetRow(pIndex, prow)
			mut.Unlock()
		})
	}
	pool.Wait()
}
