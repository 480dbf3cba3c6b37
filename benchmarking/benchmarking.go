package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
)

// Stats accumulates decoder performance over injected error trials.
type Stats struct {
	ResidualError avgstd.AvgStd // fraction of positions still in error after correction
	DecodeFailure avgstd.AvgStd // 1.0 when the corrected pattern differs from the injected one
	SyndromeMiss  avgstd.AvgStd // 1.0 when the decoder had no correction for the syndrome
}

func (s Stats) String() string {
	return fmt.Sprintf("{Residual:%0.02f(+/-%0.02f), Failure:%0.02f(+/-%0.02f), Miss:%0.02f(+/-%0.02f)}",
		s.ResidualError.Mean, math.Sqrt(s.ResidualError.SampledVariance()),
		s.DecodeFailure.Mean, math.Sqrt(s.DecodeFailure.SampledVariance()),
		s.SyndromeMiss.Mean, math.Sqrt(s.SyndromeMiss.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

// ErrorInjector creates the error pattern for a trial.
type ErrorInjector func(trial int) (pattern mat.SparseVector)

// Corrector maps a syndrome to a corrective pattern; ok is false when the
// decoder has no answer for the syndrome.
type Corrector func(syndrome mat.SparseVector) (correction mat.SparseVector, ok bool)

// BenchmarkDecoder injects random error patterns, extracts their syndromes
// through H, asks the corrector for a fix, and accumulates how often the fix
// restores the injected pattern.
func BenchmarkDecoder(ctx context.Context,
	trials int, threads int,
	H mat.SparseMat,
	inject ErrorInjector,
	correct Corrector,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkDecoderContinueStats(ctx, trials, threads, H, inject, correct, checkpoints, Stats{}, showProgress)
}

func BenchmarkDecoderContinueStats(ctx context.Context,
	trials int, threads int,
	H mat.SparseMat,
	inject ErrorInjector,
	correct Corrector,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ResidualError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	rows, cols := H.Dims()

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//inject an error pattern
		pattern := inject(i)

		//extract its syndrome
		syndrome := mat.CSRVec(rows)
		syndrome.MatMul(H, pattern)

		//ask the decoder for a correction
		correction, ok := correct(syndrome)

		miss := 0.0
		residual := pattern
		if !ok {
			miss = 1.0
		} else {
			residual = mat.CSRVec(cols)
			residual.Add(pattern, correction)
		}

		failure := 0.0
		remaining := residual.HammingWeight()
		if remaining > 0 {
			failure = 1.0
		}

		statsMux.Lock()
		previousStats.ResidualError.Update(float64(remaining) / float64(cols))
		previousStats.DecodeFailure.Update(failure)
		previousStats.SyndromeMiss.Update(miss)
		if checkpoints != nil {
			checkpoints(previousStats)
		}
		statsMux.Unlock()
	}

	for i := previousStats.ResidualError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}
