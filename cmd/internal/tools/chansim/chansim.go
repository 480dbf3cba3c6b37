package chansim

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/benchmarking"
	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/cmd/internal/interrupt"
	"github.com/nathanhack/stabilizer/decoder"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	MaxWeight        uint
	BitFlipDecode    bool
	MaxIter          uint
)

// ClassicalRun sweeps a binary symmetric channel over a classical code's
// parity checks.
var ClassicalRun = func(cmd *cobra.Command, args []string) {
	code, err := codeio.LoadClassical(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	run(args[1], code.H)
}

// CSSRun does the same over a CSS code's Z-type stabilizers, the bit-flip
// sector of the code.
var CSSRun = func(cmd *cobra.Command, args []string) {
	code, err := codeio.LoadCSS(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	run(args[1], code.HZ)
}

func typeInfo() string {
	var t reflect.Type
	if BitFlipDecode {
		t = reflect.TypeOf(decoder.BitFlip{})
	} else {
		t = reflect.TypeOf(decoder.Table{})
	}
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

func run(outputFilename string, H mat.SparseMat) {
	data, err := codeio.LoadResults(outputFilename)
	if err != nil {
		fmt.Println(err)
		return
	}

	if data == nil {
		data = &codeio.SimulationStats{
			TypeInfo: typeInfo(),
			CodeInfo: codeio.Md5Sum(H),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo() {
		fmt.Printf("results loaded do not match: expected %v but found %v\n", typeInfo(), data.TypeInfo)
		return
	}
	if data.CodeInfo != codeio.Md5Sum(H) {
		fmt.Println("results loaded do not match the code")
		return
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	threads := int(Threads)
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	correct, err := corrector(ctx, H, threads)
	if err != nil {
		fmt.Println("Unable to create decoder: ", err)
		return
	}

	runSimulation(ctx, data, H, correct, threads, outputFilename)

	err = codeio.SaveResults(outputFilename, data)
	if err != nil {
		fmt.Println(err)
	}
}

// corrector builds the requested decoder: an exhaustive lookup table, or the
// iterative bit flipper for codes whose table would be too large.
func corrector(ctx context.Context, H mat.SparseMat, threads int) (benchmarking.Corrector, error) {
	if BitFlipDecode {
		bfMux := sync.Mutex{}
		bf := &decoder.BitFlip{H: H, MaxIter: int(MaxIter)}
		return func(syndrome mat.SparseVector) (mat.SparseVector, bool) {
			bfMux.Lock()
			defer bfMux.Unlock()
			return bf.Decode(syndrome)
		}, nil
	}

	table, err := decoder.NewTable(ctx, H, int(MaxWeight), threads)
	if err != nil {
		return nil, err
	}
	return table.Decode, nil
}

func runSimulation(ctx context.Context, data *codeio.SimulationStats, H mat.SparseMat, correct benchmarking.Corrector, threads int, outputFilename string) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	_, cols := H.Dims()
	trialsPerIter := threads * 10

	bar := pb.StartNew(int(Trials) * len(ErrorProbability))
trialLoops:
	for t := 0; t <= int(Trials); t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range ErrorProbability {
			crossover := p
			inject := func(trial int) mat.SparseVector {
				return benchmarking.RandomErrorCrossover(cols, crossover)
			}

			checkpoint := func(stats benchmarking.Stats) {
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[crossover] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := codeio.SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			data.Stats[crossover] = benchmarking.BenchmarkDecoderContinueStats(ctx,
				min(t, int(Trials)), threads, H, inject, correct, checkpoint, data.Stats[crossover], false)
			bar.Add(trialsPerIter)
		}
	}
	bar.Finish()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
