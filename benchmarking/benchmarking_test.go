package benchmarking

import (
	"context"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/decoder"
)

func TestBenchmarkDecoderLookup(t *testing.T) {
	H := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)

	table, err := decoder.NewTable(context.Background(), H, 1, 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	//weight 1 errors are always corrected by the [3,1,3] table
	stats := BenchmarkDecoder(context.Background(), 100, 0, H,
		func(trial int) mat.SparseVector {
			return RandomErrorWeight(3, 1)
		},
		table.Decode,
		nil, false)

	if stats.DecodeFailure.Count != 100 {
		t.Fatalf("expected 100 trials but found %v", stats.DecodeFailure.Count)
	}
	if stats.DecodeFailure.Mean != 0 {
		t.Fatalf("expected no decode failures but found mean %v", stats.DecodeFailure.Mean)
	}
	if stats.SyndromeMiss.Mean != 0 {
		t.Fatalf("expected no syndrome misses but found mean %v", stats.SyndromeMiss.Mean)
	}
}

func TestBenchmarkDecoderContinueStats(t *testing.T) {
	H := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)

	table, err := decoder.NewTable(context.Background(), H, 1, 0)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	inject := func(trial int) mat.SparseVector {
		return RandomErrorWeight(3, 1)
	}

	stats := BenchmarkDecoder(context.Background(), 50, 0, H, inject, table.Decode, nil, false)
	stats = BenchmarkDecoderContinueStats(context.Background(), 100, 0, H, inject, table.Decode, nil, stats, false)

	if stats.DecodeFailure.Count != 100 {
		t.Fatalf("expected 100 total trials but found %v", stats.DecodeFailure.Count)
	}
}

func TestRandomErrorWeight(t *testing.T) {
	tests := []struct {
		n, weight int
	}{
		{10, 0},
		{10, 3},
		{5, 5},
		{4, 7},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			expected := test.weight
			if expected > test.n {
				expected = test.n
			}
			pattern := RandomErrorWeight(test.n, test.weight)
			if pattern.Len() != test.n {
				t.Fatalf("expected length %v but found %v", test.n, pattern.Len())
			}
			if pattern.HammingWeight() != expected {
				t.Fatalf("expected weight %v but found %v", expected, pattern.HammingWeight())
			}
		})
	}
}
