package decoder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxTablePatterns caps the number of error patterns a table build will
// enumerate. Lookup tables are exhaustive so they only make sense for small
// block lengths (n up to ~20).
const MaxTablePatterns = 1 << 20

// maxChecks comes from packing syndromes into uint64 keys.
const maxChecks = 64

// InvalidMatrixError signals a parity check matrix a table cannot be built
// from.
type InvalidMatrixError struct {
	Reason string
}

func (e InvalidMatrixError) Error() string {
	return "invalid parity check matrix: " + e.Reason
}

// EnumerationLimitError signals a maxWeight/n combination whose pattern count
// exceeds MaxTablePatterns.
type EnumerationLimitError struct {
	BlockLength int
	MaxWeight   int
	Patterns    int64
	Limit       int64
}

func (e EnumerationLimitError) Error() string {
	return fmt.Sprintf("enumerating %v patterns (n=%v, maxWeight=%v) exceeds the %v pattern limit",
		e.Patterns, e.BlockLength, e.MaxWeight, e.Limit)
}

// Table maps syndromes to the minimum weight error pattern producing them.
// Tables are immutable after construction; Decode is a pure lookup.
type Table struct {
	checks    int
	n         int
	maxWeight int
	entries   map[uint64]mat.SparseVector
	weights   map[uint64]int
	ambiguous map[uint64]bool
}

// NewTable enumerates every error pattern of Hamming weight 0..maxWeight over
// H's columns, computes each pattern's syndrome, and records the first
// (minimum weight) pattern per syndrome. Patterns are enumerated in ascending
// weight and lexicographic position order, so builds are deterministic.
//
// A collision between two patterns of equal weight means the code cannot
// uniquely correct errors of that weight; it is logged as a warning and the
// syndrome is marked ambiguous, never fatal.
func NewTable(ctx context.Context, H mat.SparseMat, maxWeight int, threads int) (*Table, error) {
	if H == nil {
		return nil, InvalidMatrixError{Reason: "nil matrix"}
	}
	rows, cols := H.Dims()
	if rows == 0 || cols == 0 {
		return nil, InvalidMatrixError{Reason: "matrix has no entries"}
	}
	if rows > maxChecks {
		return nil, InvalidMatrixError{Reason: fmt.Sprintf("more than %v parity checks", maxChecks)}
	}
	for r := 0; r < rows; r++ {
		if H.Row(r).IsZero() {
			return nil, InvalidMatrixError{Reason: fmt.Sprintf("row %v checks nothing", r)}
		}
	}
	if maxWeight < 0 || maxWeight > cols {
		return nil, fmt.Errorf("maxWeight must be in [0,%v] but found %v", cols, maxWeight)
	}

	patterns := int64(1)
	for w := 1; w <= maxWeight; w++ {
		patterns += int64(combin.Binomial(cols, w))
		if patterns > MaxTablePatterns {
			return nil, EnumerationLimitError{BlockLength: cols, MaxWeight: maxWeight, Patterns: patterns, Limit: MaxTablePatterns}
		}
	}

	//each column's syndrome contribution packed into a key, a pattern's
	// syndrome is then the XOR over its support
	columnKeys := make([]uint64, cols)
	for c := 0; c < cols; c++ {
		columnKeys[c] = packKey(H.Column(c))
	}

	t := &Table{
		checks:    rows,
		n:         cols,
		maxWeight: maxWeight,
		entries:   map[uint64]mat.SparseVector{},
		weights:   map[uint64]int{},
		ambiguous: map[uint64]bool{},
	}

	//weight 0: the zero pattern produces the zero syndrome
	t.entries[0] = mat.CSRVec(cols)
	t.weights[0] = 0

	bar := pb.Full.New(int(patterns))
	bar.Set("prefix", "Enumerating Patterns ")
	bar.SetWriter(os.Stdout)
	if logrus.GetLevel() == logrus.DebugLevel {
		bar.Start()
	}
	bar.Increment()

	for w := 1; w <= maxWeight; w++ {
		supports := combin.Combinations(cols, w)

		//syndromes computed in parallel, inserted in enumeration order
		// so equal weight ties always resolve to the first pattern
		keys := make([]uint64, len(supports))
		pool := threadpool.NewFixedSize(ctx, threads, len(supports))
		for i := range supports {
			idx := i
			pool.Add(func() {
				key := uint64(0)
				for _, c := range supports[idx] {
					key ^= columnKeys[c]
				}
				keys[idx] = key
			})
		}
		pool.Wait()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for i, support := range supports {
			bar.Increment()
			key := keys[i]
			prev, has := t.entries[key]
			if !has {
				t.entries[key] = patternVector(cols, support)
				t.weights[key] = w
				continue
			}
			if t.weights[key] == w && !t.ambiguous[key] {
				t.ambiguous[key] = true
				logrus.Warnf("syndrome %0*b is shared by weight-%v patterns %v and %v; the code cannot uniquely correct weight-%v errors",
					rows, key, w, prev.NonzeroArray(), support, w)
			}
		}
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	logrus.Debugf("decode table complete: %v syndromes, %v ambiguous", len(t.entries), len(t.ambiguous))
	return t, nil
}

// Decode returns the corrective error pattern recorded for the syndrome. A
// false return means no weight <= MaxWeight pattern produces the syndrome,
// so the error weight exceeded the table's correction radius.
func (t *Table) Decode(syndrome mat.SparseVector) (pattern mat.SparseVector, ok bool) {
	if syndrome.Len() != t.checks {
		panic(fmt.Sprintf("syndrome length == %v required but found %v", t.checks, syndrome.Len()))
	}

	e, has := t.entries[packKey(syndrome)]
	if !has {
		return nil, false
	}
	return mat.CSRVecCopy(e), true
}

// Ambiguous reports whether the syndrome had an equal weight collision during
// construction, meaning the recorded pattern may not be the true error.
func (t *Table) Ambiguous(syndrome mat.SparseVector) bool {
	if syndrome.Len() != t.checks {
		panic(fmt.Sprintf("syndrome length == %v required but found %v", t.checks, syndrome.Len()))
	}
	return t.ambiguous[packKey(syndrome)]
}

// Collisions returns the number of syndromes with equal weight collisions.
func (t *Table) Collisions() int {
	return len(t.ambiguous)
}

// Syndromes returns the number of recorded syndromes.
func (t *Table) Syndromes() int {
	return len(t.entries)
}

func (t *Table) BlockLength() int {
	return t.n
}

func (t *Table) Checks() int {
	return t.checks
}

func (t *Table) MaxWeight() int {
	return t.maxWeight
}

type tableJSON struct {
	Checks    int
	N         int
	MaxWeight int
	//syndrome key -> error pattern support
	Entries   map[uint64][]int
	Ambiguous []uint64
}

// MarshalJSON writes the table as syndrome keys mapped to error pattern
// supports.
func (t *Table) MarshalJSON() ([]byte, error) {
	tj := tableJSON{
		Checks:    t.checks,
		N:         t.n,
		MaxWeight: t.maxWeight,
		Entries:   make(map[uint64][]int, len(t.entries)),
		Ambiguous: make([]uint64, 0, len(t.ambiguous)),
	}
	for key, pattern := range t.entries {
		tj.Entries[key] = pattern.NonzeroArray()
	}
	for key := range t.ambiguous {
		tj.Ambiguous = append(tj.Ambiguous, key)
	}
	return json.Marshal(tj)
}

// UnmarshalJSON restores a table written by MarshalJSON.
func (t *Table) UnmarshalJSON(bytes []byte) error {
	var tj tableJSON
	err := json.Unmarshal(bytes, &tj)
	if err != nil {
		return err
	}

	t.checks = tj.Checks
	t.n = tj.N
	t.maxWeight = tj.MaxWeight
	t.entries = make(map[uint64]mat.SparseVector, len(tj.Entries))
	t.weights = make(map[uint64]int, len(tj.Entries))
	t.ambiguous = make(map[uint64]bool, len(tj.Ambiguous))

	for key, support := range tj.Entries {
		t.entries[key] = patternVector(tj.N, support)
		t.weights[key] = len(support)
	}
	for _, key := range tj.Ambiguous {
		t.ambiguous[key] = true
	}
	return nil
}

// packKey packs a syndrome into a fixed width bit key, bit i holding check i.
func packKey(syndrome mat.SparseVector) uint64 {
	key := uint64(0)
	for _, i := range syndrome.NonzeroArray() {
		key |= 1 << uint(i)
	}
	return key
}

func patternVector(n int, support []int) mat.SparseVector {
	v := mat.CSRVec(n)
	for _, i := range support {
		v.Set(i, 1)
	}
	return v
}
