package classical

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/internal"
)

// MaxDistanceMessageBits bounds the brute force minimum distance search,
// which enumerates all 2^k codewords.
const MaxDistanceMessageBits = 24

// EnumerationLimitError signals a codeword enumeration too large to run
// exhaustively.
type EnumerationLimitError struct {
	MessageBits int
	Limit       int
}

func (e EnumerationLimitError) Error() string {
	return fmt.Sprintf("distance enumeration over 2^%v codewords exceeds the 2^%v limit", e.MessageBits, e.Limit)
}

type Systematic struct {
	HColumnOrder []int
	G            mat.SparseMat
}

// Code is a classical linear block code: the parity check matrix H plus the
// derived systematic generator used for encoding and distance enumeration.
type Code struct {
	H          mat.SparseMat //the parity check matrix, rows are checks over GF(2)
	Systematic *Systematic
}

//// For JSON unmarshalling
type systematic struct {
	HColumnOrder []int
	G            mat.CSRMatrix
}
type code struct {
	H          mat.CSRMatrix
	Systematic *systematic
}

// UnmarshalJSON is needed because Code holds mat.SparseMat interfaces and
// requires concrete types while unmarshalling.
func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cc code
	err := json.Unmarshal(bytes, &cc)
	if err != nil {
		return err
	}

	c.H = &cc.H
	if cc.Systematic == nil {
		return nil
	}

	c.Systematic = &Systematic{
		HColumnOrder: cc.Systematic.HColumnOrder,
		G:            &cc.Systematic.G,
	}

	return nil
}

// FromParityCheck derives the systematic generator for H and returns the
// resulting Code. H must have fewer rows than columns and linearly
// independent rows.
func FromParityCheck(ctx context.Context, H mat.SparseMat, threads int) (*Code, error) {
	order, g := internal.SystematicFromH(ctx, H, threads)
	if order == nil {
		return nil, fmt.Errorf("unable to create generator for H matrix")
	}

	return &Code{
		H: H,
		Systematic: &Systematic{
			HColumnOrder: order,
			G:            g,
		},
	}, nil
}

// Encode takes in a message and returns the codeword in the original H
// column ordering.
func (c *Code) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	G := c.Systematic.G
	rows, cols := G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, G)

	return ToNonSystematic(codeword, c.Systematic.HColumnOrder)
}

// Decode takes in a codeword and returns the message contained in it.
// It does no error correction; see the decoder package for that.
func (c *Code) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != c.BlockLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", c.BlockLength(), codeword.Len()))
	}

	codeword = ToSystematic(codeword, c.Systematic.HColumnOrder)
	return codeword.Slice(0, c.MessageLength())
}

// Syndrome returns H*codeword over GF(2). A zero syndrome means every parity
// check is satisfied.
func (c *Code) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(c.ParityChecks())
	syndrome.MatMul(c.H, codeword)
	return
}

func (c *Code) MessageLength() int {
	k, _ := c.Systematic.G.Dims()
	return k
}

func (c *Code) ParityChecks() int {
	m, _ := c.H.Dims()
	return m
}

func (c *Code) BlockLength() int {
	_, n := c.H.Dims()
	return n
}

func (c *Code) Rate() float64 {
	return float64(c.MessageLength()) / float64(c.BlockLength())
}

// Validate tests G*H.T==0, where G is the generator matrix and H.T is the transpose of H
func (c *Code) Validate() bool {
	return internal.ValidateHGMatrices(c.Systematic.G, internal.ColumnSwapped(c.H, c.Systematic.HColumnOrder))
}

// Parameters returns the [n,k,d] parameters of the code: block length n,
// message bits k = n - rank(H), and minimum distance d found by brute force
// enumeration of all 2^k codewords.
func (c *Code) Parameters(ctx context.Context, threads int) (n, k, d int, err error) {
	n = c.BlockLength()
	rank := internal.CalculateRank(ctx, c.H, threads, false)
	if rank < 0 {
		return 0, 0, 0, ctx.Err()
	}
	k = n - rank

	d, err = c.MinimumDistance(ctx, threads)
	if err != nil {
		return 0, 0, 0, err
	}
	return n, k, d, nil
}

// MinimumDistance enumerates every nonzero codeword and returns the smallest
// Hamming weight found. The enumeration is exhaustive over 2^k messages so k
// is capped at MaxDistanceMessageBits.
func (c *Code) MinimumDistance(ctx context.Context, threads int) (int, error) {
	k := c.MessageLength()
	if k > MaxDistanceMessageBits {
		return 0, EnumerationLimitError{MessageBits: k, Limit: MaxDistanceMessageBits}
	}

	min := c.BlockLength() + 1
	message := mat.CSRVec(k)
	for m := uint64(1); m < uint64(1)<<k; m++ {
		if m%1024 == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}

		for i := 0; i < k; i++ {
			message.Set(i, int(m>>i)&1)
		}

		w := c.Encode(message).HammingWeight()
		if w < min {
			min = w
		}
	}
	return min, nil
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(c.H.String())
	buf.WriteString(fmt.Sprintf("Order: %v", c.Systematic.HColumnOrder))
	buf.WriteString("\nG:\n")
	buf.WriteString(c.Systematic.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}

// ToSystematic reorders a vector from original H column positions into the
// systematic ordering.
func ToSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if len(ordering) > 0 && codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())

	for c, c1 := range ordering {
		result.Set(c, codeword.At(c1))
	}

	return result
}

// ToNonSystematic is the inverse of ToSystematic.
func ToNonSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if len(ordering) > 0 && codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())

	for c, c1 := range ordering {
		result.Set(c1, codeword.At(c))
	}

	return result
}
