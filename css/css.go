package css

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/internal"
)

// DimensionMismatchError signals HX and HZ acting on different numbers of
// qubits.
type DimensionMismatchError struct {
	HXColumns int
	HZColumns int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("HX acts on %v qubits but HZ acts on %v", e.HXColumns, e.HZColumns)
}

// Code is a CSS stabilizer code described by two classical parity check
// matrices over the same n qubits: HX rows are X-type stabilizers (they
// detect Z/phase-flip errors) and HZ rows are Z-type stabilizers (they
// detect X/bit-flip errors).
//
// Distance is the known minimum distance of the code family, 0 when not
// established. Computing CSS distance is NP-hard in general so it is
// recorded by the constructors rather than derived.
type Code struct {
	HX       mat.SparseMat
	HZ       mat.SparseMat
	Distance int
}

//// For JSON unmarshalling
type cssCode struct {
	HX       mat.CSRMatrix
	HZ       mat.CSRMatrix
	Distance int
}

// UnmarshalJSON is needed because Code holds mat.SparseMat interfaces and
// requires concrete types while unmarshalling.
func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cc cssCode
	err := json.Unmarshal(bytes, &cc)
	if err != nil {
		return err
	}

	c.HX = &cc.HX
	c.HZ = &cc.HZ
	c.Distance = cc.Distance
	return nil
}

// New wraps HX and HZ into a Code after checking they act on the same number
// of qubits. knownDistance may be 0 when the family distance is not recorded.
func New(HX, HZ mat.SparseMat, knownDistance int) (*Code, error) {
	_, xn := HX.Dims()
	_, zn := HZ.Dims()
	if xn != zn {
		return nil, DimensionMismatchError{HXColumns: xn, HZColumns: zn}
	}

	return &Code{
		HX:       HX,
		HZ:       HZ,
		Distance: knownDistance,
	}, nil
}

// Qubits returns n, the block length.
func (c *Code) Qubits() int {
	_, n := c.HX.Dims()
	return n
}

// Validate tests the CSS condition HX*HZ.T == 0: every X-type stabilizer must
// commute with every Z-type stabilizer.
func (c *Code) Validate() bool {
	_, xn := c.HX.Dims()
	_, zn := c.HZ.Dims()
	if xn != zn {
		return false
	}
	return internal.ValidateCommuting(c.HX, c.HZ)
}

// SyndromeZ returns HZ*e, the syndrome a bit-flip (X) error pattern e
// produces on the Z-type stabilizers.
func (c *Code) SyndromeZ(errorPattern mat.SparseVector) (syndrome mat.SparseVector) {
	rows, _ := c.HZ.Dims()
	syndrome = mat.CSRVec(rows)
	syndrome.MatMul(c.HZ, errorPattern)
	return
}

// SyndromeX returns HX*e, the syndrome a phase-flip (Z) error pattern e
// produces on the X-type stabilizers.
func (c *Code) SyndromeX(errorPattern mat.SparseVector) (syndrome mat.SparseVector) {
	rows, _ := c.HX.Dims()
	syndrome = mat.CSRVec(rows)
	syndrome.MatMul(c.HX, errorPattern)
	return
}

// LogicalQubits returns k = n - rank(HX) - rank(HZ) with ranks computed over
// GF(2).
func (c *Code) LogicalQubits(ctx context.Context, threads int) (int, error) {
	_, xn := c.HX.Dims()
	_, zn := c.HZ.Dims()
	if xn != zn {
		return 0, DimensionMismatchError{HXColumns: xn, HZColumns: zn}
	}

	rankX := internal.CalculateRank(ctx, c.HX, threads, false)
	if rankX < 0 {
		return 0, ctx.Err()
	}
	rankZ := internal.CalculateRank(ctx, c.HZ, threads, false)
	if rankZ < 0 {
		return 0, ctx.Err()
	}

	return xn - rankX - rankZ, nil
}

// Parameters returns the [[n,k,d]] parameters. d comes from the recorded
// family distance and is 0 when unknown.
func (c *Code) Parameters(ctx context.Context, threads int) (n, k, d int, err error) {
	n = c.Qubits()
	k, err = c.LogicalQubits(ctx, threads)
	if err != nil {
		return 0, 0, 0, err
	}
	return n, k, c.Distance, nil
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nHX:\n")
	buf.WriteString(c.HX.String())
	buf.WriteString("\nHZ:\n")
	buf.WriteString(c.HZ.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
