package analyze

import (
	"fmt"
	"runtime"

	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/cmd/internal/interrupt"
	"github.com/nathanhack/stabilizer/decoder"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	MaxWeight uint
	Threads   uint
	Verbose   bool
)

func threads() int {
	if Threads == 0 {
		return runtime.NumCPU()
	}
	return int(Threads)
}

func setLevel() {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

var ClassicalParamsRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := codeio.LoadClassical(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	n, k, d, err := code.Parameters(ctx, threads())
	if err != nil {
		fmt.Println("Unable to compute parameters: ", err)
		return
	}

	fmt.Printf("[n,k,d] = [%v,%v,%v]  rate=%0.3f\n", n, k, d, code.Rate())
}

var CSSParamsRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := codeio.LoadCSS(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if !code.Validate() {
		fmt.Println("Warning: X and Z stabilizers do not commute")
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	n, k, d, err := code.Parameters(ctx, threads())
	if err != nil {
		fmt.Println("Unable to compute parameters: ", err)
		return
	}

	if d == 0 {
		fmt.Printf("[[n,k,d]] = [[%v,%v,?]]  (family distance not recorded)\n", n, k)
		return
	}
	fmt.Printf("[[n,k,d]] = [[%v,%v,%v]]\n", n, k, d)
}

var ClassicalTableRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := codeio.LoadClassical(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	table, err := decoder.NewTable(ctx, code.H, int(MaxWeight), threads())
	if err != nil {
		fmt.Println("Unable to build decode table: ", err)
		return
	}

	fmt.Printf("table: %v syndromes, %v ambiguous\n", table.Syndromes(), table.Collisions())

	err = codeio.SaveJSON(args[1], table)
	if err != nil {
		fmt.Println(err)
	}
}

// CSSTableRun builds the bit-flip correction table from the Z-type
// stabilizers; by CSS symmetry the phase-flip table is the same construction
// over HX.
var CSSTableRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := codeio.LoadCSS(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	table, err := decoder.NewTable(ctx, code.HZ, int(MaxWeight), threads())
	if err != nil {
		fmt.Println("Unable to build decode table: ", err)
		return
	}

	fmt.Printf("table: %v syndromes, %v ambiguous\n", table.Syndromes(), table.Collisions())

	err = codeio.SaveJSON(args[1], table)
	if err != nil {
		fmt.Println(err)
	}
}
