package cmd

import (
	"github.com/nathanhack/stabilizer/cmd/internal/create/bb"
	"github.com/nathanhack/stabilizer/cmd/internal/create/hamming"
	"github.com/nathanhack/stabilizer/cmd/internal/create/repetition"
	"github.com/nathanhack/stabilizer/cmd/internal/create/steane"
	"github.com/nathanhack/stabilizer/cmd/internal/create/toric"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new code",
	Long:    `create provides the ability to make a new code from the list of built-in families and save it so it can be used later by the analyze and tools commands.`,
}

// createClassicalCmd represents the classical command
var createClassicalCmd = &cobra.Command{
	Use:     "classical",
	Aliases: []string{"cl"},
	Short:   "creates classical linear block codes",
	Long:    `Creates classical linear block codes.`,
}

// createCSSCmd represents the css command
var createCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "creates CSS stabilizer codes",
	Long:  `Creates CSS stabilizer codes described by X- and Z-type parity check matrices.`,
}

// createRepetitionCmd represents the repetition command
var createRepetitionCmd = &cobra.Command{
	Use:     "repetition OUTPUT_CODE_JSON",
	Aliases: []string{"rep", "r"},
	Short:   "Creates an [n,1,n] repetition code",
	Long:    `Creates an [n,1,n] repetition code.`,
	Args:    cobra.ExactArgs(1),
	Run:     repetition.RepetitionRun,
}

// createHammingCmd represents the hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_CODE_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code",
	Long:    `Creates a new Hamming code.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

// createSteaneCmd represents the steane command
var createSteaneCmd = &cobra.Command{
	Use:     "steane OUTPUT_CODE_JSON",
	Aliases: []string{"s"},
	Short:   "Creates the [[7,1,3]] Steane code",
	Long:    `Creates the [[7,1,3]] Steane code from the Hamming(7,4) parity checks.`,
	Args:    cobra.ExactArgs(1),
	Run:     steane.SteaneRun,
}

// createToricCmd represents the toric command
var createToricCmd = &cobra.Command{
	Use:     "toric OUTPUT_CODE_JSON",
	Aliases: []string{"t"},
	Short:   "Creates a [[2L^2,2,L]] toric code",
	Long:    `Creates a [[2L^2,2,L]] toric code on an LxL periodic lattice.`,
	Args:    cobra.ExactArgs(1),
	Run:     toric.ToricRun,
}

// createGrossCmd represents the gross command
var createGrossCmd = &cobra.Command{
	Use:     "gross OUTPUT_CODE_JSON",
	Aliases: []string{"g"},
	Short:   "Creates the [[144,12,12]] gross code",
	Long:    `Creates the [[144,12,12]] bivariate bicycle gross code.`,
	Args:    cobra.ExactArgs(1),
	Run:     bb.GrossRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createClassicalCmd)
	createCmd.AddCommand(createCSSCmd)

	createClassicalCmd.AddCommand(createRepetitionCmd)
	createRepetitionCmd.Flags().UintVarP(&repetition.BlockLength, "length", "n", 3, "the block length n (>=2), the code repeats one bit n times")
	createRepetitionCmd.Flags().UintVarP(&repetition.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	createRepetitionCmd.Flags().BoolVarP(&repetition.Verbose, "verbose", "v", false, "enable verbose info")

	createClassicalCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParityBits, "parity", "p", 3, "the parity >=3, sets codeword size (cs) == 2^parity-1 and message size == cs-parity")
	createHammingCmd.Flags().UintVarP(&hamming.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	createHammingCmd.Flags().BoolVarP(&hamming.Verbose, "verbose", "v", false, "enable verbose info")

	createCSSCmd.AddCommand(createSteaneCmd)

	createCSSCmd.AddCommand(createToricCmd)
	createToricCmd.Flags().UintVarP(&toric.Lattice, "lattice", "l", 3, "the lattice size L (>=2), the code acts on 2L^2 qubits")

	createCSSCmd.AddCommand(createGrossCmd)
}
