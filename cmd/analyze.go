package cmd

import (
	"github.com/nathanhack/stabilizer/cmd/internal/analyze"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Aliases: []string{"a"},
	Short:   "Analyzes saved codes",
	Long:    `Analyzes saved codes: [n,k,d] parameters and syndrome decode tables.`,
}

// analyzeParamsCmd represents the params command
var analyzeParamsCmd = &cobra.Command{
	Use:     "params",
	Aliases: []string{"p"},
	Short:   "Computes [n,k,d] code parameters",
	Long:    `Computes [n,k,d] code parameters: k from GF(2) ranks, d by enumeration for classical codes or the recorded family distance for CSS codes.`,
}

// analyzeParamsClassicalCmd represents the classical command
var analyzeParamsClassicalCmd = &cobra.Command{
	Use:     "classical CODE_JSON",
	Aliases: []string{"cl"},
	Short:   "Parameters of a classical code",
	Long:    `Parameters of a classical linear block code.`,
	Args:    cobra.ExactArgs(1),
	Run:     analyze.ClassicalParamsRun,
}

// analyzeParamsCSSCmd represents the css command
var analyzeParamsCSSCmd = &cobra.Command{
	Use:   "css CODE_JSON",
	Short: "Parameters of a CSS code",
	Long:  `Parameters of a CSS stabilizer code.`,
	Args:  cobra.ExactArgs(1),
	Run:   analyze.CSSParamsRun,
}

// analyzeTableCmd represents the table command
var analyzeTableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"t"},
	Short:   "Builds a syndrome decode table",
	Long:    `Builds a lookup table mapping each syndrome to the minimum weight error pattern producing it.`,
}

// analyzeTableClassicalCmd represents the classical command
var analyzeTableClassicalCmd = &cobra.Command{
	Use:     "classical CODE_JSON OUTPUT_TABLE_JSON",
	Aliases: []string{"cl"},
	Short:   "Decode table from a classical code's parity checks",
	Long:    `Decode table from a classical code's parity checks.`,
	Args:    cobra.ExactArgs(2),
	Run:     analyze.ClassicalTableRun,
}

// analyzeTableCSSCmd represents the css command
var analyzeTableCSSCmd = &cobra.Command{
	Use:   "css CODE_JSON OUTPUT_TABLE_JSON",
	Short: "Decode table from a CSS code's Z-type stabilizers",
	Long:  `Decode table for bit-flip errors from a CSS code's Z-type stabilizers.`,
	Args:  cobra.ExactArgs(2),
	Run:   analyze.CSSTableRun,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(analyzeParamsCmd)
	analyzeCmd.AddCommand(analyzeTableCmd)

	analyzeParamsCmd.AddCommand(analyzeParamsClassicalCmd)
	analyzeParamsCmd.AddCommand(analyzeParamsCSSCmd)
	analyzeParamsCmd.PersistentFlags().UintVarP(&analyze.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	analyzeParamsCmd.PersistentFlags().BoolVarP(&analyze.Verbose, "verbose", "v", false, "enable verbose info")

	analyzeTableCmd.AddCommand(analyzeTableClassicalCmd)
	analyzeTableCmd.AddCommand(analyzeTableCSSCmd)
	analyzeTableCmd.PersistentFlags().UintVarP(&analyze.MaxWeight, "weight", "w", 1, "the maximum error weight to enumerate, bounded by floor((d-1)/2) for unambiguous correction")
	analyzeTableCmd.PersistentFlags().UintVarP(&analyze.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	analyzeTableCmd.PersistentFlags().BoolVarP(&analyze.Verbose, "verbose", "v", false, "enable verbose info")
}
