package cmd

import (
	"github.com/nathanhack/stabilizer/cmd/internal/tools/chansim"
	"github.com/nathanhack/stabilizer/cmd/internal/tools/chart"
	"github.com/nathanhack/stabilizer/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for codes",
	Long:    `Tools for codes`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Binary symmetric channel simulators using lookup table decoding`,
}

// toolsChansimClassicalCmd represents the classical command
var toolsChansimClassicalCmd = &cobra.Command{
	Use:     "classical CODE_JSON RESULT_JSON",
	Aliases: []string{"cl"},
	Short:   "A BSC simulator over a classical code",
	Long:    `A binary symmetric channel simulator over a classical code's parity checks`,
	Args:    cobra.ExactArgs(2),
	Run:     chansim.ClassicalRun,
}

// toolsChansimCSSCmd represents the css command
var toolsChansimCSSCmd = &cobra.Command{
	Use:   "css CODE_JSON RESULT_JSON",
	Short: "A bit-flip channel simulator over a CSS code",
	Long:  `A bit-flip channel simulator over a CSS code's Z-type stabilizers`,
	Args:  cobra.ExactArgs(2),
	Run:   chansim.CSSRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML chart",
	Long:    `Export to an HTML chart`,
	Run:     chart.ChartRun,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsChansimClassicalCmd)
	toolsChansimCmd.AddCommand(toolsChansimCSSCmd)

	toolsChansimCmd.PersistentFlags().UintVarP(&chansim.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsChansimCmd.PersistentFlags().Float64SliceVarP(&chansim.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsChansimCmd.PersistentFlags().UintVar(&chansim.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsChansimCmd.PersistentFlags().UintVarP(&chansim.MaxWeight, "weight", "w", 1, "the maximum error weight in the decode table")
	toolsChansimCmd.PersistentFlags().BoolVarP(&chansim.BitFlipDecode, "bitflip", "b", false, "use the iterative bit flipping decoder instead of a lookup table")
	toolsChansimCmd.PersistentFlags().UintVarP(&chansim.MaxIter, "iters", "i", 20, "max number of iterations the bitflip decoder is allowed")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "chart.html", "the output HTML file")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "the output CSV file")
	toolsCSVCmd.Flags().BoolVarP(&csv.ResidualError, "residual", "r", false, "export residual error instead of decode failure rate")
	toolsCSVCmd.Flags().BoolVarP(&csv.SyndromeMiss, "miss", "m", false, "export syndrome miss rate instead of decode failure rate")
}
