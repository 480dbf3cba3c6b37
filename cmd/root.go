package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stabilizer",
	Short: "Classical analysis tools for quantum error-correcting codes",
	Long: `stabilizer builds parity check matrices for classical and CSS stabilizer codes,
derives syndrome decode tables, computes [n,k,d] code parameters, and
simulates decoder performance over noisy channels.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
