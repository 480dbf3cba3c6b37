package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var OutputFile string
var ResidualError bool
var SyndromeMiss bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*codeio.SimulationStats, len(args))
	var err error
	probabilities := make(map[float64]bool)
	for i, resultFile := range args {
		stats[i], err = codeio.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
		for p := range stats[i].Stats {
			probabilities[p] = true
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	probabilitiesList := make([]float64, 0, len(probabilities))
	for p := range probabilities {
		probabilitiesList = append(probabilitiesList, p)
	}
	slices.Sort(probabilitiesList)

	header := []string{"Results File"}
	for _, p := range probabilitiesList {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err = w.Write(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(args[i], filepath.Ext(args[i]))

		for j, p := range probabilitiesList {
			v, has := s.Stats[p]
			if has {
				switch {
				case ResidualError:
					record[j+1] = fmt.Sprintf("%v", v.ResidualError.Mean)
				case SyndromeMiss:
					record[j+1] = fmt.Sprintf("%v", v.SyndromeMiss.Mean)
				default:
					record[j+1] = fmt.Sprintf("%v", v.DecodeFailure.Mean)
				}
			}
		}

		err = w.Write(record)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
