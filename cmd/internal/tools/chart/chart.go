package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var OutputFile string

var ChartRun = func(cmd *cobra.Command, args []string) {
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

	xvalues, xnames := xAxisAndValues(probabilities)

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Decoder Results",
			Subtitle: "Failure Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Crossover Probability",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Decode Failure Rate",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	for i, s := range stats {
		bar.AddSeries(args[i], series(s, xvalues))
	}

	bar.Render(f)
}

func xAxisAndValues(probabilities map[float64]bool) ([]float64, []string) {
	nums := make([]float64, 0, len(probabilities))
	strs := make([]string, 0, len(probabilities))
	for k := range probabilities {
		nums = append(nums, k)
	}

	slices.Sort(nums)

	for _, n := range nums {
		strs = append(strs, fmt.Sprint(n))
	}

	return nums, strs
}

func series(stat *codeio.SimulationStats, values []float64) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: x.DecodeFailure.Mean,
		}
	}
	return results
}
