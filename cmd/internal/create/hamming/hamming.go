package hamming

import (
	"fmt"

	"github.com/nathanhack/stabilizer/classical/hamming"
	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/cmd/internal/interrupt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
	Threads    uint
	Verbose    bool
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	ctx, cancel := interrupt.Context()
	defer cancel()

	code, err := hamming.New(ctx, int(ParityBits), int(Threads))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}

	err = codeio.SaveJSON(args[0], code)
	if err != nil {
		fmt.Println(err)
	}
}
