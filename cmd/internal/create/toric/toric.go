package toric

import (
	"fmt"

	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/css/toric"
	"github.com/spf13/cobra"
)

var Lattice uint

var ToricRun = func(cmd *cobra.Command, args []string) {
	code, err := toric.New(int(Lattice))
	if err != nil {
		fmt.Println("Unable to create toric code: ", err)
		return
	}

	err = codeio.SaveJSON(args[0], code)
	if err != nil {
		fmt.Println(err)
	}
}
