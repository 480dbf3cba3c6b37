package bb

import (
	"fmt"

	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/css/bb"
	"github.com/spf13/cobra"
)

var GrossRun = func(cmd *cobra.Command, args []string) {
	code, err := bb.Gross()
	if err != nil {
		fmt.Println("Unable to create gross code: ", err)
		return
	}

	err = codeio.SaveJSON(args[0], code)
	if err != nil {
		fmt.Println(err)
	}
}
