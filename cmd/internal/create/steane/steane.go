package steane

import (
	"fmt"

	"github.com/nathanhack/stabilizer/cmd/internal/codeio"
	"github.com/nathanhack/stabilizer/css/steane"
	"github.com/spf13/cobra"
)

var SteaneRun = func(cmd *cobra.Command, args []string) {
	err := codeio.SaveJSON(args[0], steane.New())
	if err != nil {
		fmt.Println(err)
	}
}
