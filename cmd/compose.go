package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alienzj/centroFlye/config"
)

// composeCmd builds one monostring per read and writes them to stdout,
// one "read-id TAB symbols" line each.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Build monostrings from a StringDecomposer run",
	Run:   runCompose,
}

func init() {
	addInputFlags(composeCmd)
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) {
	for _, ms := range buildMonoStrings(config.New()) {
		fmt.Printf("%s\t%s\n", ms.SeqID, ms)
	}
}
