package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the CLI's own version, set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "optreecli",
	Short: "Inspect the expression-tree optimizer and block builder",
	Long: `optreecli exercises the optimizer/block-builder core on a handful of
canned example programs: optimize prints an expression before and after
the pass, build prints the final block.

It is not a parser frontend: "scenario" names select among a small
built-in registry of example ASTs rather than reading source text.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted by every command; has no effect on output")
}

func printScenarioNames(names []string) {
	for _, n := range names {
		fmt.Println(" -", n)
	}
}
