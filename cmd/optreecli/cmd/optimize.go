package cmd

import (
	"fmt"

	"github.com/exprbuild/optree/internal/optimize"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <scenario>",
	Short: "Run a single canned expression through OptimizeVisitor",
	Long: `Run a single canned expression through OptimizeVisitor and print it
before and after the pass. Run with no arguments to list scenario names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("available scenarios:")
		printScenarioNames(exprScenarioNames())
		return nil
	}

	build, ok := exprScenarios[args[0]]
	if !ok {
		return fmt.Errorf("unknown scenario %q", args[0])
	}

	before := build()
	after := optimize.Optimize(before)

	fmt.Printf("before: %s\n", before.String())
	fmt.Printf("after:  %s\n", after.String())
	return nil
}
