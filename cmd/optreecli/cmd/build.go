package cmd

import (
	"fmt"

	"github.com/exprbuild/optree/internal/block"
	"github.com/exprbuild/optree/internal/printer"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <scenario>",
	Short: "Run a canned statement list through BlockBuilder.toBlock",
	Long: `Run a canned statement list through a fresh optimizing BlockBuilder
and print the resulting block. Run with no arguments to list scenario
names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("available scenarios:")
		printScenarioNames(blockScenarioNames())
		return nil
	}

	stmts, ok := blockScenarios[args[0]]
	if !ok {
		return fmt.Errorf("unknown scenario %q", args[0])
	}

	b := block.New(true, nil)
	for _, s := range stmts() {
		b.Add(s)
	}

	fmt.Print(printer.Print(b.ToBlock()))
	return nil
}
