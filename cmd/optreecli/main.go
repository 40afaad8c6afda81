package main

import (
	"fmt"
	"os"

	"github.com/exprbuild/optree/cmd/optreecli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
