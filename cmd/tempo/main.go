package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Inspect and set the system's clocks",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       version,
	}

	root.AddCommand(newReadCommand(), newSetCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
