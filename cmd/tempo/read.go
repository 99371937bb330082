package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muyo/tempo"
)

func newReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read [clock ...]",
		Short: "Print the current reading of the given clocks (all by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			clocks := tempo.Supported()

			if len(args) > 0 {
				clocks = clocks[:0]
				for _, name := range args {
					kind, ok := tempo.LookupClock(name)
					if !ok {
						return fmt.Errorf("unknown clock [%s] on this platform", name)
					}
					clocks = append(clocks, kind)
				}
			}

			for _, kind := range clocks {
				ts, err := tempo.ReadClock(kind)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%20s  %d.%09d\n", kind, ts.Secs(), ts.Nanos())
			}

			return nil
		},
	}
}
