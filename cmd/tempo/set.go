package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muyo/tempo"
)

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <secs[.nanos]>",
		Short: "Set the realtime clock to the given offset from the Unix epoch (requires privilege)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseSystemTime(args[0])
			if err != nil {
				return err
			}

			return st.Set()
		},
	}
}

func parseSystemTime(in string) (tempo.SystemTime, error) {
	var (
		secsPart  = in
		nanosPart = ""
	)

	if i := strings.IndexByte(in, '.'); i >= 0 {
		secsPart, nanosPart = in[:i], in[i+1:]
	}

	secs, err := strconv.ParseInt(secsPart, 10, 64)
	if err != nil || secs < 0 {
		return tempo.SystemTime{}, fmt.Errorf("[%s] is not a valid epoch offset", in)
	}

	var nanos uint32
	if nanosPart != "" {
		if len(nanosPart) > 9 {
			return tempo.SystemTime{}, fmt.Errorf("[%s] has sub-nanosecond precision", in)
		}

		// Right-pad to a full nanosecond field, so "5.5" reads as 5s 500ms.
		n, err := strconv.ParseUint(nanosPart+strings.Repeat("0", 9-len(nanosPart)), 10, 32)
		if err != nil {
			return tempo.SystemTime{}, fmt.Errorf("[%s] is not a valid epoch offset", in)
		}
		nanos = uint32(n)
	}

	return tempo.SystemTimeOf(secs, nanos), nil
}
