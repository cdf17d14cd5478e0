package main

import (
	"github.com/spf13/cobra"
)

// newProfileCmd is a convenience alias for "minimize --profile": it always
// reports the C2 merge-attempt counters, without requiring callers to
// remember the flag name.
func newProfileCmd() *cobra.Command {
	var (
		ones, dc       string
		onesStr, dcStr string
		bits           int
		useXOR         bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "minimize and report merge-attempt counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var numBits *int
			if bits > 0 {
				numBits = &bits
			}
			if onesStr != "" || dcStr != "" {
				return runMinimizeStrings(cmd, onesStr, dcStr, numBits, useXOR, true)
			}
			return runMinimizeIntegers(cmd, ones, dc, numBits, useXOR, true)
		},
	}

	cmd.Flags().StringVar(&ones, "ones", "", "comma-separated minterms that must be covered")
	cmd.Flags().StringVar(&dc, "dc", "", "comma-separated don't-care minterms")
	cmd.Flags().StringVar(&onesStr, "ones-str", "", "comma-separated pre-encoded patterns that must be covered")
	cmd.Flags().StringVar(&dcStr, "dc-str", "", "comma-separated pre-encoded don't-care patterns")
	cmd.Flags().IntVar(&bits, "bits", 0, "bit width; inferred from the largest term when omitted")
	cmd.Flags().BoolVar(&useXOR, "xor", false, "enable XOR/XNOR term combination")
	return cmd
}
