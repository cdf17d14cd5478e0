package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pborges/qmcx/internal/qmc"
)

func newMinimizeCmd() *cobra.Command {
	var (
		ones, dc        string
		onesStr, dcStr  string
		bits            int
		useXOR, profile bool
	)

	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "minimize a Boolean function given as minterms or patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			var numBits *int
			if bits > 0 {
				numBits = &bits
			}

			if onesStr != "" || dcStr != "" {
				return runMinimizeStrings(cmd, onesStr, dcStr, numBits, useXOR, profile)
			}
			return runMinimizeIntegers(cmd, ones, dc, numBits, useXOR, profile)
		},
	}

	cmd.Flags().StringVar(&ones, "ones", "", "comma-separated minterms that must be covered")
	cmd.Flags().StringVar(&dc, "dc", "", "comma-separated don't-care minterms")
	cmd.Flags().StringVar(&onesStr, "ones-str", "", "comma-separated pre-encoded patterns that must be covered")
	cmd.Flags().StringVar(&dcStr, "dc-str", "", "comma-separated pre-encoded don't-care patterns")
	cmd.Flags().IntVar(&bits, "bits", 0, "bit width; inferred from the largest term when omitted")
	cmd.Flags().BoolVar(&useXOR, "xor", false, "enable XOR/XNOR term combination")
	cmd.Flags().BoolVar(&profile, "profile", false, "report merge-attempt counters on stderr")
	return cmd
}

func runMinimizeIntegers(cmd *cobra.Command, ones, dc string, numBits *int, useXOR, profile bool) error {
	onesVals, err := parseUints(ones)
	if err != nil {
		return errors.Wrap(err, "parsing --ones")
	}
	dcVals, err := parseUints(dc)
	if err != nil {
		return errors.Wrap(err, "parsing --dc")
	}

	if profile {
		result, p, ok := qmc.SimplifyWithProfile(onesVals, dcVals, numBits, useXOR)
		if !ok {
			return errors.New("no result")
		}
		printProfile(cmd, p)
		printPatterns(cmd, result)
		return nil
	}

	result, ok := qmc.Simplify(onesVals, dcVals, numBits, useXOR)
	if !ok {
		return errors.New("no result")
	}
	printPatterns(cmd, result)
	return nil
}

func runMinimizeStrings(cmd *cobra.Command, onesStr, dcStr string, numBits *int, useXOR, profile bool) error {
	ones := parsePatterns(onesStr)
	dc := parsePatterns(dcStr)

	if profile {
		result, p, ok := qmc.SimplifyStringsWithProfile(ones, dc, numBits, useXOR)
		if !ok {
			return errors.New("no result")
		}
		printProfile(cmd, p)
		printPatterns(cmd, result)
		return nil
	}

	result, ok := qmc.SimplifyStrings(ones, dc, numBits, useXOR)
	if !ok {
		return errors.New("no result")
	}
	printPatterns(cmd, result)
	return nil
}

func parseUints(csv string) ([]uint64, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	out := make([]uint64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid minterm %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func parsePatterns(csv string) []qmc.Pattern {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]qmc.Pattern, 0, len(parts))
	for _, part := range parts {
		out = append(out, qmc.Pattern(strings.TrimSpace(part)))
	}
	return out
}

func printPatterns(cmd *cobra.Command, result []qmc.Pattern) {
	strs := make([]string, len(result))
	for i, p := range result {
		strs[i] = string(p)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strs, ","))
}

func printProfile(cmd *cobra.Command, p qmc.Profile) {
	fmt.Fprintf(cmd.ErrOrStderr(), "cmp=%d xor=%d xnor=%d\n", p.Cmp, p.Xor, p.Xnor)
}
