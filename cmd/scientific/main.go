// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scientific is a small demonstration shell over the scientific
// arbitrary-precision decimal library: it exposes the core arithmetic,
// rounding and wire-format operations as subcommands.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nb-decimal/scientific"
)

var (
	errColor    = color.New(color.FgRed, color.Bold)
	resultColor = color.New(color.FgGreen)
	mantColor   = color.New(color.FgCyan)
	expColor    = color.New(color.FgYellow)
)

var (
	flagDigits   int64
	flagDecimals int64
	flagRound    string
)

var roundingModes = map[string]scientific.Rounding{
	"down":                 scientific.RoundDown,
	"up":                   scientific.RoundUp,
	"towards-zero":         scientific.RoundTowardsZero,
	"away-from-zero":       scientific.RoundAwayFromZero,
	"half-down":            scientific.RoundHalfDown,
	"half-up":              scientific.RoundHalfUp,
	"half-towards-zero":    scientific.RoundHalfTowardsZero,
	"half-away-from-zero":  scientific.RoundHalfAwayFromZero,
	"half-to-even":         scientific.RoundHalfToEven,
	"half-to-odd":          scientific.RoundHalfToOdd,
}

func parseArg(s string) (scientific.Scientific, error) {
	return scientific.FromString(s)
}

func precisionFromFlags() scientific.Precision {
	if flagDigits > 0 {
		return scientific.Digits(flagDigits)
	}
	return scientific.Decimals(flagDecimals)
}

func roundingFromFlag() (scientific.Rounding, error) {
	mode, ok := roundingModes[flagRound]
	if !ok {
		return 0, fmt.Errorf("unknown rounding mode %q", flagRound)
	}
	return mode, nil
}

func printResult(v scientific.Scientific) {
	resultColor.Print(v.String())
	fmt.Printf("  (mantissa ")
	mantColor.Print(v.RawMantissaDigits())
	fmt.Printf(", exponent ")
	expColor.Print(v.Exponent())
	fmt.Println(")")
}

func fail(err error) {
	errColor.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func main() {
	root := &cobra.Command{
		Use:   "scientific",
		Short: "Arbitrary-precision decimal arithmetic from the command line.",
	}

	root.PersistentFlags().Int64Var(&flagDigits, "digits", 0, "significant digits to keep (mutually exclusive with --decimals)")
	root.PersistentFlags().Int64Var(&flagDecimals, "decimals", 0, "digits after the decimal point to keep")
	root.PersistentFlags().StringVar(&flagRound, "round", "half-to-even", "rounding mode: "+roundingModeNames())
	root.MarkFlagsMutuallyExclusive("digits", "decimals")

	root.AddCommand(
		parseCmd(),
		addCmd(),
		subCmd(),
		mulCmd(),
		divCmd(),
		sqrtCmd(),
		powCmd(),
		encodeCmd(),
		decodeCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func roundingModeNames() string {
	names := []string{
		"down", "up", "towards-zero", "away-from-zero",
		"half-down", "half-up", "half-towards-zero", "half-away-from-zero",
		"half-to-even", "half-to-odd",
	}
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>",
		Short: "Parse and re-normalize a decimal literal.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			v, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			printResult(v)
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two values exactly.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				fail(err)
			}
			printResult(a.Add(b))
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <a> <b>",
		Short: "Subtract b from a exactly.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				fail(err)
			}
			printResult(a.Sub(b))
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two values exactly.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				fail(err)
			}
			printResult(a.Mul(b))
		},
	}
}

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div <a> <b>",
		Short: "Divide a by b to the requested precision.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				fail(err)
			}
			mode, err := roundingFromFlag()
			if err != nil {
				fail(err)
			}
			v, err := a.DivRound(b, precisionFromFlags(), mode)
			if err != nil {
				fail(err)
			}
			printResult(v)
		},
	}
}

func sqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <a>",
		Short: "Compute the square root to the requested precision.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			mode, err := roundingFromFlag()
			if err != nil {
				fail(err)
			}
			v, err := a.SqrtRound(precisionFromFlags(), mode)
			if err != nil {
				fail(err)
			}
			printResult(v)
		},
	}
}

func powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow <a> <n>",
		Short: "Raise a to the non-negative integer power n.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			var n uint64
			if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil {
				fail(fmt.Errorf("invalid exponent %q", args[1]))
			}
			printResult(a.Powi(n))
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the compact binary wire format of a value, hex-encoded.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			v, err := parseArg(args[0])
			if err != nil {
				fail(err)
			}
			fmt.Println(hex.EncodeToString(v.Bytes()))
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex-encoded compact wire format value.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				fail(err)
			}
			v, err := scientific.FromBytes(raw)
			if err != nil {
				fail(err)
			}
			printResult(v)
		},
	}
}
