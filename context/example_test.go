// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context_test

import (
	"errors"
	"fmt"

	"github.com/nb-decimal/scientific"
	"github.com/nb-decimal/scientific/context"
)

var four = scientific.FromInt64(-4)
var two = scientific.FromInt64(2)

// solve solves the quadratic equation ax^2+bx+c=0 using ctx's rounding
// mode and precision. It can fail, e.g. a=0, b=2, c=-3 divides by zero
// computing x0, so the caller must check the error.
func solve(ctx *context.Context, a, b, c scientific.Scientific) (x0, x1 scientific.Scientific, err error) {
	d := ctx.Mul(a, four)
	d = ctx.Mul(d, c)
	d = ctx.FMA(b, b, d)
	if d.IsSignNegative() {
		return scientific.Scientific{}, scientific.Scientific{}, errors.New("no real roots")
	}
	d = ctx.Sqrt(d)

	twoA := ctx.Mul(a, two)
	negB := ctx.Neg(b)

	x0 = ctx.Quo(ctx.Add(negB, d), twoA)
	x1 = ctx.Quo(ctx.Sub(negB, d), twoA)

	if err = ctx.Err(); err != nil {
		return scientific.Scientific{}, scientific.Scientific{}, fmt.Errorf("error computing roots: %w", err)
	}
	return x0, x1, nil
}

// Example demonstrates solving a quadratic equation with a shared
// Context.
func Example() {
	ctx := context.New(scientific.Digits(6), scientific.RoundHalfToEven)
	a, b, c := ctx.NewInt64(1), ctx.NewInt64(2), ctx.NewInt64(-3)
	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve x^2+2x-3: %v\n", err)
	} else {
		fmt.Printf("roots of x^2+2x-3: %s, %s\n", x0, x1)
	}

	a = scientific.ZERO
	_, _, err = solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve 0x^2+2x-3: %v\n", err)
	}
	// Output:
	// roots of x^2+2x-3: 1, -3
	// failed to solve 0x^2+2x-3: error computing roots: scientific: division by zero
}
