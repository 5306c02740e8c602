// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a sticky-error wrapper around scientific.Scientific
// arithmetic, bundling a Precision and Rounding mode so a whole calculation
// can be written without checking an error after every single step.
//
// A Context catches the first error raised by a fallible operation
// (division by zero, square root of a negative number): once set, every
// further arithmetic call (Add, Sub, Mul, FMA, Neg, Abs, Quo, Sqrt) on the
// context becomes a no-op returning the zero value, until Err is called
// to retrieve and clear it; the New* constructors and Round do not check
// the error state. This mirrors
// db47h/decimal's NaN-catching Context, adapted to scientific's explicit
// error returns in place of Decimal's panicking NaN machinery.
package context

import "github.com/nb-decimal/scientific"

// A Context wraps a Precision and Rounding mode, and accumulates the first
// error encountered by a fallible operation.
type Context struct {
	prec scientific.Precision
	mode scientific.Rounding
	err  error
}

// New creates a context with the given precision and rounding mode.
func New(prec scientific.Precision, mode scientific.Rounding) *Context {
	return &Context{prec: prec, mode: mode}
}

func (c *Context) Precision() scientific.Precision { return c.prec }
func (c *Context) Mode() scientific.Rounding        { return c.mode }

func (c *Context) SetPrecision(p scientific.Precision) *Context {
	c.prec = p
	return c
}

func (c *Context) SetMode(m scientific.Rounding) *Context {
	c.mode = m
	return c
}

// Err returns the first error encountered since the last call to Err, and
// clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// NewInt64 returns x rounded to c's precision and mode.
func (c *Context) NewInt64(x int64) scientific.Scientific {
	return scientific.FromInt64(x).Round(c.prec, c.mode)
}

func (c *Context) NewUint64(x uint64) scientific.Scientific {
	return scientific.FromUint64(x).Round(c.prec, c.mode)
}

// NewString parses s and rounds it to c's precision and mode, reporting
// success the way (*decimal.Decimal).SetString does.
func (c *Context) NewString(s string) (scientific.Scientific, bool) {
	v, err := scientific.FromString(s)
	if err != nil {
		return scientific.Scientific{}, false
	}
	return v.Round(c.prec, c.mode), true
}

func (c *Context) NewFloat64(x float64) (scientific.Scientific, error) {
	v, err := scientific.FromFloat64(x)
	if err != nil {
		return scientific.Scientific{}, err
	}
	return v.Round(c.prec, c.mode), nil
}

// Round rounds x to c's precision and mode.
func (c *Context) Round(x scientific.Scientific) scientific.Scientific {
	return x.Round(c.prec, c.mode)
}

// Add returns the rounded sum x+y.
func (c *Context) Add(x, y scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Add(y).Round(c.prec, c.mode)
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Sub(y).Round(c.prec, c.mode)
}

// Mul returns the rounded product x*y.
func (c *Context) Mul(x, y scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Mul(y).Round(c.prec, c.mode)
}

// FMA returns x*y+u, rounded once.
func (c *Context) FMA(x, y, u scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Mul(y).Add(u).Round(c.prec, c.mode)
}

// Neg returns -x, rounded to c's precision (a no-op unless x already
// exceeds it).
func (c *Context) Neg(x scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Neg().Round(c.prec, c.mode)
}

func (c *Context) Abs(x scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	return x.Abs().Round(c.prec, c.mode)
}

// Quo returns the rounded quotient x/y. If y is zero, c's sticky error is
// set and every subsequent arithmetic call on c returns the zero value
// until Err is called.
func (c *Context) Quo(x, y scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	v, err := x.DivRound(y, c.prec, c.mode)
	if err != nil {
		c.err = err
		return scientific.Scientific{}
	}
	return v
}

// Sqrt returns the rounded square root of x. If x is negative, c's sticky
// error is set.
func (c *Context) Sqrt(x scientific.Scientific) scientific.Scientific {
	if c.err != nil {
		return scientific.Scientific{}
	}
	v, err := x.SqrtRound(c.prec, c.mode)
	if err != nil {
		c.err = err
		return scientific.Scientific{}
	}
	return v
}
