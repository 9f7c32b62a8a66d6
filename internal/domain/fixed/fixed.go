// Package fixed provides deterministic fixed-point arithmetic for positions
// and velocities.
//
// Fixed is a 52.12 value backed by golang.org/x/image/math/fixed.Int52_12
// (1.0 = 4096). Multiplication rounds to nearest in integer arithmetic, so
// results are identical on every platform.
package fixed

import (
	"fmt"
	"math"

	xfixed "golang.org/x/image/math/fixed"
)

// Shift is the number of fractional bits.
const Shift = 12

// Scale is the internal value of 1.0.
const Scale = 1 << Shift

// Fixed is a signed 52.12 fixed-point number.
type Fixed xfixed.Int52_12

// Common constants
const (
	Zero Fixed = 0
	One  Fixed = Scale
	Half Fixed = Scale / 2
)

// FromInt converts an integer to fixed point.
func FromInt(i int) Fixed {
	return Fixed(i) << Shift
}

// FromFloat converts a float to the nearest fixed-point value. Use it for
// configuration only.
func FromFloat(f float64) Fixed {
	return Fixed(math.Round(f * Scale))
}

// Ratio returns num/den as fixed point, rounded toward zero.
func Ratio(num, den int) Fixed {
	return Fixed(int64(num) * Scale / int64(den))
}

// Raw returns a Fixed from its internal representation.
func Raw(v int64) Fixed {
	return Fixed(v)
}

func (f Fixed) x() xfixed.Int52_12 { return xfixed.Int52_12(f) }

// Mul multiplies two fixed-point values.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed(f.x().Mul(g.x()))
}

// MulInt multiplies by an integer without rounding.
func (f Fixed) MulInt(i int) Fixed {
	return f * Fixed(i)
}

// Div divides f by g, rounding toward zero. It panics when g is zero.
func (f Fixed) Div(g Fixed) Fixed {
	return (f << Shift) / g
}

// DivInt divides by an integer, rounding toward zero.
func (f Fixed) DivInt(i int) Fixed {
	return f / Fixed(i)
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return -f
}

// Abs returns |f|.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0 or 1.
func (f Fixed) Sign() int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

// Floor returns the largest integer not greater than f.
func (f Fixed) Floor() int {
	return f.x().Floor()
}

// Round returns the nearest integer, rounding halves up.
func (f Fixed) Round() int {
	return f.x().Round()
}

// Int truncates toward zero.
func (f Fixed) Int() int {
	if f < 0 {
		return -(-f).Floor()
	}
	return f.Floor()
}

// Float64 converts to a float, for rendering only.
func (f Fixed) Float64() float64 {
	return float64(f) / Scale
}

// Raw returns the internal representation.
func (f Fixed) Raw() int64 {
	return int64(f)
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.4g", f.Float64())
}

// Min returns the smaller of a and b.
func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

// FloorDiv divides two integers rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
