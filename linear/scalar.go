// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the set of types that Clamp accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns x limited to the [lo, hi] interval.
func Clamp[T Number](x, lo, hi T) T { return max(lo, min(x, hi)) }

// Saturate returns x limited to the [0, 1] interval.
func Saturate[T constraints.Float](x T) T { return Clamp(x, 0, 1) }

// Lerp returns the linear interpolation between a
// and b by t.
func Lerp[T constraints.Float](a, b, t T) T { return a + (b-a)*t }

// Frac returns the fractional part of x, in the
// [0, 1) interval for finite x.
func Frac(x float32) float32 { return x - math32.Floor(x) }

// Mod returns x modulo y, with the sign of y.
func Mod(x, y float32) float32 { return x - y*math32.Floor(x/y) }
