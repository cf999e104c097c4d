// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkMul(b *testing.B) {
	var w, vp, m M4
	var q Q
	q.Euler(0.3, 1.1, -0.4)
	w.TRS(&V3{1, 2, 3}, &q, &V3{2, 2, 2})
	vp.Translate(0, 0, -5)
	v := V4{0.5, -0.5, 0.25, 1}
	var u V4
	b.Run("M4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m.Mul(&vp, &w)
		}
	})
	b.Run("V4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u.Mul(&m, &v)
		}
	})
	b.Run("V4.Mul2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u.Mul(&w, &v)
			u.Mul(&vp, &u)
		}
	})
	b.Log(m, u)
}

func BenchmarkNorm(b *testing.B) {
	v := V3{-2, 3, 9}
	var u V3
	for i := 0; i < b.N; i++ {
		u.Norm(&v)
	}
	b.Log(u)
}
