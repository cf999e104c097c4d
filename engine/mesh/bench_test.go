// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"testing"

	"github.com/gviegas/stereo/linear"
)

const ntrisBench = 1000

func BenchmarkNew(b *testing.B) {
	d := Data{
		Topology:  TTriStrip,
		Positions: make([]linear.V3, ntrisBench+2),
		Normals:   make([]linear.V3, ntrisBench+2),
		UVs:       make([]linear.V2, ntrisBench+2),
	}
	for i := range d.Positions {
		d.Positions[i] = linear.V3{float32(i / 2), float32(i & 1), 0}
	}
	b.ResetTimer()
	for range b.N {
		if _, err := New(&d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCube(b *testing.B) {
	for range b.N {
		Cube(1)
	}
}
