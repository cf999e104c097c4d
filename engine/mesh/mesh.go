// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package mesh implements the mesh data representation used
// in the engine's renderer.
package mesh

import (
	"errors"

	"github.com/gviegas/stereo/linear"
)

const prefix = "mesh: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Semantic specifies the intended use of a vertex attribute.
type Semantic int

// Semantics.
const (
	Position Semantic = 1 << iota
	Normal
	TexCoord0
	Color0

	MaxSemantic = iota
)

// String implements fmt.Stringer.
func (s Semantic) String() string {
	switch s {
	case Position:
		return "Position"
	case Normal:
		return "Normal"
	case TexCoord0:
		return "TexCoord0"
	case Color0:
		return "Color0"
	default:
		return "[!] invalid Semantic value"
	}
}

// Topology is the type of primitive topologies.
type Topology int

// Topologies.
const (
	TTriangle Topology = iota
	TTriStrip
)

// Vertex is the engine's vertex format.
type Vertex struct {
	Pos   linear.V3
	Norm  linear.V3
	UV    linear.V2
	Color linear.V4
}

// Data describes the vertices of a mesh.
// Every semantic other than Position is optional:
// a nil slice gives every vertex the default of
// that semantic, which is +Z for Normal, zero for
// TexCoord0 and opaque white for Color0.
type Data struct {
	Topology  Topology
	Positions []linear.V3
	Normals   []linear.V3
	UVs       []linear.V2
	Colors    []linear.V4
	// Indices is optional. If nil, vertices are
	// used in order.
	Indices []uint32
}

// Mask returns the semantics that d provides.
func (d *Data) Mask() (s Semantic) {
	if d.Positions != nil {
		s |= Position
	}
	if d.Normals != nil {
		s |= Normal
	}
	if d.UVs != nil {
		s |= TexCoord0
	}
	if d.Colors != nil {
		s |= Color0
	}
	return
}

// Mesh is an immutable indexed triangle list.
type Mesh struct {
	verts []Vertex
	tris  [][3]uint32
}

// New creates a new mesh.
func New(data *Data) (*Mesh, error) {
	var reason string
	n := 0
	if data != nil {
		n = len(data.Positions)
	}
	switch {
	case data == nil:
		reason = "nil data"
	case data.Mask()&Position == 0 || n == 0:
		reason = "no position semantic"
	case data.Normals != nil && len(data.Normals) != n:
		reason = "Normal count mismatch"
	case data.UVs != nil && len(data.UVs) != n:
		reason = "TexCoord0 count mismatch"
	case data.Colors != nil && len(data.Colors) != n:
		reason = "Color0 count mismatch"
	}
	if reason != "" {
		return nil, newErr(reason)
	}

	cnt := n
	if data.Indices != nil {
		cnt = len(data.Indices)
		for _, x := range data.Indices {
			if int(x) >= n {
				return nil, newErr("index out of bounds")
			}
		}
	}
	index := func(i int) uint32 {
		if data.Indices != nil {
			return data.Indices[i]
		}
		return uint32(i)
	}

	var tris [][3]uint32
	switch data.Topology {
	case TTriangle:
		if cnt%3 != 0 {
			return nil, newErr("invalid count for TTriangle")
		}
		tris = make([][3]uint32, 0, cnt/3)
		for i := 0; i < cnt; i += 3 {
			tris = append(tris, [3]uint32{index(i), index(i + 1), index(i + 2)})
		}
	case TTriStrip:
		if cnt < 3 {
			return nil, newErr("invalid count for TTriStrip")
		}
		tris = make([][3]uint32, 0, cnt-2)
		for i := 2; i < cnt; i++ {
			// Odd triangles swap the first two vertices
			// to keep a consistent winding.
			if i&1 == 0 {
				tris = append(tris, [3]uint32{index(i - 2), index(i - 1), index(i)})
			} else {
				tris = append(tris, [3]uint32{index(i - 1), index(i - 2), index(i)})
			}
		}
	default:
		return nil, newErr("undefined Topology constant")
	}

	verts := make([]Vertex, n)
	for i := range verts {
		v := Vertex{
			Pos:   data.Positions[i],
			Norm:  linear.V3{0, 0, 1},
			Color: linear.V4{1, 1, 1, 1},
		}
		if data.Normals != nil {
			v.Norm = data.Normals[i]
		}
		if data.UVs != nil {
			v.UV = data.UVs[i]
		}
		if data.Colors != nil {
			v.Color = data.Colors[i]
		}
		verts[i] = v
	}
	return &Mesh{verts: verts, tris: tris}, nil
}

// Vertices returns the vertices of m.
// The slice must not be modified.
func (m *Mesh) Vertices() []Vertex { return m.verts }

// Triangles returns the triangles of m as triples of
// vertex indices.
// The slice must not be modified.
func (m *Mesh) Triangles() [][3]uint32 { return m.tris }

// Plane creates a size by size quad on the XY plane,
// centered at the origin and facing +Z.
func Plane(size float32) *Mesh {
	h := size / 2
	m, err := New(&Data{
		Topology:  TTriStrip,
		Positions: []linear.V3{{-h, -h, 0}, {h, -h, 0}, {-h, h, 0}, {h, h, 0}},
		Normals:   []linear.V3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		UVs:       []linear.V2{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Cube creates an axis-aligned cube centered at the
// origin, with four vertices per face so that each
// face has its own normal and UV range.
func Cube(size float32) *Mesh {
	h := size / 2
	faces := [6]struct{ n, u, v linear.V3 }{
		{linear.V3{1, 0, 0}, linear.V3{0, 0, -1}, linear.V3{0, 1, 0}},
		{linear.V3{-1, 0, 0}, linear.V3{0, 0, 1}, linear.V3{0, 1, 0}},
		{linear.V3{0, 1, 0}, linear.V3{1, 0, 0}, linear.V3{0, 0, -1}},
		{linear.V3{0, -1, 0}, linear.V3{1, 0, 0}, linear.V3{0, 0, 1}},
		{linear.V3{0, 0, 1}, linear.V3{1, 0, 0}, linear.V3{0, 1, 0}},
		{linear.V3{0, 0, -1}, linear.V3{-1, 0, 0}, linear.V3{0, 1, 0}},
	}
	var d Data
	d.Topology = TTriangle
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range faces {
		base := uint32(len(d.Positions))
		for _, c := range corners {
			var p, t linear.V3
			p.Scale(h, &f.n)
			t.Scale(c[0]*h, &f.u)
			p.Add(&p, &t)
			t.Scale(c[1]*h, &f.v)
			p.Add(&p, &t)
			d.Positions = append(d.Positions, p)
			d.Normals = append(d.Normals, f.n)
			d.UVs = append(d.UVs, linear.V2{(c[0] + 1) / 2, (1 - c[1]) / 2})
		}
		d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m, err := New(&d)
	if err != nil {
		panic(err)
	}
	return m
}
