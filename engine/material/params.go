// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"hash/fnv"

	"github.com/gviegas/stereo/linear"
)

// ID identifies a named parameter.
type ID uint64

// ParamID returns the ID of the parameter called name
// (the 64-bit FNV-1a hash of name).
func ParamID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return ID(h.Sum64())
}

// Type is the type of parameter values.
type Type int

// Parameter types.
const (
	TFloat Type = iota
	TColor
	TVec2
	TVec3
	TVec4
	TInt
	TUInt
	TBool
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TFloat:
		return "float"
	case TColor:
		return "color"
	case TVec2:
		return "vec2"
	case TVec3:
		return "vec3"
	case TVec4:
		return "vec4"
	case TInt:
		return "int"
	case TUInt:
		return "uint"
	case TBool:
		return "bool"
	}
	return "invalid"
}

// width returns the number of float components of t.
func (t Type) width() int {
	switch t {
	case TColor, TVec4:
		return 4
	case TVec3:
		return 3
	case TVec2:
		return 2
	default:
		return 1
	}
}

type value struct {
	typ Type
	v   linear.V4
	n   int64
}

// Params is a set of named material parameters.
// The zero value is an empty set ready for use.
type Params struct {
	m map[ID]value
}

func (p *Params) set(name string, val value) *Params {
	if p.m == nil {
		p.m = make(map[ID]value)
	}
	p.m[ParamID(name)] = val
	return p
}

// SetFloat sets a TFloat parameter.
func (p *Params) SetFloat(name string, x float32) *Params {
	return p.set(name, value{typ: TFloat, v: linear.V4{x}})
}

// SetColor sets a TColor parameter (linear RGBA).
func (p *Params) SetColor(name string, c linear.V4) *Params {
	return p.set(name, value{typ: TColor, v: c})
}

// SetVec2 sets a TVec2 parameter.
func (p *Params) SetVec2(name string, v linear.V2) *Params {
	return p.set(name, value{typ: TVec2, v: linear.V4{v[0], v[1]}})
}

// SetVec3 sets a TVec3 parameter.
func (p *Params) SetVec3(name string, v linear.V3) *Params {
	return p.set(name, value{typ: TVec3, v: linear.V4{v[0], v[1], v[2]}})
}

// SetVec4 sets a TVec4 parameter.
func (p *Params) SetVec4(name string, v linear.V4) *Params {
	return p.set(name, value{typ: TVec4, v: v})
}

// SetInt sets a TInt parameter.
func (p *Params) SetInt(name string, n int64) *Params {
	return p.set(name, value{typ: TInt, n: n})
}

// SetUInt sets a TUInt parameter.
func (p *Params) SetUInt(name string, n uint64) *Params {
	return p.set(name, value{typ: TUInt, n: int64(n)})
}

// SetBool sets a TBool parameter.
func (p *Params) SetBool(name string, b bool) *Params {
	var n int64
	if b {
		n = 1
	}
	return p.set(name, value{typ: TBool, n: n})
}

// Has returns whether p contains a parameter called name
// whose type is typ.
func (p *Params) Has(name string, typ Type) bool {
	v, ok := p.m[ParamID(name)]
	return ok && v.typ == typ
}

// Len returns the number of parameters in p.
func (p *Params) Len() int { return len(p.m) }

// Clone returns a copy of p.
func (p *Params) Clone() *Params {
	c := &Params{m: make(map[ID]value, len(p.m))}
	for k, v := range p.m {
		c.m[k] = v
	}
	return c
}

func (p *Params) get(name string, typ Type) (value, bool) {
	v, ok := p.m[ParamID(name)]
	if !ok || v.typ != typ {
		return value{}, false
	}
	return v, true
}

// Float returns the value of a TFloat parameter.
func (p *Params) Float(name string) (float32, bool) {
	v, ok := p.get(name, TFloat)
	return v.v[0], ok
}

// Color returns the value of a TColor parameter.
func (p *Params) Color(name string) (linear.V4, bool) {
	v, ok := p.get(name, TColor)
	return v.v, ok
}

// Vec2 returns the value of a TVec2 parameter.
func (p *Params) Vec2(name string) (linear.V2, bool) {
	v, ok := p.get(name, TVec2)
	return linear.V2{v.v[0], v.v[1]}, ok
}

// Vec3 returns the value of a TVec3 parameter.
func (p *Params) Vec3(name string) (linear.V3, bool) {
	v, ok := p.get(name, TVec3)
	return v.v.XYZ(), ok
}

// Vec4 returns the value of a TVec4 parameter.
func (p *Params) Vec4(name string) (linear.V4, bool) {
	v, ok := p.get(name, TVec4)
	return v.v, ok
}

// Int returns the value of a TInt parameter.
func (p *Params) Int(name string) (int64, bool) {
	v, ok := p.get(name, TInt)
	return v.n, ok
}

// UInt returns the value of a TUInt parameter.
func (p *Params) UInt(name string) (uint64, bool) {
	v, ok := p.get(name, TUInt)
	return uint64(v.n), ok
}

// Bool returns the value of a TBool parameter.
func (p *Params) Bool(name string) (bool, bool) {
	v, ok := p.get(name, TBool)
	return v.n != 0, ok
}

// Decl declares a parameter that a material kind reads.
type Decl struct {
	Name string
	Type Type
	dfl  value
}

func declFloat(name string, x float32) Decl {
	return Decl{name, TFloat, value{typ: TFloat, v: linear.V4{x}}}
}

func declV(name string, typ Type, v linear.V4) Decl {
	return Decl{name, typ, value{typ: typ, v: v}}
}

func declBool(name string, b bool) Decl {
	var n int64
	if b {
		n = 1
	}
	return Decl{name, TBool, value{typ: TBool, n: n}}
}

// Default returns the default value of d as a
// four-component vector (booleans and integers are
// stored in the first component).
func (d *Decl) Default() linear.V4 {
	switch d.Type {
	case TInt, TUInt, TBool:
		return linear.V4{float32(d.dfl.n)}
	}
	return d.dfl.v
}

var (
	commonDecls = []Decl{
		declV("color", TColor, linear.V4{1, 1, 1, 1}),
		declV("tex_trans", TVec4, linear.V4{0, 0, 1, 1}),
	}
	litDecls = []Decl{
		declFloat("metallic", 0),
		declFloat("roughness", 1),
		declV("emission_factor", TColor, linear.V4{0, 0, 0, 0}),
	}
	waterDecls = []Decl{
		declFloat("time", 1),
		declV("ripple", TVec4, linear.V4{0.02, 0.02, 12, 12}),
		declV("scroll", TVec2, linear.V4{0.05, 0.03}),
	}
	brickDecls = []Decl{
		declFloat("edge_pos", 1.5),
		declV("edge_limit", TVec2, linear.V4{0.1, 0.9}),
		declV("size_factors", TVec4, linear.V4{4, 8, 0.15, 0.002}),
		declV("line_color", TVec3, linear.V4{0.54, 0.54, 0.54}),
		declBool("use_occlusion", true),
	}
	cutoutDecls = []Decl{
		declFloat("cutoff", 0.5),
	}
	blinkDecls = []Decl{
		declFloat("time", 1),
	}
)

// Decls returns the parameters that materials of kind k
// read, with their types and defaults.
func (k Kind) Decls() []Decl {
	d := append([]Decl(nil), commonDecls...)
	switch k {
	case KOpaque:
		d = append(d, litDecls...)
	case KWater:
		d = append(d, litDecls...)
		d = append(d, waterDecls...)
	case KBrick:
		d = append(d, litDecls...)
		d = append(d, brickDecls...)
	case KCutout:
		d = append(d, cutoutDecls...)
	case KBlink:
		d = append(d, blinkDecls...)
	default:
		return nil
	}
	return d
}

// block is the resolved, fixed-layout parameter record
// of a material: declared values, or their defaults.
type block map[string]value

func resolve(k Kind, p *Params) block {
	b := make(block)
	for _, d := range k.Decls() {
		if v, ok := p.get(d.Name, d.Type); ok {
			b[d.Name] = v
		} else {
			b[d.Name] = d.dfl
		}
	}
	return b
}

func (b block) float(name string) float32 { return b[name].v[0] }
func (b block) v4(name string) linear.V4 { return b[name].v }
func (b block) v3(name string) linear.V3 { v := b[name].v; return v.XYZ() }
func (b block) v2(name string) linear.V2 { v := b[name].v; return linear.V2{v[0], v[1]} }
func (b block) boolean(name string) bool { return b[name].n != 0 }
