// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package material

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/stereo/engine/texture"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/surface"
)

// File is the YAML description of a material.
//
//	kind: water
//	cull: back
//	queue_offset: 1
//	depth_test: less_or_equal
//	depth_write: false
//	params:
//	  color: [0.2, 0.4, 0.8, 0.6]
//	  roughness: 0.1
//	textures:
//	  diffuse: {path: water.png, srgb: true, filter: linear}
type File struct {
	Kind        string               `yaml:"kind"`
	Cull        string               `yaml:"cull"`
	QueueOffset int                  `yaml:"queue_offset"`
	DepthTest   string               `yaml:"depth_test"`
	DepthWrite  *bool                `yaml:"depth_write"`
	Params      map[string]yaml.Node `yaml:"params"`
	Textures    map[string]TexFile   `yaml:"textures"`
}

var depthTests = map[string]surface.DepthTest{
	"less":             surface.DLess,
	"less_or_equal":    surface.DLessOrEqual,
	"greater":          surface.DGreater,
	"greater_or_equal": surface.DGreaterOrEqual,
	"equal":            surface.DEqual,
	"not_equal":        surface.DNotEqual,
	"always":           surface.DAlways,
	"never":            surface.DNever,
}

// TexFile is the YAML description of a texture slot.
// Exactly one of Path, Solid and Checker must be set.
type TexFile struct {
	Path    string       `yaml:"path"`
	SRGB    bool         `yaml:"srgb"`
	Solid   []float32    `yaml:"solid"`
	Checker *CheckerFile `yaml:"checker"`
	Filter  string       `yaml:"filter"`
	AddrU   string       `yaml:"addr_u"`
	AddrV   string       `yaml:"addr_v"`
}

// CheckerFile describes a generated checker image.
type CheckerFile struct {
	Size  int       `yaml:"size"`
	Count int       `yaml:"count"`
	A     []float32 `yaml:"a"`
	B     []float32 `yaml:"b"`
}

// Decode parses a YAML material description and creates
// the material. Relative texture paths are resolved
// against dir.
func Decode(data []byte, dir string) (Material, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%sparsing description: %w", matPrefix, err)
	}
	return f.Build(dir)
}

// Build creates the material that f describes.
func (f *File) Build(dir string) (Material, error) {
	d, err := f.Desc(dir)
	if err != nil {
		return nil, err
	}
	return New(d)
}

// Desc converts f into a Desc, loading any textures.
func (f *File) Desc(dir string) (*Desc, error) {
	var d Desc
	var err error
	if f.Kind == "" {
		d.Kind = KOpaque
	} else if d.Kind, err = ParseKind(f.Kind); err != nil {
		return nil, err
	}
	switch f.Cull {
	case "", "none":
		d.Cull = CullNone
	case "back":
		d.Cull = CullBack
	case "front":
		d.Cull = CullFront
	default:
		return nil, newMatErr("unknown cull mode: " + f.Cull)
	}
	d.QueueOffset = f.QueueOffset
	if f.DepthTest != "" {
		var ok bool
		if d.DepthTest, ok = depthTests[f.DepthTest]; !ok {
			return nil, newMatErr("unknown depth test: " + f.DepthTest)
		}
	}
	switch {
	case f.DepthWrite == nil:
		d.DepthWrite = surface.DWAuto
	case *f.DepthWrite:
		d.DepthWrite = surface.DWOn
	default:
		d.DepthWrite = surface.DWOff
	}
	decls := make(map[string]Type)
	for _, dc := range d.Kind.Decls() {
		decls[dc.Name] = dc.Type
	}
	for name, node := range f.Params {
		typ, ok := decls[name]
		if !ok {
			if typ, ok = inferType(&node); !ok {
				return nil, newMatErr("cannot infer type of " + name)
			}
		}
		if err := decodeParam(&d.Params, name, typ, &node); err != nil {
			return nil, err
		}
	}
	for slot, tf := range f.Textures {
		var r *texture.Ref
		switch slot {
		case "diffuse":
			r = &d.Textures.Diffuse
		case "emission":
			r = &d.Textures.Emission
		case "metal_rough":
			r = &d.Textures.MetalRough
		case "occlusion":
			r = &d.Textures.Occlusion
		default:
			return nil, newMatErr("unknown texture slot: " + slot)
		}
		if *r, err = tf.Ref(dir); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func inferType(node *yaml.Node) (Type, bool) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			return TBool, true
		}
		return TFloat, true
	case yaml.SequenceNode:
		switch len(node.Content) {
		case 2:
			return TVec2, true
		case 3:
			return TVec3, true
		case 4:
			return TVec4, true
		}
	}
	return 0, false
}

func decodeParam(p *Params, name string, typ Type, node *yaml.Node) error {
	wrap := func(err error) error {
		return fmt.Errorf("%sdecoding %s: %w", matPrefix, name, err)
	}
	switch typ {
	case TBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return wrap(err)
		}
		p.SetBool(name, b)
		return nil
	case TInt:
		var n int64
		if err := node.Decode(&n); err != nil {
			return wrap(err)
		}
		p.SetInt(name, n)
		return nil
	case TUInt:
		var n uint64
		if err := node.Decode(&n); err != nil {
			return wrap(err)
		}
		p.SetUInt(name, n)
		return nil
	case TFloat:
		var x float32
		if err := node.Decode(&x); err != nil {
			return wrap(err)
		}
		p.SetFloat(name, x)
		return nil
	}
	var s []float32
	if err := node.Decode(&s); err != nil {
		return wrap(err)
	}
	v, err := vec(s, typ.width())
	if err != nil {
		return newMatErr(name + ": " + err.Error())
	}
	p.set(name, value{typ: typ, v: v})
	return nil
}

// vec converts s into a vector of n components.
// A three-component color gets an alpha of 1.
func vec(s []float32, n int) (linear.V4, error) {
	var v linear.V4
	switch {
	case len(s) == n:
	case n == 4 && len(s) == 3:
		v[3] = 1
	default:
		return v, fmt.Errorf("expected %d components, got %d", n, len(s))
	}
	copy(v[:], s)
	return v, nil
}

// Ref creates the texture reference that tf describes.
func (tf *TexFile) Ref(dir string) (texture.Ref, error) {
	var r texture.Ref
	var err error
	n := 0
	if tf.Path != "" {
		n++
		path := tf.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if r.Image, err = texture.Load(path, tf.SRGB); err != nil {
			return r, err
		}
	}
	if tf.Solid != nil {
		n++
		c, err := vec(tf.Solid, 4)
		if err != nil {
			return r, newMatErr("solid: " + err.Error())
		}
		r.Image = texture.Solid(c)
	}
	if c := tf.Checker; c != nil {
		n++
		a, err := vec(c.A, 4)
		if err != nil {
			return r, newMatErr("checker: " + err.Error())
		}
		b, err := vec(c.B, 4)
		if err != nil {
			return r, newMatErr("checker: " + err.Error())
		}
		if r.Image, err = texture.Checker(c.Size, c.Size, c.Count, a, b); err != nil {
			return r, err
		}
	}
	if n != 1 {
		return r, newMatErr("texture needs exactly one of path, solid and checker")
	}
	switch tf.Filter {
	case "", "nearest":
		r.Sampler.Filter = texture.FNearest
	case "linear":
		r.Sampler.Filter = texture.FLinear
	default:
		return r, newMatErr("unknown filter: " + tf.Filter)
	}
	for _, x := range [...]struct {
		s string
		m *texture.AddrMode
	}{
		{tf.AddrU, &r.Sampler.AddrU},
		{tf.AddrV, &r.Sampler.AddrV},
	} {
		switch x.s {
		case "", "wrap":
			*x.m = texture.AWrap
		case "mirror":
			*x.m = texture.AMirror
		case "clamp":
			*x.m = texture.AClamp
		default:
			return r, newMatErr("unknown address mode: " + x.s)
		}
	}
	return r, nil
}
