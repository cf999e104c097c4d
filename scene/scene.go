// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides functionality for creating
// scene graphs from descriptions and producing the
// frames that render them.
package scene

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/gviegas/stereo/engine"
	"github.com/gviegas/stereo/engine/mesh"
	"github.com/gviegas/stereo/light"
	"github.com/gviegas/stereo/linear"
	"github.com/gviegas/stereo/node"
)

const prefix = "scene: "

func newSceneErr(reason string) error { return errors.New(prefix + reason) }

// Defaults for values that a description omits.
const (
	dflWidth  = 256
	dflHeight = 256
	dflStep   = 1.0 / 60
	dflIPD    = 0.064
	dflFovY   = 60
	dflNear   = 0.1
	dflFar    = 100
)

// Scene defines a scene graph plus the views and
// lighting used to render it.
// It implements engine.Source.
type Scene struct {
	width   int
	height  int
	clock   float32
	step    float32
	views   []engine.View
	light   light.SH
	batches []engine.Batch
	root    *node.Node
	objs    map[*node.Node]*object
}

// object is a node that is drawn, or animated, or both.
type object struct {
	batch int // -1 if not drawn
	tint  linear.V4
	euler linear.V3
	spin  linear.V3
}

// Load reads the scene description at path.
// Relative texture paths are resolved against the
// directory of path.
func Load(path string) (*Scene, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Build(filepath.Dir(path))
}

// ReadFile reads and parses the scene description at
// path without building it.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%sreading description: %w", prefix, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%sparsing description: %w", prefix, err)
	}
	return &f, nil
}

// Parse parses a YAML scene description and creates
// the scene. Relative texture paths are resolved
// against dir.
// The scene is validated as if rendered into a target
// with s.Layers() layers.
func Parse(data []byte, dir string) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%sparsing description: %w", prefix, err)
	}
	return f.Build(dir)
}

// Build creates the scene that f describes.
func (f *File) Build(dir string) (*Scene, error) {
	s := &Scene{
		width:  f.Width,
		height: f.Height,
		clock:  f.Clock,
		step:   f.Step,
		root:   node.New(),
		objs:   make(map[*node.Node]*object),
	}
	if s.width == 0 {
		s.width = dflWidth
	}
	if s.height == 0 {
		s.height = dflHeight
	}
	if s.width < 0 || s.height < 0 {
		return nil, newSceneErr(fmt.Sprintf("invalid size %dx%d", s.width, s.height))
	}
	if s.step == 0 {
		s.step = dflStep
	}

	if err := s.buildViews(f); err != nil {
		return nil, err
	}
	var err error
	if s.light, err = f.Light.build(); err != nil {
		return nil, err
	}

	names := make(map[string]int, len(f.Batches))
	for i := range f.Batches {
		bf := &f.Batches[i]
		if bf.Name == "" {
			return nil, newSceneErr(fmt.Sprintf("batch %d: missing name", i))
		}
		if _, dup := names[bf.Name]; dup {
			return nil, newSceneErr("duplicate batch name: " + bf.Name)
		}
		names[bf.Name] = i
		ms, err := bf.Mesh.build()
		if err != nil {
			return nil, fmt.Errorf("%sbatch %s: %w", prefix, bf.Name, err)
		}
		mat, err := bf.Material.Build(dir)
		if err != nil {
			return nil, fmt.Errorf("%sbatch %s: %w", prefix, bf.Name, err)
		}
		s.batches = append(s.batches, engine.Batch{
			ID:       engine.NewBatchID(),
			Mesh:     ms,
			Material: mat,
		})
	}

	// Insert adds to the front, so siblings are
	// built in reverse to keep file order.
	for i := len(f.Nodes) - 1; i >= 0; i-- {
		if err := s.buildNode(&f.Nodes[i], s.root, names); err != nil {
			return nil, err
		}
	}

	if err := s.frame().Validate(s.Layers()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) buildViews(f *File) error {
	aspect := float32(s.width) / float32(s.height)
	if f.Rig != nil {
		r := f.Rig
		var rig engine.StereoRig
		var err error
		if rig.Position, err = v3(r.Position, linear.V3{0, 0, 3}); err != nil {
			return newSceneErr("rig.position: " + err.Error())
		}
		if rig.Target, err = v3(r.Target, linear.V3{}); err != nil {
			return newSceneErr("rig.target: " + err.Error())
		}
		if rig.Up, err = v3(r.Up, linear.V3{0, 1, 0}); err != nil {
			return newSceneErr("rig.up: " + err.Error())
		}
		rig.IPD = orDefault(r.IPD, dflIPD)
		rig.FovY = radians(orDefault(r.FovY, dflFovY))
		rig.Near = orDefault(r.Near, dflNear)
		rig.Far = orDefault(r.Far, dflFar)
		rig.Aspect = aspect
		if !(rig.IPD > 0) || !(rig.Near > 0) || !(rig.Far > rig.Near) {
			return newSceneErr("rig: invalid ipd or clip planes")
		}
		s.views = rig.Views()
	}
	for i := range f.Views {
		vf := &f.Views[i]
		eye, err := v3(vf.Eye, linear.V3{0, 0, 3})
		if err != nil {
			return newSceneErr(fmt.Sprintf("views[%d].eye: %s", i, err))
		}
		target, err := v3(vf.Target, linear.V3{})
		if err != nil {
			return newSceneErr(fmt.Sprintf("views[%d].target: %s", i, err))
		}
		up, err := v3(vf.Up, linear.V3{0, 1, 0})
		if err != nil {
			return newSceneErr(fmt.Sprintf("views[%d].up: %s", i, err))
		}
		near, far := orDefault(vf.Near, dflNear), orDefault(vf.Far, dflFar)
		if !(near > 0) || !(far > near) {
			return newSceneErr(fmt.Sprintf("views[%d]: invalid clip planes", i))
		}
		fovY := radians(orDefault(vf.FovY, dflFovY))
		s.views = append(s.views, engine.MonoView(eye, target, up, fovY, aspect, near, far, vf.Slot))
	}
	if len(s.views) == 0 {
		return newSceneErr("no views (need rig or views)")
	}
	return nil
}

func (s *Scene) buildNode(nf *NodeFile, parent *node.Node, batches map[string]int) error {
	nd := node.New()
	nd.Name = nf.Name
	var err error
	if nd.Translation, err = v3(nf.Translation, linear.V3{}); err != nil {
		return newSceneErr(fmt.Sprintf("node %q: translation: %s", nf.Name, err))
	}
	if nd.Scale, err = v3(nf.Scale, linear.V3{1, 1, 1}); err != nil {
		return newSceneErr(fmt.Sprintf("node %q: scale: %s", nf.Name, err))
	}
	obj := &object{batch: -1}
	if obj.euler, err = v3(nf.Rotation, linear.V3{}); err != nil {
		return newSceneErr(fmt.Sprintf("node %q: rotation: %s", nf.Name, err))
	}
	if obj.spin, err = v3(nf.Spin, linear.V3{}); err != nil {
		return newSceneErr(fmt.Sprintf("node %q: spin: %s", nf.Name, err))
	}
	if obj.tint, err = color(nf.Tint); err != nil {
		return newSceneErr(fmt.Sprintf("node %q: tint: %s", nf.Name, err))
	}
	obj.euler.Scale(math32.Pi/180, &obj.euler)
	obj.spin.Scale(math32.Pi/180, &obj.spin)
	if nf.Batch != "" {
		i, ok := batches[nf.Batch]
		if !ok {
			return newSceneErr(fmt.Sprintf("node %q: unknown batch %q", nf.Name, nf.Batch))
		}
		obj.batch = i
	}
	s.objs[nd] = obj
	parent.Insert(nd)
	for i := len(nf.Children) - 1; i >= 0; i-- {
		if err := s.buildNode(&nf.Children[i], nd, batches); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the size of the target that the scene
// is meant to be rendered into.
func (s *Scene) Size() (width, height int) { return s.width, s.height }

// Layers returns the number of target layers that the
// scene's views require.
func (s *Scene) Layers() int {
	n := 0
	for i := range s.views {
		n = max(n, s.views[i].Slot+1)
	}
	return n
}

// Clock returns the clock of the next frame.
func (s *Scene) Clock() float32 { return s.clock }

// Root returns the root of the scene graph.
func (s *Scene) Root() *node.Node { return s.root }

// Frame implements engine.Source.
// Each call advances the clock by the scene's step.
func (s *Scene) Frame(ctx context.Context) (*engine.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := s.frame()
	s.clock += s.step
	return f, nil
}

// frame poses the scene graph at the current clock
// and collects its instances.
func (s *Scene) frame() *engine.Frame {
	s.root.ForEach(func(nd *node.Node) {
		obj := s.objs[nd]
		var e linear.V3
		e.Scale(s.clock, &obj.spin)
		e.Add(&e, &obj.euler)
		nd.Rotation.Euler(e[0], e[1], e[2])
	})

	f := &engine.Frame{
		Clock:   s.clock,
		Views:   append([]engine.View(nil), s.views...),
		Batches: make([]engine.Batch, len(s.batches)),
		Light:   s.light,
	}
	for i := range s.batches {
		f.Batches[i] = s.batches[i]
		f.Batches[i].Instances = nil
	}
	var id linear.M4
	id.I()
	s.root.ForEachWorld(&id, func(nd *node.Node, world *linear.M4) {
		obj := s.objs[nd]
		if obj.batch < 0 {
			return
		}
		b := &f.Batches[obj.batch]
		b.Instances = append(b.Instances, len(f.Instances))
		f.Instances = append(f.Instances, engine.Instance{
			World: *world,
			Color: obj.tint,
			Batch: b.ID,
		})
	})
	return f
}

func orDefault(x, dfl float32) float32 {
	if x == 0 {
		return dfl
	}
	return x
}

func radians(deg float32) float32 { return deg * math32.Pi / 180 }

func v3(s []float32, dfl linear.V3) (linear.V3, error) {
	switch len(s) {
	case 0:
		return dfl, nil
	case 3:
		return linear.V3{s[0], s[1], s[2]}, nil
	}
	return linear.V3{}, fmt.Errorf("want 3 components, have %d", len(s))
}

func color(s []float32) (linear.V4, error) {
	switch len(s) {
	case 0:
		return linear.V4{1, 1, 1, 1}, nil
	case 3:
		return linear.V4{s[0], s[1], s[2], 1}, nil
	case 4:
		return linear.V4{s[0], s[1], s[2], s[3]}, nil
	}
	return linear.V4{}, fmt.Errorf("want 3 or 4 components, have %d", len(s))
}

// build converts lf into spherical harmonics.
// An empty description yields light.Default().
func (lf *LightFile) build() (light.SH, error) {
	if len(lf.Ambient) == 0 && len(lf.Directional) == 0 {
		return light.Default(), nil
	}
	var sh light.SH
	amb, err := v3(lf.Ambient, linear.V3{})
	if err != nil {
		return sh, newSceneErr("light.ambient: " + err.Error())
	}
	sh.Ambient(&amb)
	for i := range lf.Directional {
		df := &lf.Directional[i]
		var d light.Directional
		if d.Dir, err = v3(df.Dir, linear.V3{0, -1, 0}); err != nil {
			return sh, newSceneErr(fmt.Sprintf("light.directional[%d].dir: %s", i, err))
		}
		if d.Dir.Dot(&d.Dir) == 0 {
			return sh, newSceneErr(fmt.Sprintf("light.directional[%d].dir: zero vector", i))
		}
		if d.Color, err = v3(df.Color, linear.V3{1, 1, 1}); err != nil {
			return sh, newSceneErr(fmt.Sprintf("light.directional[%d].color: %s", i, err))
		}
		d.Intensity = df.Intensity
		if df.Intensity == 0 {
			d.Intensity = 1
		}
		sh.Add(&d)
	}
	return sh, nil
}

// build creates the mesh that mf describes.
func (mf *MeshFile) build() (*mesh.Mesh, error) {
	size := orDefault(mf.Size, 1)
	if !(size > 0) {
		return nil, errors.New("mesh size must be positive")
	}
	switch mf.Shape {
	case "plane":
		return mesh.Plane(size), nil
	case "", "cube":
		return mesh.Cube(size), nil
	}
	return nil, errors.New("unknown mesh shape: " + mf.Shape)
}
