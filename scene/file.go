// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/stereo/engine/material"
)

// File is the YAML description of a scene.
//
//	width: 640
//	height: 480
//	step: 0.016
//	rig: {position: [0, 1, 4], ipd: 0.064, fov_y: 60}
//	light:
//	  ambient: [0.1, 0.1, 0.12]
//	  directional:
//	    - {dir: [-0.3, -1, -0.2], color: [1, 1, 1]}
//	batches:
//	  - name: crate
//	    mesh: {shape: cube, size: 1}
//	    material: {kind: brick, cull: back}
//	nodes:
//	  - name: a
//	    batch: crate
//	    translation: [0, 0.5, 0]
//	    spin: [0, 45, 0]
//
// Angles are given in degrees.
type File struct {
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Clock   float32     `yaml:"clock"`
	Step    float32     `yaml:"step"`
	Rig     *RigFile    `yaml:"rig"`
	Views   []ViewFile  `yaml:"views"`
	Light   LightFile   `yaml:"light"`
	Batches []BatchFile `yaml:"batches"`
	Nodes   []NodeFile  `yaml:"nodes"`
}

// RigFile describes a stereo rig, whose views use
// slots 0 (left) and 1 (right).
type RigFile struct {
	Position []float32 `yaml:"position"`
	Target   []float32 `yaml:"target"`
	Up       []float32 `yaml:"up"`
	IPD      float32   `yaml:"ipd"`
	FovY     float32   `yaml:"fov_y"`
	Near     float32   `yaml:"near"`
	Far      float32   `yaml:"far"`
}

// ViewFile describes a single view.
type ViewFile struct {
	Eye    []float32 `yaml:"eye"`
	Target []float32 `yaml:"target"`
	Up     []float32 `yaml:"up"`
	FovY   float32   `yaml:"fov_y"`
	Near   float32   `yaml:"near"`
	Far    float32   `yaml:"far"`
	Slot   int       `yaml:"slot"`
}

// LightFile describes the lighting environment.
type LightFile struct {
	Ambient     []float32 `yaml:"ambient"`
	Directional []DirFile `yaml:"directional"`
}

// DirFile describes a directional light.
type DirFile struct {
	Dir       []float32 `yaml:"dir"`
	Color     []float32 `yaml:"color"`
	Intensity float32   `yaml:"intensity"`
}

// BatchFile describes a mesh and material pair that
// nodes refer to by name.
type BatchFile struct {
	Name     string        `yaml:"name"`
	Mesh     MeshFile      `yaml:"mesh"`
	Material material.File `yaml:"material"`
}

// MeshFile describes a generated mesh.
type MeshFile struct {
	Shape string  `yaml:"shape"`
	Size  float32 `yaml:"size"`
}

// NodeFile describes a node of the scene graph.
// A node with Batch set is drawn with that batch's
// mesh and material.
type NodeFile struct {
	Name        string     `yaml:"name"`
	Batch       string     `yaml:"batch"`
	Translation []float32  `yaml:"translation"`
	Rotation    []float32  `yaml:"rotation"`
	Scale       []float32  `yaml:"scale"`
	Tint        []float32  `yaml:"tint"`
	Spin        []float32  `yaml:"spin"`
	Children    []NodeFile `yaml:"children"`
}
