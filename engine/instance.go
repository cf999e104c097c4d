// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/google/uuid"

	"github.com/gviegas/stereo/engine/material"
	"github.com/gviegas/stereo/engine/mesh"
	"github.com/gviegas/stereo/linear"
)

// BatchID identifies a draw batch.
type BatchID uuid.UUID

// NewBatchID returns a new random BatchID.
func NewBatchID() BatchID { return BatchID(uuid.New()) }

// String implements fmt.Stringer.
func (id BatchID) String() string { return uuid.UUID(id).String() }

// Instance is one drawable object's transform and tint
// for a single frame.
type Instance struct {
	World linear.M4
	Color linear.V4
	Batch BatchID
}

// Batch is a set of instances that share a mesh and a
// material, and is drawn with a single instanced draw
// covering every instance in every view.
type Batch struct {
	ID       BatchID
	Mesh     *mesh.Mesh
	Material material.Material
	// Instances indexes Frame.Instances.
	// Each referred Instance must have Batch set
	// to ID.
	Instances []int
}

// DrawCount returns the number of combined indices of b
// when drawn into nview views.
func (b *Batch) DrawCount(nview int) int { return len(b.Instances) * nview }
