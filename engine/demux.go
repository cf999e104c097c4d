// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

// Demux decodes the combined draw index k of an instanced
// draw covering nview views into the instance and view
// indices it refers to.
//
// For k in [0, N*nview), instance is in [0, N) and view
// is in [0, nview). Demux panics if nview is zero.
func Demux(k, nview int) (instance, view int) {
	return k / nview, k % nview
}

// Compose is the inverse of Demux.
func Compose(instance, view, nview int) int {
	return instance*nview + view
}
