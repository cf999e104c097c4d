// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package node provides the elements of the scene graph.
package node

import (
	"github.com/gviegas/stereo/linear"
)

// Node represents a single node in a scene graph.
// Nodes have at most one immediate ancestor and
// an arbitrary number of immediate descendants.
//
// The world transform of a node is the world transform
// of its ancestor composed with its own local transform.
type Node struct {
	next *Node
	prev *Node
	sub  *Node

	// Name for the node.
	// It is not used by node code.
	Name string

	// Local transform, applied as T ⋅ R ⋅ S.
	Translation linear.V3
	Rotation    linear.Q
	Scale       linear.V3
}

// New creates an initialized node.
func New() *Node { return new(Node).Init() }

// Init initializes node n with the identity transform.
// It must not be called on a node that is part of a
// graph.
func (n *Node) Init() *Node {
	*n = Node{Name: n.Name}
	n.Rotation.I()
	n.Scale = linear.V3{1, 1, 1}
	return n
}

// Insert inserts node sub as immediate descendant
// of node n.
// sub must be either a descendant of n or part of
// an unrelated graph - it must not be an ancestor
// of node n.
func (n *Node) Insert(sub *Node) {
	sub.Remove()
	sub.next = n.sub
	sub.prev = n
	if n.sub != nil {
		n.sub.prev = sub
	}
	n.sub = sub
}

// Remove removes node n from its immediate ancestor.
func (n *Node) Remove() {
	// Node.prev is only nil when the node has no
	// ancestors, since the prev field of the first
	// immediate descendant refers to its immediate
	// ancestor.
	if n.prev != nil {
		if n.prev.sub == n {
			n.prev.sub = n.next
		} else {
			n.prev.next = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		}
		n.prev = nil
		n.next = nil
	}
}

// Parent returns the immediate ancestor of n, or nil
// if n is a root.
func (n *Node) Parent() *Node {
	for nd := n; nd.prev != nil; nd = nd.prev {
		if nd.prev.sub == nd {
			return nd.prev
		}
	}
	return nil
}

// Local returns the local transform of n.
func (n *Node) Local() (m linear.M4) {
	m.TRS(&n.Translation, &n.Rotation, &n.Scale)
	return
}

// World returns the world transform of n, computed from
// the local transforms of n and of all its ancestors.
func (n *Node) World() linear.M4 {
	w := n.Local()
	for p := n.Parent(); p != nil; p = p.Parent() {
		l := p.Local()
		w.Mul(&l, &w)
	}
	return w
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first.
// The scene graph must not be changed until this
// method returns.
func (n *Node) ForEach(f func(*Node)) {
	n.Until(func(nd *Node) bool {
		f(nd)
		return true
	})
}

// Until calls f for each descendant of node n.
// Ancestors are processed first. If f returns false,
// Until returns immediately.
// The scene graph must not be changed until this
// method returns.
func (n *Node) Until(f func(*Node) bool) {
	if n.sub == nil {
		return
	}
	que := []*Node{n.sub}
	for len(que) > 0 {
		for nd := que[0]; nd != nil; nd = nd.next {
			if !f(nd) {
				return
			}
			if sub := nd.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// ForEachWorld is like ForEach but also passes the
// world transform of each descendant, given that world
// is the world transform of n.
// Each local transform is evaluated once.
func (n *Node) ForEachWorld(world *linear.M4, f func(nd *Node, world *linear.M4)) {
	if n.sub == nil {
		return
	}
	type entry struct {
		sub   *Node
		world linear.M4
	}
	que := []entry{{n.sub, *world}}
	for len(que) > 0 {
		e := que[0]
		for nd := e.sub; nd != nil; nd = nd.next {
			l := nd.Local()
			var w linear.M4
			w.Mul(&e.world, &l)
			f(nd, &w)
			if sub := nd.sub; sub != nil {
				que = append(que, entry{sub, w})
			}
		}
		que = que[1:]
	}
}
