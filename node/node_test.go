// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package node

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gviegas/stereo/linear"
)

// fmt.Stringer for testing only.
// n.Name must have been set in order to produce
// meaningful output.
func (n *Node) String() string {
	const s = `
(%5s) <-> (%5s) <-> (%5s)
               |
               v
            (%5s)
`
	nd := [4]*Node{n.prev, n, n.next, n.sub}
	nm := [4]string{}
	for i := range nd {
		if nd[i] != nil {
			nm[i] = nd[i].Name
		} else {
			nm[i] = "<nil>"
		}
	}
	return fmt.Sprintf(s, nm[0], nm[1], nm[2], nm[3])
}

// logGraph outputs the scene graph whose root is n.
func (n *Node) logGraph(t *testing.T) {
	s := n.String()
	n.ForEach(func(n *Node) {
		s += n.String()
	})
	t.Log(s)
}

// testInsert calls n.Insert and checks that it works
// as expected.
func (n *Node) testInsert(sub *Node, t *testing.T) {
	n.Insert(sub)
	if n.sub != sub {
		t.Fatalf("n.Insert: n.sub\nhave %p\nwant %p\n%v", n.sub, sub, n)
	}
	if sub.prev != n {
		t.Fatalf("n.Insert: sub.prev\nhave %p\nwant %p\n%v", sub.prev, n, sub)
	}
}

// testRemove calls n.Remove and checks that it works
// as expected.
func (n *Node) testRemove(t *testing.T) {
	var anc, sub *Node
	if x := n.prev; x != nil && n == x.sub {
		anc = x
		sub = n.next
	}
	n.Remove()
	if n.next != nil {
		t.Fatalf("n.Remove: n.next\nhave %p\nwant nil\n%v", n.next, n)
	}
	if n.prev != nil {
		t.Fatalf("n.Remove: n.prev\nhave %p\nwant nil\n%v", n.prev, n)
	}
	if anc != nil && anc.sub != sub {
		t.Fatalf("n.Remove: anc.sub\nhave %p\nwant %p\n%v", anc.sub, sub, anc)
	}
}

func TestNode(t *testing.T) {
	n1 := New()
	n2 := New()
	n3 := New()
	n4 := New()
	n5 := New()
	n1.Name = "n1"
	n2.Name = "n2"
	n3.Name = "n3"
	n4.Name = "n4"
	n5.Name = "n5"

	n1.testInsert(n2, t)
	n1.testInsert(n3, t)
	n1.testInsert(n4, t)
	n3.testInsert(n5, t)
	n1.logGraph(t)
	n2.testRemove(t)
	n3.testRemove(t)
	n1.testRemove(t)
	n5.testRemove(t)
	n4.testRemove(t)
	n1.logGraph(t)
	n3.logGraph(t)

	n5.testInsert(n4, t)
	n4.testInsert(n3, t)
	n3.testInsert(n2, t)
	n2.testInsert(n1, t)
	n5.logGraph(t)
	n1.testRemove(t)
	n2.testRemove(t)
	n3.testRemove(t)
	n4.testRemove(t)
	n5.logGraph(t)
	n4.logGraph(t)
	n3.logGraph(t)
	n2.logGraph(t)
	n1.logGraph(t)

	n1.testInsert(n2, t)
	n2.testInsert(n3, t)
	n1.testInsert(n2, t)
	n1.logGraph(t)
	n1.testInsert(n3, t)
	n1.logGraph(t)
	n2.logGraph(t)
	n2.testRemove(t)
	n3.testInsert(n2, t)
	n1.logGraph(t)

}

func TestParent(t *testing.T) {
	n1, n2, n3, n4 := New(), New(), New(), New()
	if p := n1.Parent(); p != nil {
		t.Fatalf("n1.Parent\nhave %p\nwant nil", p)
	}
	n1.Insert(n2)
	n1.Insert(n3)
	n1.Insert(n4)
	for _, n := range [...]*Node{n2, n3, n4} {
		if p := n.Parent(); p != n1 {
			t.Fatalf("n.Parent\nhave %p\nwant %p", p, n1)
		}
	}
	n3.Remove()
	if p := n3.Parent(); p != nil {
		t.Fatalf("n3.Parent (removed)\nhave %p\nwant nil", p)
	}
	n4.Insert(n3)
	if p := n3.Parent(); p != n4 {
		t.Fatalf("n3.Parent\nhave %p\nwant %p", p, n4)
	}
}

func TestOrder(t *testing.T) {
	root := New()
	a, b, c, d := New(), New(), New(), New()
	a.Name, b.Name, c.Name, d.Name = "a", "b", "c", "d"
	root.Insert(a)
	a.Insert(c)
	c.Insert(d)
	root.Insert(b)
	depth := map[*Node]int{root: 0}
	var seen []string
	root.ForEach(func(n *Node) {
		p := n.Parent()
		dp, ok := depth[p]
		if !ok {
			t.Fatalf("ForEach: %s visited before its ancestor", n.Name)
		}
		depth[n] = dp + 1
		seen = append(seen, n.Name)
	})
	if len(seen) != 4 {
		t.Fatalf("ForEach: visited\nhave %v\nwant 4 nodes", seen)
	}
	var n int
	root.Until(func(*Node) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("Until: calls\nhave %d\nwant 2", n)
	}
}

func eqM4(a, b *linear.M4) bool {
	for i := range a {
		for j := range a[i] {
			if d := a[i][j] - b[i][j]; d > 1e-5 || d < -1e-5 {
				return false
			}
		}
	}
	return true
}

func TestWorld(t *testing.T) {
	root := New()
	root.Translation = linear.V3{0, 0, -5}
	arm := New()
	arm.Rotation.Rotate(math32.Pi/2, &linear.V3{0, 1, 0})
	arm.Scale = linear.V3{2, 2, 2}
	hand := New()
	hand.Translation = linear.V3{1, 0, 0}
	root.Insert(arm)
	arm.Insert(hand)

	var id linear.M4
	id.I()
	if l := New().Local(); !eqM4(&l, &id) {
		t.Fatalf("New().Local\nhave %v\nwant %v", l, id)
	}

	// The hand's origin: scaled to 2 along +X, rotated
	// a quarter turn about +Y to -Z, then moved to -5.
	w := hand.World()
	o := linear.V4{0, 0, 0, 1}
	o.Mul(&w, &o)
	if want := (linear.V4{0, 0, -7, 1}); !eqM4(&linear.M4{o}, &linear.M4{want}) {
		t.Fatalf("hand.World: origin\nhave %v\nwant %v", o, want)
	}

	n := 0
	root.ForEachWorld(&id, func(nd *Node, world *linear.M4) {
		want := nd.World()
		// root's own transform is not included, since
		// world was given as identity.
		var r, rl linear.M4
		rl = root.Local()
		r.Invert(&rl)
		want.Mul(&r, &want)
		if !eqM4(world, &want) {
			t.Fatalf("ForEachWorld: %p\nhave %v\nwant %v", nd, *world, want)
		}
		n++
	})
	if n != 2 {
		t.Fatalf("ForEachWorld: calls\nhave %d\nwant 2", n)
	}

	rw := root.World()
	root.ForEachWorld(&rw, func(nd *Node, world *linear.M4) {
		if want := nd.World(); !eqM4(world, &want) {
			t.Fatalf("ForEachWorld: %p\nhave %v\nwant %v", nd, *world, want)
		}
	})
}
