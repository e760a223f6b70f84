package sweep

import (
	"math"

	"github.com/google/btree"
)

// The advancing front is the x-monotone polyline separating the triangulated
// region below from the points not yet swept. It's a doubly linked list of
// nodes, bracketed by the head and tail sentinels, plus an ordered index so
// that locating the node under a new point is O(log n) instead of a walk.
//
// Nodes are keyed by (x, y). X values along the front only repeat for a moment
// during a point event: the new node lands right after a node with the same x,
// and that node is filled away before anything else looks it up. The newer node
// is always the higher one, so the key order still matches the list order.

type node struct {
	point *Point
	// The triangle directly below the front edge from this node to next. The
	// tail has none.
	triangle   TriangleID
	next, prev *node
}

type advancingFront struct {
	head, tail *node
	index      *btree.BTreeG[*node]
}

const frontIndexDegree = 8

func nodeLess(a, b *node) bool {
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	return a.point.Y < b.point.Y
}

func newAdvancingFront(head, tail *node) *advancingFront {
	f := &advancingFront{
		head:  head,
		tail:  tail,
		index: btree.NewG(frontIndexDegree, nodeLess),
	}
	head.prev = nil
	head.next = tail
	tail.prev = head
	tail.next = nil
	f.index.ReplaceOrInsert(head)
	f.index.ReplaceOrInsert(tail)
	return f
}

// Link n into the front right after prev.
func (f *advancingFront) insertAfter(prev, n *node) {
	n.prev = prev
	n.next = prev.next
	prev.next.prev = n
	prev.next = n
	if _, replaced := f.index.ReplaceOrInsert(n); replaced {
		fatalf(ErrInternalInvariant, "front already has a node at %v", n.point)
	}
}

// Unlink n. Its own next and prev are left alone, because the fill loops step
// from a node they just removed.
func (f *advancingFront) remove(n *node) {
	if n == f.head || n == f.tail {
		fatalf(ErrInternalInvariant, "cannot remove a front sentinel")
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	if _, ok := f.index.Delete(n); !ok {
		fatalf(ErrInternalInvariant, "front node %v missing from index", n.point)
	}
}

// The node whose interval [node.x, node.next.x) contains x.
func (f *advancingFront) locateNode(x float64) *node {
	var found *node
	pivot := &node{point: &Point{X: x, Y: math.Inf(1)}}
	f.index.DescendLessOrEqual(pivot, func(n *node) bool {
		found = n
		return false
	})
	return found
}

// The node for exactly this point, or nil if the point isn't on the front.
func (f *advancingFront) locatePoint(p *Point) *node {
	n, ok := f.index.Get(&node{point: p})
	if !ok || n.point != p {
		return nil
	}
	return n
}

func (f *advancingFront) len() int {
	return f.index.Len()
}
