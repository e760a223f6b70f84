package sweep

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFront(xs ...float64) (*advancingFront, []*node) {
	head := &node{point: &Point{-100, -1}, triangle: NoTriangle}
	tail := &node{point: &Point{100, -1}, triangle: NoTriangle}
	f := newAdvancingFront(head, tail)
	nodes := []*node{head}
	prev := head
	for _, x := range xs {
		n := &node{point: &Point{x, 0}, triangle: NoTriangle}
		f.insertAfter(prev, n)
		nodes = append(nodes, n)
		prev = n
	}
	return f, append(nodes, tail)
}

func TestLocateNode(t *testing.T) {
	f, nodes := testFront(-10, 0, 5, 20)

	cases := []struct {
		x    float64
		want int
	}{
		{-50, 0},
		{-10, 1},
		{-9.5, 1},
		{0, 2},
		{4.999, 2},
		{5, 3},
		{19, 3},
		{20, 4},
		{99, 4},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("x=%v", c.x), func(t *testing.T) {
			assert.Same(t, nodes[c.want], f.locateNode(c.x))
		})
	}
}

func TestLocatePoint(t *testing.T) {
	f, nodes := testFront(-10, 0, 5)
	for _, n := range nodes {
		assert.Same(t, n, f.locatePoint(n.point))
	}
	assert.Nil(t, f.locatePoint(&Point{0, 0}), "an equal point that isn't on the front")
	assert.Nil(t, f.locatePoint(&Point{1, 1}))
}

func TestFrontRemove(t *testing.T) {
	f, nodes := testFront(-10, 0, 5)
	middle := nodes[2]
	f.remove(middle)

	assert.Same(t, nodes[3], nodes[1].next)
	assert.Same(t, nodes[1], nodes[3].prev)
	assert.Same(t, nodes[3], middle.next, "a removed node keeps its links")
	assert.Nil(t, f.locatePoint(middle.point))
	assert.Same(t, nodes[1], f.locateNode(2))
	assert.Equal(t, 4, f.len())
}

func TestFrontRejectsBadUpdates(t *testing.T) {
	f, nodes := testFront(0)

	err := catch(func() { f.remove(nodes[0]) })
	assert.ErrorIs(t, err, ErrInternalInvariant)

	err = catch(func() {
		f.insertAfter(nodes[1], &node{point: nodes[1].point})
	})
	assert.ErrorIs(t, err, ErrInternalInvariant)
}

func TestFrontSameX(t *testing.T) {
	// A new point lands directly above a front node for a moment during a
	// point event. The higher one sorts after.
	f, nodes := testFront(0, 10)
	above := &node{point: &Point{0, 3}}
	f.insertAfter(nodes[1], above)

	assert.Same(t, above, f.locateNode(0))
	assert.Same(t, above, f.locateNode(1))
	assert.Same(t, nodes[1], f.locatePoint(nodes[1].point))

	f.remove(nodes[1])
	assert.Same(t, above, nodes[0].next)
	require.Equal(t, 4, f.len())
}
