// Package quadtree implements a planar point index for efficient
// position based lookups.
package quadtree

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Tree indexes a fixed set of points for rectangle and circle
// queries. It is built once and read-only afterwards.
type Tree struct {
	pts  []Point
	root node

	maxLeaf int     // nodes with fewer points are not subdivided
	minSize float64 // node size (width or height) that is not subdivided further
}

type node struct {
	min, max Point
	children []node // up to 4 subtrees, empty ones omitted
	leaves   []int  // indices into Tree.pts
}

// New builds a Tree over pts. The slice is retained and must not be
// modified while the tree is in use.
func New(pts []Point, opts ...Option) *Tree {
	var min, max Point
	if len(pts) > 0 {
		min, max = pts[0], pts[0]
		for _, p := range pts[1:] {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}

	// grow the bounds into a square so quadrants stay square
	size := math.Max(max.X-min.X, max.Y-min.Y)
	cx, cy := (min.X+max.X)/2, (min.Y+max.Y)/2
	min = Point{math.Min(min.X, cx-size/2), math.Min(min.Y, cy-size/2)}
	max = Point{math.Max(max.X, cx+size/2), math.Max(max.Y, cy+size/2)}

	leaves := make([]int, len(pts))
	for i := range leaves {
		leaves[i] = i
	}

	t := &Tree{
		pts:     pts,
		root:    node{min: min, max: max, leaves: leaves},
		maxLeaf: 16,
		minSize: size / math.Pow(2, 24),
	}
	for _, o := range opts {
		o.set(t)
	}
	t.subdivide(&t.root)
	return t
}

func (t *Tree) subdivide(n *node) {
	if len(n.leaves) < t.maxLeaf || n.max.X-n.min.X <= t.minSize {
		return // no need to or cannot subdivide
	}

	c := Point{(n.min.X + n.max.X) / 2, (n.min.Y + n.max.Y) / 2}

	// quadrant order is X then Y:
	//  0 | 1
	// ---+---
	//  2 | 3
	var quads [4][]int
	for _, i := range n.leaves {
		q := 0
		if t.pts[i].X >= c.X {
			q++
		}
		if t.pts[i].Y >= c.Y {
			q += 2
		}
		quads[q] = append(quads[q], i)
	}

	n.leaves = nil
	for q, leaves := range quads {
		if len(leaves) == 0 {
			continue
		}
		child := node{min: n.min, max: c, leaves: leaves}
		if q&1 != 0 {
			child.min.X, child.max.X = c.X, n.max.X
		}
		if q&2 != 0 {
			child.min.Y, child.max.Y = c.Y, n.max.Y
		}
		n.children = append(n.children, child)
	}
	for i := range n.children {
		t.subdivide(&n.children[i])
	}
}

// VisitNear is like VisitRect but visit(i) might be called with
// indices of points outside the rectangle min, max.
func (t *Tree) VisitNear(min, max Point, visit func(i int) (ok bool)) {
	t.root.query(min, max, visit)
}

// VisitRect calls visit(i) for every point within the rectangle
// min, max, stopping early when visit returns false.
func (t *Tree) VisitRect(min, max Point, visit func(i int) (ok bool)) {
	t.root.query(min, max, func(i int) bool {
		p := t.pts[i]
		if min.X <= p.X && p.X <= max.X && min.Y <= p.Y && p.Y <= max.Y {
			return visit(i)
		}
		return true
	})
}

// VisitCircle calls visit(i) for every point within the circle at c
// with radius r, stopping early when visit returns false.
func (t *Tree) VisitCircle(c Point, r float64, visit func(i int) (ok bool)) {
	min := Point{c.X - r, c.Y - r}
	max := Point{c.X + r, c.Y + r}
	t.root.query(min, max, func(i int) bool {
		p := t.pts[i]
		if math.Hypot(p.X-c.X, p.Y-c.Y) <= r {
			return visit(i)
		}
		return true
	})
}

// Rect appends the indices of all points within the rectangle
// min, max to p, and returns the resulting slice.
func (t *Tree) Rect(min, max Point, p []int) []int {
	t.VisitRect(min, max, func(i int) bool {
		p = append(p, i)
		return true
	})
	return p
}

// Circle appends the indices of all points within the circle at c
// with radius r to p, and returns the resulting slice.
func (t *Tree) Circle(c Point, r float64, p []int) []int {
	t.VisitCircle(c, r, func(i int) bool {
		p = append(p, i)
		return true
	})
	return p
}

func (n *node) query(min, max Point, visit func(i int) bool) bool {
	if max.X < n.min.X || n.max.X < min.X ||
		max.Y < n.min.Y || n.max.Y < min.Y {
		return true
	}
	for i := range n.children {
		if !n.children[i].query(min, max, visit) {
			return false
		}
	}
	for _, i := range n.leaves {
		if !visit(i) {
			return false
		}
	}
	return true
}

type Option interface {
	set(t *Tree)
}

// MaxLeaf sets the maximum number of points in an undivided node.
func MaxLeaf(n int) Option { return maxLeaf(n) }

type maxLeaf int

func (o maxLeaf) set(t *Tree) {
	t.maxLeaf = int(o)
}

// MaxDepth sets the maximum subdivision depth for the tree.
// Zero means no subdivision.
func MaxDepth(d int) Option { return maxDepth(d) }

type maxDepth int

func (o maxDepth) set(t *Tree) {
	size := t.root.max.X - t.root.min.X
	t.minSize = size / math.Pow(2, float64(o))
}

// MinSize sets the minimum node size that can be subdivided further.
func MinSize(s float64) Option { return minSize(s) }

type minSize float64

func (o minSize) set(t *Tree) {
	t.minSize = float64(o)
}
