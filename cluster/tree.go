package cluster

import "math"

// Tree arranges clusters in levels, doubling the clustering distance
// from one level to the next, so cluster queries at any map zoom
// reuse one precomputed hierarchy instead of re-clustering.
type Tree struct {
	root node
}

type node struct {
	x, y   float64
	weight float64
	bounds rect

	minDist float64 // children of this node are at least this far apart

	children []node

	elems []int // indices of all points under this node
}

// NewTree builds the cluster hierarchy for pts. The bottom level
// clusters points less than minDist apart; minDist must be positive.
func NewTree(pts []Point, minDist float64) *Tree {
	dist := minDist
	var nodes []node
	for _, c := range Make(pts, dist) {
		var w float64
		for _, i := range c.Elems {
			wi := pts[i].Weight
			if wi <= 0 {
				wi = 1
			}
			w += wi
		}
		nodes = append(nodes, node{
			x: c.X, y: c.Y,
			weight:  w,
			bounds:  rectAround(c.X, c.Y, dist),
			minDist: dist,
			elems:   c.Elems,
		})
	}

	for len(nodes) > 1 {
		dist *= 2
		above := make([]Point, len(nodes))
		for i, n := range nodes {
			above[i] = Point{X: n.x, Y: n.y, Weight: n.weight}
		}
		grps := Make(above, dist)
		below := nodes
		nodes = make([]node, 0, len(grps))
		for _, g := range grps {
			if len(g.Elems) == 1 {
				n := below[g.Elems[0]]
				n.minDist = dist
				n.bounds.extend(rectAround(n.x, n.y, dist))
				nodes = append(nodes, n)
				continue
			}
			merged := node{x: g.X, y: g.Y, minDist: dist}
			for _, i := range g.Elems {
				c := below[i]
				merged.children = append(merged.children, c)
				merged.bounds.extend(c.bounds)
				merged.weight += c.weight
				merged.elems = append(merged.elems, c.elems...)
			}
			merged.bounds.extend(rectAround(g.X, g.Y, dist))
			nodes = append(nodes, merged)
		}
	}

	if len(nodes) == 0 {
		return &Tree{}
	}
	return &Tree{root: nodes[0]}
}

// Query calls f for every cluster overlapping the rectangle
// x0,y0,x1,y1 whose members are at least minDist apart, descending
// the hierarchy only as deep as minDist allows. Clusters near but
// outside the rectangle may be included.
func (t *Tree) Query(x0, y0, x1, y1, minDist float64, f func(x, y float64, elems []int)) {
	q := treeQuery{bounds: rect{x0, y0, x1, y1}, minDist: minDist, f: f}
	q.visit(&t.root)
}

type treeQuery struct {
	bounds  rect
	minDist float64

	f func(x, y float64, elems []int)
}

func (q *treeQuery) visit(n *node) {
	if len(n.elems) == 0 || !q.bounds.overlaps(n.bounds) {
		return
	}
	descend := len(n.children) > 0
	for i := range n.children {
		if n.children[i].minDist < q.minDist {
			descend = false
			break
		}
	}
	if !descend {
		q.f(n.x, n.y, n.elems)
		return
	}
	for i := range n.children {
		q.visit(&n.children[i])
	}
}

type rect struct {
	x0, y0, x1, y1 float64
}

func rectAround(x, y, r float64) rect {
	return rect{x - r, y - r, x + r, y + r}
}

func (r *rect) extend(s rect) {
	if s.empty() {
		return
	}
	if r.empty() {
		*r = s
		return
	}
	r.x0 = math.Min(r.x0, s.x0)
	r.y0 = math.Min(r.y0, s.y0)
	r.x1 = math.Max(r.x1, s.x1)
	r.y1 = math.Max(r.y1, s.y1)
}

func (r rect) empty() bool {
	return r.x0 >= r.x1 || r.y0 >= r.y1
}

func (r rect) overlaps(s rect) bool {
	return !r.empty() && !s.empty() &&
		r.x0 < s.x1 && s.x0 < r.x1 &&
		r.y0 < s.y1 && s.y0 < r.y1
}
