// Package cluster groups nearby weighted points in the plane, such as
// earthquake epicenters projected to mercator coordinates, so dense
// fields of points can be summarized at map zoom levels.
package cluster

import (
	"math"

	"github.com/pbarton666/earthquakes/quadtree"
)

// Point is a weighted position in the plane. A non-positive weight
// counts as one.
type Point struct {
	X, Y   float64
	Weight float64
}

// Cluster is a group of input points with their weighted center.
type Cluster struct {
	X, Y float64

	// indices of the clustered points
	Elems []int
}

// Make clusters pts using dist. It combines points that are less than
// dist apart, and then tries to subdivide those clusters so they are
// smaller than 2*dist in both directions.
func Make(pts []Point, dist float64) []Cluster {
	qpts := make([]quadtree.Point, len(pts))
	for i, p := range pts {
		qpts[i] = quadtree.Point{X: p.X, Y: p.Y}
	}
	qt := quadtree.New(qpts, quadtree.MinSize(dist/4))

	// merge the groups of any two points less than dist apart
	parent := make([]int, len(pts))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for i, p := range qpts {
		min := quadtree.Point{X: p.X - dist, Y: p.Y - dist}
		max := quadtree.Point{X: p.X + dist, Y: p.Y + dist}
		qt.VisitRect(min, max, func(j int) bool {
			if i != j {
				ri, rj := find(i), find(j)
				if ri != rj {
					parent[rj] = ri
				}
			}
			return true
		})
	}

	// collect groups in first-seen order so output is deterministic
	var order []int
	groups := make(map[int][]int)
	for i := range pts {
		r := find(i)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], i)
	}

	var res []Cluster
	for _, r := range order {
		res = append(res, split(pts, groups[r], dist)...)
	}
	return res
}

func split(pts []Point, g []int, dist float64) []Cluster {
	if len(g) == 1 {
		p := pts[g[0]]
		return []Cluster{{X: p.X, Y: p.Y, Elems: g}}
	}

	p0 := pts[g[0]]
	xmin, xmax := p0.X, p0.X
	ymin, ymax := p0.Y, p0.Y
	for _, i := range g[1:] {
		xmin = math.Min(xmin, pts[i].X)
		ymin = math.Min(ymin, pts[i].Y)
		xmax = math.Max(xmax, pts[i].X)
		ymax = math.Max(ymax, pts[i].Y)
	}

	cx, cy := centroid(pts, g)

	horz := xmax-xmin > ymax-ymin
	var size float64
	if horz {
		size = xmax - xmin
	} else {
		size = ymax - ymin
	}
	if size < dist*2 {
		// small enough
		return []Cluster{{X: cx, Y: cy, Elems: g}}
	}

	var one, two []int
	for _, i := range g {
		var v, c float64
		if horz {
			v, c = pts[i].X, cx
		} else {
			v, c = pts[i].Y, cy
		}
		if v < c {
			one = append(one, i)
		} else {
			two = append(two, i)
		}
	}
	if len(one) == 0 || len(two) == 0 {
		// subdivision failed
		return []Cluster{{X: cx, Y: cy, Elems: g}}
	}

	ax, ay := centroid(pts, one)
	bx, by := centroid(pts, two)
	var gap float64
	if horz {
		gap = ax - bx
	} else {
		gap = ay - by
	}
	if math.Abs(gap) < dist {
		// the halves are still too close together
		return []Cluster{{X: cx, Y: cy, Elems: g}}
	}

	return append(
		split(pts, one, dist),
		split(pts, two, dist)...)
}

func centroid(pts []Point, g []int) (x, y float64) {
	var w float64
	for _, i := range g {
		wi := pts[i].Weight
		if wi <= 0 {
			wi = 1
		}
		x += pts[i].X * wi
		y += pts[i].Y * wi
		w += wi
	}
	return x / w, y / w
}
