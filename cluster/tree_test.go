package cluster

import (
	"math/rand"
	"testing"
)

func TestTreeCoversAllPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var pts []Point
	for i := 0; i < 1000; i++ {
		pts = append(pts, Point{
			X:      (rng.Float64() - 0.5) * 360,
			Y:      (rng.Float64() - 0.5) * 360,
			Weight: 1,
		})
	}

	tree := NewTree(pts, 5e-5)
	seen := make(map[int]bool)
	tree.Query(-180, -180, 180, 180, 0, func(x, y float64, elems []int) {
		for _, e := range elems {
			if seen[e] {
				t.Errorf("point %v reported twice", e)
			}
			seen[e] = true
		}
	})
	if len(seen) != len(pts) {
		t.Errorf("query yields %v points, want %v", len(seen), len(pts))
	}
}

func TestTreeZoomDetail(t *testing.T) {
	pts := []Point{
		{0, 0, 1},
		{0.01, 0, 1},
		{0, 0.01, 1},
		{30, 30, 1},
		{30.01, 30, 1},
	}
	tree := NewTree(pts, 1e-3)

	coarse := 0
	tree.Query(-180, -180, 180, 180, 0.5, func(x, y float64, elems []int) {
		coarse++
	})
	if coarse != 2 {
		t.Errorf("coarse query yields %v clusters, want 2", coarse)
	}

	fine := 0
	tree.Query(-180, -180, 180, 180, 1e-3, func(x, y float64, elems []int) {
		fine++
	})
	if fine != 5 {
		t.Errorf("fine query yields %v clusters, want 5", fine)
	}
}

func TestTreeViewport(t *testing.T) {
	pts := []Point{
		{0, 0, 1},
		{0.01, 0, 1},
		{0, 0.01, 1},
		{30, 30, 1},
		{30.01, 30, 1},
	}
	tree := NewTree(pts, 1e-3)

	var got []int
	tree.Query(-1, -1, 1, 1, 1e-3, func(x, y float64, elems []int) {
		got = append(got, elems...)
	})
	if len(got) != 3 {
		t.Errorf("viewport query yields %v points, want 3", len(got))
	}
	for _, e := range got {
		if e > 2 {
			t.Errorf("point %v outside the viewport reported", e)
		}
	}
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree(nil, 1)
	tree.Query(-180, -180, 180, 180, 0, func(x, y float64, elems []int) {
		t.Errorf("unexpected cluster at %v,%v", x, y)
	})
}
