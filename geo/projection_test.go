package geo

import (
	"math"
	"testing"
)

func TestMercRoundTrip(t *testing.T) {
	for _, lat := range []float64{-85, -60, -30.5, 0, 12.34, 45, 85} {
		got := MercToLat(LatToMerc(lat))
		if math.Abs(got-lat) > 1e-9 {
			t.Errorf("MercToLat(LatToMerc(%v)) = %v", lat, got)
		}
	}
}

func TestTilerRoundTrip(t *testing.T) {
	tl := NewTiler(12)
	lat, long := 37.7749, -122.4194
	x, y := tl.Tile(lat, long)
	if x < 0 || x >= 4096 || y < 0 || y >= 4096 {
		t.Fatalf("tile coords %v,%v out of range for zoom 12", x, y)
	}
	glat, glong := tl.LatLong(x, y)
	if math.Abs(glat-lat) > 1e-6 || math.Abs(glong-long) > 1e-6 {
		t.Errorf("tile round trip = %v,%v, want %v,%v", glat, glong, lat, long)
	}
}
