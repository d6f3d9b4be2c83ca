package geo

import "math"

// LatToMerc maps a latitude in degrees to its web mercator vertical
// coordinate, roughly -180..180 for latitudes between -85 and 85.
// Epicenters projected this way can be indexed on a plane together
// with their longitudes.
func LatToMerc(lat float64) float64 {
	return 180 / math.Pi * math.Log(math.Tan(math.Pi/4+lat*math.Pi/180/2))
}

// MercToLat inverts LatToMerc.
func MercToLat(y float64) float64 {
	return 180 / math.Pi * (2*math.Atan(math.Exp(y*math.Pi/180)) - math.Pi/2)
}

// Tiler maps geographic coordinates to map tile coordinates at a
// fixed zoom level. Tile x and y values are in 0..2^zoom.
type Tiler struct {
	m float64
}

func NewTiler(zoom int) *Tiler {
	return &Tiler{
		m: float64(int(1) << uint(zoom)),
	}
}

// LatLong returns the geographic coordinates of tile position x, y.
func (t *Tiler) LatLong(x, y float64) (lat, long float64) {
	long = x/t.m*360 - 180
	n := math.Pi - 2*math.Pi*y/t.m
	lat = 180 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
	return
}

// Tile returns the tile position of lat, long.
func (t *Tiler) Tile(lat, long float64) (x, y float64) {
	x = t.m * (long + 180) / 360
	y = t.m * (1 - math.Log(math.Tan(lat*math.Pi/180)+1/math.Cos(lat*math.Pi/180))/math.Pi) / 2
	return
}
