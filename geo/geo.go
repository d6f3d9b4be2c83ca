// Package geo provides closed-form geodesic calculations on a sphere:
// angle conversions, great-circle distances and straight-line distances
// between points at or beneath the surface.
package geo

import "math"

// EarthRadiusKm is the radius of the Earth in kilometers.
const EarthRadiusKm = 6367

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Haversine returns the surface (great circle) distance in kilometers
// between two points on the Earth given in degrees.
//
// https://en.wikipedia.org/wiki/Haversine_formula
func Haversine(long0, lat0, long1, lat1 float64) float64 {
	long0, lat0 = DegToRad(long0), DegToRad(lat0)
	long1, lat1 = DegToRad(long1), DegToRad(lat1)

	dlong := long1 - long0
	dlat := lat1 - lat0
	a := sin2(dlat/2) + math.Cos(lat0)*math.Cos(lat1)*sin2(dlong/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusKm * c
}

func sin2(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

// LinearDistInSphere returns the straight-line distance through a
// sphere between two points at or beneath its surface, such as an
// earthquake hypocenter and the bottom of a well. surfDist is the
// great-circle distance between the surface projections of the two
// points; depthA and depthB are their depths beneath the surface.
//
// With both depths zero the result approximates surfDist for small
// central angles only: the chord is always shorter than the arc.
func LinearDistInSphere(radius, surfDist, depthA, depthB float64) float64 {
	theta := surfDist / radius

	a := radius - depthA
	b := radius - depthB
	return math.Sqrt(a*a + b*b - 2*a*b*math.Cos(theta))
}
