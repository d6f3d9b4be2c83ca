package catalog

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pbarton666/earthquakes/cluster"
	"github.com/pbarton666/earthquakes/geo"
	"github.com/pbarton666/earthquakes/quadtree"
)

// index is an immutable snapshot of event epicenters projected to the
// mercator plane.
type index struct {
	events   []Event
	tree     *quadtree.Tree
	clusters *cluster.Tree
}

// spatial returns the index for the current catalog contents,
// rebuilding it at most once per generation.
func (c *Catalog) spatial() *index {
	c.mu.RLock()
	idx, gen := c.idx, c.gen
	c.mu.RUnlock()
	if idx != nil {
		return idx
	}

	v, _ := c.single.Do(strconv.Itoa(gen), func() (interface{}, error) {
		events := c.Events()
		pts := make([]quadtree.Point, len(events))
		cpts := make([]cluster.Point, len(events))
		for i, e := range events {
			y := geo.LatToMerc(e.Lat)
			pts[i] = quadtree.Point{X: e.Long, Y: y}
			cpts[i] = cluster.Point{
				X:      e.Long,
				Y:      y,
				Weight: math.Max(e.Magnitude, 1),
			}
		}
		idx := &index{
			events:   events,
			tree:     quadtree.New(pts),
			clusters: cluster.NewTree(cpts, epicenterMinSep),
		}

		c.mu.Lock()
		if c.gen == gen {
			c.idx = idx
		}
		c.mu.Unlock()

		c.logger.Debug().Int("events", len(events)).Msg("spatial index rebuilt")
		return idx, nil
	})
	return v.(*index)
}

// Near returns the events whose epicenter is within radiusKm of the
// given coordinates.
func (c *Catalog) Near(lat, long, radiusKm float64) ([]Event, error) {
	if err := validCoords(lat, long); err != nil {
		return nil, err
	}
	if radiusKm < 0 {
		return nil, fmt.Errorf("invalid radius value %v", radiusKm)
	}
	idx := c.spatial()

	// prefilter on a bounding box around the search circle,
	// then keep what is actually within radiusKm
	latPad := geo.RadToDeg(radiusKm / geo.EarthRadiusKm)
	lat0 := math.Max(lat-latPad, -maxLat)
	lat1 := math.Min(lat+latPad, maxLat)

	// longitude degrees shrink with latitude; lat0 and lat1 are
	// already clamped away from the poles
	m := math.Max(math.Abs(lat0), math.Abs(lat1))
	longPad := latPad / math.Cos(geo.DegToRad(m))

	min := quadtree.Point{X: long - longPad, Y: geo.LatToMerc(lat0)}
	max := quadtree.Point{X: long + longPad, Y: geo.LatToMerc(lat1)}

	var res []Event
	idx.tree.VisitRect(min, max, func(i int) bool {
		e := idx.events[i]
		if geo.Haversine(long, lat, e.Long, e.Lat) <= radiusKm {
			res = append(res, e)
		}
		return true
	})
	return res, nil
}

// epicenterMinSep is roughly five meters on the equator, the smallest
// separation worth distinguishing on a map.
const epicenterMinSep = 5e-5

// EventCluster is a group of events close enough together to render
// as a single map marker.
type EventCluster struct {
	Lat, Long float64
	Events    []Event
}

// Clusters groups the events whose epicenters would overlap on a map
// at the given zoom level. Cluster centers are weighted by magnitude.
func (c *Catalog) Clusters(zoom int) []EventCluster {
	return c.ClustersIn(-maxLat, -180, maxLat, 180, zoom)
}

// ClustersIn is like Clusters restricted to the viewport between the
// two corners, in degrees. Clusters near but outside the viewport may
// be included.
func (c *Catalog) ClustersIn(lat0, long0, lat1, long1 float64, zoom int) []EventCluster {
	idx := c.spatial()

	dist := epicenterMinSep * math.Pow(2, float64(21-zoom))
	var res []EventCluster
	idx.clusters.Query(long0, geo.LatToMerc(lat0), long1, geo.LatToMerc(lat1), dist,
		func(x, y float64, elems []int) {
			events := make([]Event, len(elems))
			for i, j := range elems {
				events[i] = idx.events[j]
			}
			res = append(res, EventCluster{
				Lat:    geo.MercToLat(y),
				Long:   x,
				Events: events,
			})
		})
	return res
}
