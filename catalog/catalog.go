// Package catalog maintains an in-memory collection of seismic events
// and answers distance and proximity queries over their epicenters
// and hypocenters.
package catalog

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go4.org/syncutil/singleflight"

	"github.com/pbarton666/earthquakes/geo"
)

// Event is a single seismic event. Lat and Long are in degrees,
// DepthKm is the hypocenter depth beneath the surface in kilometers.
type Event struct {
	ID        uuid.UUID
	Name      string
	Time      time.Time
	Lat       float64
	Long      float64
	DepthKm   float64
	Magnitude float64
}

// Catalog is a concurrency-safe event collection.
type Catalog struct {
	logger zerolog.Logger

	mu     sync.RWMutex
	events []Event
	byID   map[uuid.UUID]int
	gen    int    // bumped on every mutation
	idx    *index // nil until built for the current gen

	single singleflight.Group
}

// New returns an empty Catalog logging through logger.
func New(logger zerolog.Logger) *Catalog {
	return &Catalog{
		logger: logger,
		byID:   make(map[uuid.UUID]int),
	}
}

// mercator projection breaks down near the poles
const maxLat = 85.05112878

func validCoords(lat, long float64) error {
	if lat < -maxLat || lat > maxLat {
		return fmt.Errorf("invalid latitude value %v", lat)
	}
	if long < -180 || long > 180 {
		return fmt.Errorf("invalid longitude value %v", long)
	}
	return nil
}

// Add stores e and returns its ID, generating one if e.ID is unset.
func (c *Catalog) Add(e Event) (uuid.UUID, error) {
	if err := validCoords(e.Lat, e.Long); err != nil {
		return uuid.Nil, err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	c.mu.Lock()
	if _, ok := c.byID[e.ID]; ok {
		c.mu.Unlock()
		return uuid.Nil, fmt.Errorf("event %s already in catalog", e.ID)
	}
	c.byID[e.ID] = len(c.events)
	c.events = append(c.events, e)
	c.gen++
	c.idx = nil
	c.mu.Unlock()

	c.logger.Debug().
		Stringer("id", e.ID).
		Float64("lat", e.Lat).
		Float64("long", e.Long).
		Float64("depth_km", e.DepthKm).
		Msg("event added")
	return e.ID, nil
}

// Get returns the event with id.
func (c *Catalog) Get(id uuid.UUID) (Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Event{}, fmt.Errorf("event %s not in catalog", id)
	}
	return c.events[i], nil
}

// Events returns a copy of all events in insertion order.
func (c *Catalog) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Event(nil), c.events...)
}

// Len reports the number of events.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// Separation reports the surface (great circle) and hypocentral
// (straight line, through the solid) distance in kilometers between
// two events.
func (c *Catalog) Separation(a, b uuid.UUID) (surfaceKm, chordKm float64, err error) {
	ea, err := c.Get(a)
	if err != nil {
		return 0, 0, err
	}
	eb, err := c.Get(b)
	if err != nil {
		return 0, 0, err
	}
	surfaceKm = geo.Haversine(ea.Long, ea.Lat, eb.Long, eb.Lat)
	chordKm = geo.LinearDistInSphere(geo.EarthRadiusKm, surfaceKm, ea.DepthKm, eb.DepthKm)
	return surfaceKm, chordKm, nil
}

// Renderer displays tabular data.
type Renderer interface {
	Render(header []string, rows [][]string) error
}

// RenderTable writes the catalog contents through r in insertion order.
func (c *Catalog) RenderTable(r Renderer) error {
	header := []string{"ID", "Name", "Time", "Lat", "Long", "Depth km", "Mag"}
	events := c.Events()
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{
			e.ID.String(),
			e.Name,
			e.Time.Format(time.RFC3339),
			strconv.FormatFloat(e.Lat, 'f', 4, 64),
			strconv.FormatFloat(e.Long, 'f', 4, 64),
			strconv.FormatFloat(e.DepthKm, 'f', 1, 64),
			strconv.FormatFloat(e.Magnitude, 'f', 1, 64),
		}
	}
	return r.Render(header, rows)
}
