package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidCity is returned for a record with out-of-range coordinates or population.
	ErrInvalidCity = errors.New("invalid city record")
	// ErrDuplicateCityID is returned when two records share an id.
	ErrDuplicateCityID = errors.New("duplicate city id")
	// ErrCityNotFound is returned when no record has the requested id.
	ErrCityNotFound = errors.New("city not found")
	// ErrEmptyCatalog is returned when an operation needs at least one city.
	ErrEmptyCatalog = errors.New("city catalog is empty")
)

// City is one prepared city record.
type City struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	Population int64   `json:"population"`
}

// Validate checks the coordinate and population ranges of a record.
func (c City) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: city %d latitude %v outside [-90, 90]", ErrInvalidCity, c.ID, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: city %d longitude %v outside [-180, 180]", ErrInvalidCity, c.ID, c.Longitude)
	}
	if c.Population < 0 {
		return fmt.Errorf("%w: city %d has negative population", ErrInvalidCity, c.ID)
	}
	return nil
}

// Catalog is an ordered set of cities with unique ids.
type Catalog struct {
	Cities []City `json:"cities"`
}

// NewCatalog validates every record, rejects duplicate ids and sorts by id.
// An empty input is allowed and produces an empty catalog.
func NewCatalog(cities []City) (*Catalog, error) {
	seen := make(map[int]bool, len(cities))
	out := make([]City, 0, len(cities))

	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCityID, c.ID)
		}
		seen[c.ID] = true
		c.Name = strings.TrimSpace(c.Name)
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &Catalog{Cities: out}, nil
}

// Len returns the number of cities.
func (c *Catalog) Len() int {
	return len(c.Cities)
}

// Find returns the city with the given id.
func (c *Catalog) Find(id int) (City, error) {
	i := sort.Search(len(c.Cities), func(i int) bool { return c.Cities[i].ID >= id })
	if i < len(c.Cities) && c.Cities[i].ID == id {
		return c.Cities[i], nil
	}
	return City{}, fmt.Errorf("%w: %d", ErrCityNotFound, id)
}

// Columns splits the catalog into parallel id, latitude and longitude slices.
func (c *Catalog) Columns() (ids []int, lat []float64, lng []float64) {
	ids = make([]int, len(c.Cities))
	lat = make([]float64, len(c.Cities))
	lng = make([]float64, len(c.Cities))
	for i, city := range c.Cities {
		ids[i] = city.ID
		lat[i] = city.Latitude
		lng[i] = city.Longitude
	}
	return ids, lat, lng
}

// Fingerprint identifies the geometry of the catalog. Names and populations
// do not affect distances and are left out.
func (c *Catalog) Fingerprint() string {
	h := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, city := range c.Cities {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(city.ID), 10)
		buf = append(buf, ':')
		buf = strconv.AppendFloat(buf, city.Latitude, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, city.Longitude, 'g', -1, 64)
		buf = append(buf, ';')
		_, _ = h.Write(buf)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
