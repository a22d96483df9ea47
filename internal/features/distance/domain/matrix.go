package domain

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/golang/geo/s2"
	"golang.org/x/sync/errgroup"
)

// EarthRadiusKm is the Earth's mean radius.
const EarthRadiusKm = 6371.0

var (
	// ErrInvalidInput is returned for empty or mismatched coordinate sequences.
	ErrInvalidInput = errors.New("invalid coordinate input")
	// ErrUnknownCity is returned when a lookup references an id outside the matrix.
	ErrUnknownCity = errors.New("city not present in distance matrix")
)

// Matrix is an immutable, symmetric great-circle distance matrix in kilometers,
// addressable both by position and by city id.
type Matrix struct {
	ids   []int
	index map[int]int
	km    [][]float64
}

// New builds a matrix for the given coordinates, in degrees. Positions double as ids.
func New(lat, lng []float64) (*Matrix, error) {
	ids := make([]int, len(lat))
	for i := range ids {
		ids[i] = i
	}
	return FromPoints(ids, lat, lng)
}

// FromPoints builds a matrix whose rows and columns are keyed by ids.
// Coordinate ranges are not enforced.
func FromPoints(ids []int, lat, lng []float64) (*Matrix, error) {
	n := len(lat)
	if n == 0 {
		return nil, fmt.Errorf("%w: no coordinates", ErrInvalidInput)
	}
	if len(lng) != n {
		return nil, fmt.Errorf("%w: %d latitudes but %d longitudes", ErrInvalidInput, n, len(lng))
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d ids for %d coordinates", ErrInvalidInput, len(ids), n)
	}

	index := make(map[int]int, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidInput, id)
		}
		index[id] = i
	}

	points := make([]s2.LatLng, n)
	for i := range points {
		points[i] = s2.LatLngFromDegrees(lat[i], lng[i])
	}

	km := make([][]float64, n)
	for i := range km {
		km[i] = make([]float64, n)
	}

	// Each row fills its upper triangle and the mirrored cells, so no two
	// goroutines touch the same element.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				d := points[i].Distance(points[j]).Radians() * EarthRadiusKm
				km[i][j] = d
				km[j][i] = d
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]int, n)
	copy(out, ids)

	return &Matrix{ids: out, index: index, km: km}, nil
}

// Size returns the number of cities in the matrix.
func (m *Matrix) Size() int {
	return len(m.ids)
}

// IDs returns the city ids in row order.
func (m *Matrix) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// At returns the distance between the cities at rows i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.km[i][j]
}

// Distance returns the distance between two cities by id.
func (m *Matrix) Distance(originID, destinationID int) (float64, error) {
	i, ok := m.index[originID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, originID)
	}
	j, ok := m.index[destinationID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, destinationID)
	}
	return m.km[i][j], nil
}

// Rows returns a copy of the full matrix.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, len(m.km))
	for i, row := range m.km {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
