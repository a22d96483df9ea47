package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	indiaLat = []float64{28.7041, 19.0760, 12.9716, 22.5726, 13.0827, 26.9124}
	indiaLng = []float64{77.1025, 72.8777, 77.5946, 88.3639, 80.2707, 75.7873}
)

func TestNew_DelhiMumbai(t *testing.T) {
	m, err := New([]float64{28.7041, 19.0760}, []float64{77.1025, 72.8777})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Size())
	assert.InDelta(t, 1150, m.At(0, 1), 15)
}

func TestNew_Properties(t *testing.T) {
	m, err := New(indiaLat, indiaLng)
	require.NoError(t, err)

	n := m.Size()
	require.Equal(t, len(indiaLat), n)

	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, m.At(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "symmetry at %d,%d", i, j)
			assert.GreaterOrEqual(t, m.At(i, j), 0.0)
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, m.At(i, k), m.At(i, j)+m.At(j, k)+1e-9, "triangle %d,%d,%d", i, j, k)
			}
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := New(indiaLat, indiaLng)
	require.NoError(t, err)
	b, err := New(indiaLat, indiaLng)
	require.NoError(t, err)

	assert.Equal(t, a.Rows(), b.Rows())
}

func TestNew_SinglePoint(t *testing.T) {
	m, err := New([]float64{10}, []float64{20})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, m.Rows())
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		lat  []float64
		lng  []float64
	}{
		{name: "Empty", lat: nil, lng: nil},
		{name: "Mismatched", lat: []float64{1, 2}, lng: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.lat, tt.lng)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, m)
		})
	}
}

func TestFromPoints_ByID(t *testing.T) {
	m, err := FromPoints([]int{101, 7}, []float64{28.7041, 19.0760}, []float64{77.1025, 72.8777})
	require.NoError(t, err)

	d, err := m.Distance(101, 7)
	require.NoError(t, err)
	assert.Equal(t, m.At(0, 1), d)

	self, err := m.Distance(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, self)

	_, err = m.Distance(101, 3)
	assert.ErrorIs(t, err, ErrUnknownCity)

	assert.Equal(t, []int{101, 7}, m.IDs())
}

func TestFromPoints_DuplicateID(t *testing.T) {
	_, err := FromPoints([]int{1, 1}, []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromPoints([]int{1}, []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatrix_RowsIsACopy(t *testing.T) {
	m, err := New(indiaLat, indiaLng)
	require.NoError(t, err)

	rows := m.Rows()
	rows[0][1] = -1
	assert.NotEqual(t, -1.0, m.At(0, 1))

	ids := m.IDs()
	ids[0] = 42
	assert.Equal(t, 0, m.IDs()[0])
}
