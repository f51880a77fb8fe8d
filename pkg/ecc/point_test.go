package ecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// curve223 builds a point on y^2 = x^3 + 7 over F_223, the small test
// curve with easily checkable coordinates.
func curve223(t *testing.T, x, y int64) *Point {
	t.Helper()
	a := fe(t, 0, 223)
	b := fe(t, 7, 223)
	p, err := NewPoint(fe(t, x, 223), fe(t, y, 223), a, b)
	require.NoError(t, err)
	return p
}

func infinity223(t *testing.T) *Point {
	t.Helper()
	return NewInfinity(fe(t, 0, 223), fe(t, 7, 223))
}

func TestNewPointOnCurve(t *testing.T) {
	for _, coords := range [][2]int64{{192, 105}, {17, 56}, {1, 193}} {
		curve223(t, coords[0], coords[1])
	}
}

func TestNewPointOffCurve(t *testing.T) {
	a := fe(t, 0, 223)
	b := fe(t, 7, 223)
	for _, coords := range [][2]int64{{200, 119}, {42, 99}} {
		_, err := NewPoint(fe(t, coords[0], 223), fe(t, coords[1], 223), a, b)
		assert.ErrorIs(t, err, ErrPointNotOnCurve)
	}
}

func TestPointAddIdentity(t *testing.T) {
	p := curve223(t, 192, 105)
	inf := infinity223(t)

	sum, err := p.Add(inf)
	require.NoError(t, err)
	assert.True(t, sum.Equal(p))

	sum, err = inf.Add(p)
	require.NoError(t, err)
	assert.True(t, sum.Equal(p))

	sum, err = inf.Add(inf)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestPointAddVertical(t *testing.T) {
	p := curve223(t, 192, 105)
	q := curve223(t, 192, 223-105)
	sum, err := p.Add(q)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestPointAdd(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2, x3, y3 int64
	}{
		{192, 105, 17, 56, 170, 142},
		{47, 71, 117, 141, 60, 139},
		{143, 98, 76, 66, 47, 71},
	}
	for _, tc := range cases {
		p := curve223(t, tc.x1, tc.y1)
		q := curve223(t, tc.x2, tc.y2)
		want := curve223(t, tc.x3, tc.y3)

		sum, err := p.Add(q)
		require.NoError(t, err)
		assert.True(t, sum.Equal(want), "(%d,%d)+(%d,%d)", tc.x1, tc.y1, tc.x2, tc.y2)

		// Commutativity.
		sum2, err := q.Add(p)
		require.NoError(t, err)
		assert.True(t, sum2.Equal(want))
	}
}

func TestPointDoubling(t *testing.T) {
	p := curve223(t, 192, 105)
	doubled, err := p.Add(p)
	require.NoError(t, err)
	assert.True(t, doubled.Equal(curve223(t, 49, 71)))

	// Doubling must agree with ScalarMul by 2.
	byScalar, err := p.ScalarMul(big.NewInt(2))
	require.NoError(t, err)
	assert.True(t, byScalar.Equal(doubled))
}

func TestPointScalarMul(t *testing.T) {
	p := curve223(t, 47, 71)
	cases := []struct {
		k    int64
		x, y int64
	}{
		{2, 36, 111},
		{4, 194, 51},
		{8, 116, 55},
	}
	for _, tc := range cases {
		got, err := p.ScalarMul(big.NewInt(tc.k))
		require.NoError(t, err)
		assert.True(t, got.Equal(curve223(t, tc.x, tc.y)), "%d*(47,71)", tc.k)
	}

	// (47,71) generates a subgroup of order 21.
	got, err := p.ScalarMul(big.NewInt(21))
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())

	// The generic scalar multiply does not reduce: 22*P wraps to P.
	got, err = p.ScalarMul(big.NewInt(22))
	require.NoError(t, err)
	assert.True(t, got.Equal(p))
}

func TestPointCurveMismatch(t *testing.T) {
	p := curve223(t, 192, 105)

	a := fe(t, 5, 223)
	b := fe(t, 7, 223)
	other := NewInfinity(a, b)

	_, err := p.Add(other)
	assert.ErrorIs(t, err, ErrCurveMismatch)
}
