package ecc

import (
	"fmt"
	"math/big"
)

// Point is a point on the short-Weierstrass curve y^2 = x^3 + ax + b,
// either an affine (x, y) pair or the point at infinity (the group
// identity). The infinity case is an explicit variant so it can never be
// confused with an uninitialized point.
type Point struct {
	infinity bool
	x, y     *FieldElement
	a, b     *FieldElement
}

// NewPoint creates an affine point and verifies it satisfies the curve
// equation. It returns ErrPointNotOnCurve on violation.
func NewPoint(x, y, a, b *FieldElement) (*Point, error) {
	// y^2 == x^3 + a*x + b, all in the coordinate field.
	y2 := y.Pow(big.NewInt(2))
	x3 := x.Pow(big.NewInt(3))
	ax, err := a.Mul(x)
	if err != nil {
		return nil, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return nil, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return nil, err
	}
	if !y2.Equal(rhs) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrPointNotOnCurve, x.num, y.num)
	}
	return &Point{x: x, y: y, a: a, b: b}, nil
}

// NewInfinity creates the identity element of the curve (a, b).
func NewInfinity(a, b *FieldElement) *Point {
	return &Point{infinity: true, a: a, b: b}
}

// IsInfinity reports whether the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *Point) X() *FieldElement {
	return p.x
}

// Y returns the y coordinate, or nil for the point at infinity.
func (p *Point) Y() *FieldElement {
	return p.y
}

// Equal reports whether the points have identical coordinates and curve
// parameters.
func (p *Point) Equal(other *Point) bool {
	if other == nil {
		return false
	}
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return false
	}
	if p.infinity || other.infinity {
		return p.infinity && other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

func (p *Point) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v", p.x.num, p.y.num, p.a.num, p.b.num)
}

func (p *Point) sameCurve(other *Point) error {
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return fmt.Errorf("%w: %v and %v", ErrCurveMismatch, p, other)
	}
	return nil
}

// Add applies the group law. The cases, in order:
//  1. either operand is the identity: return the other
//  2. same x, different y (vertical chord): identity
//  3. doubling with y == 0 (vertical tangent): identity
//  4. doubling: slope = (3x^2 + a) / 2y
//  5. chord: slope = (y2 - y1) / (x2 - x1)
func (p *Point) Add(other *Point) (*Point, error) {
	if err := p.sameCurve(other); err != nil {
		return nil, err
	}
	if p.infinity {
		return other, nil
	}
	if other.infinity {
		return p, nil
	}

	if p.x.Equal(other.x) && !p.y.Equal(other.y) {
		return NewInfinity(p.a, p.b), nil
	}

	if p.Equal(other) {
		if p.y.IsZero() {
			return NewInfinity(p.a, p.b), nil
		}
		return p.double()
	}

	slopeNum, err := other.y.Sub(p.y)
	if err != nil {
		return nil, err
	}
	slopeDen, err := other.x.Sub(p.x)
	if err != nil {
		return nil, err
	}
	slope, err := slopeNum.Div(slopeDen)
	if err != nil {
		return nil, err
	}

	// x3 = slope^2 - x1 - x2; y3 = slope*(x1 - x3) - y1
	x3, err := slope.Pow(big.NewInt(2)).Sub(p.x)
	if err != nil {
		return nil, err
	}
	x3, err = x3.Sub(other.x)
	if err != nil {
		return nil, err
	}
	y3, err := p.chordY(slope, x3)
	if err != nil {
		return nil, err
	}
	return &Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

func (p *Point) double() (*Point, error) {
	prime := p.x.prime
	three := mustFieldElement(big.NewInt(3), prime)
	two := mustFieldElement(big.NewInt(2), prime)

	// slope = (3x^2 + a) / 2y
	num, err := three.Mul(p.x.Pow(big.NewInt(2)))
	if err != nil {
		return nil, err
	}
	num, err = num.Add(p.a)
	if err != nil {
		return nil, err
	}
	den, err := two.Mul(p.y)
	if err != nil {
		return nil, err
	}
	slope, err := num.Div(den)
	if err != nil {
		return nil, err
	}

	// x3 = slope^2 - 2x; y3 = slope*(x - x3) - y
	twoX, err := two.Mul(p.x)
	if err != nil {
		return nil, err
	}
	x3, err := slope.Pow(big.NewInt(2)).Sub(twoX)
	if err != nil {
		return nil, err
	}
	y3, err := p.chordY(slope, x3)
	if err != nil {
		return nil, err
	}
	return &Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// chordY computes y3 = slope*(x1 - x3) - y1, shared by doubling and chord
// addition.
func (p *Point) chordY(slope, x3 *FieldElement) (*FieldElement, error) {
	dx, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	y3, err := slope.Mul(dx)
	if err != nil {
		return nil, err
	}
	return y3.Sub(p.y)
}

// ScalarMul computes k*p by double-and-add over the bits of k. The scalar
// is used as given, with no reduction by the group order; specializations
// that know the order should reduce before calling.
func (p *Point) ScalarMul(k *big.Int) (*Point, error) {
	coef := new(big.Int).Set(k)
	current := p
	result := NewInfinity(p.a, p.b)
	var err error
	for coef.Sign() > 0 {
		if coef.Bit(0) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return nil, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return nil, err
		}
		coef.Rsh(coef, 1)
	}
	return result, nil
}
