// Package curves implements the group law for short Weierstrass curves
// y² = x³ + ax + b over a prime field, in affine coordinates.
package curves

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-secp256k1/internal/crypto/field"
)

// Common errors returned by the curves package.
var (
	ErrNotOnCurve    = errors.New("curves: point is not on the curve")
	ErrCurveMismatch = errors.New("curves: points are not on the same curve")
)

// Point is a point on the curve y² = x³ + ax + b. A nil coordinate pair
// represents the point at infinity, the additive identity of the group.
// Points are immutable: every operation returns a fresh point.
type Point struct {
	x, y *field.Element
	a, b *field.Element
}

// NewPoint creates a finite point and verifies that it satisfies the curve
// equation. Use Infinity for the identity point. A prime mismatch between
// the coordinates and the coefficients surfaces as a field error.
func NewPoint(x, y, a, b *field.Element) (*Point, error) {
	lhs := y.Pow(big.NewInt(2))

	ax, err := a.Mul(x)
	if err != nil {
		return nil, err
	}
	rhs, err := x.Pow(big.NewInt(3)).Add(ax)
	if err != nil {
		return nil, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return nil, err
	}

	if !lhs.Equal(rhs) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrNotOnCurve, x.Number(), y.Number())
	}
	return &Point{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity for the curve defined by (a, b).
func Infinity(a, b *field.Element) *Point {
	return &Point{a: a, b: b}
}

// IsInfinity reports whether the point is the additive identity.
func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *Point) X() *field.Element { return p.x }

// Y returns the y coordinate, or nil for the point at infinity.
func (p *Point) Y() *field.Element { return p.y }

// A returns the curve coefficient a.
func (p *Point) A() *field.Element { return p.a }

// B returns the curve coefficient b.
func (p *Point) B() *field.Element { return p.b }

// SameCurve reports whether both points share the curve coefficients (a, b).
func (p *Point) SameCurve(q *Point) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Equal reports whether both points are the same point on the same curve.
func (p *Point) Equal(q *Point) bool {
	if q == nil || !p.SameCurve(q) {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add computes the chord-tangent group sum p + q.
func (p *Point) Add(q *Point) (*Point, error) {
	if !p.SameCurve(q) {
		return nil, fmt.Errorf("%w: cannot add", ErrCurveMismatch)
	}

	// Adding the identity.
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	// Additive inverses: same x, different y. The chord is vertical.
	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return Infinity(p.a, p.b), nil
	}

	if p.Equal(q) {
		// Doubling a point with y = 0 gives a vertical tangent.
		if p.y.Number().Sign() == 0 {
			return Infinity(p.a, p.b), nil
		}
		return p.double()
	}

	return p.chord(q)
}

// double computes p + p with the tangent slope m = (3x² + a) / (2y), then
// x3 = m² - 2x and y3 = m*(x - x3) - y.
func (p *Point) double() (*Point, error) {
	three, err := constant(p.x, 3)
	if err != nil {
		return nil, err
	}
	two, err := constant(p.x, 2)
	if err != nil {
		return nil, err
	}

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
	m, err := num.Div(den)
	if err != nil {
		return nil, err
	}

	twoX, err := two.Mul(p.x)
	if err != nil {
		return nil, err
	}
	x3, err := m.Pow(big.NewInt(2)).Sub(twoX)
	if err != nil {
		return nil, err
	}
	dx, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	y3, err := m.Mul(dx)
	if err != nil {
		return nil, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return nil, err
	}

	return &Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// chord computes p + q for distinct x with the slope m = (y2 - y1)/(x2 - x1),
// then x3 = m² - x1 - x2 and y3 = m*(x1 - x3) - y1.
func (p *Point) chord(q *Point) (*Point, error) {
	dy, err := q.y.Sub(p.y)
	if err != nil {
		return nil, err
	}
	dx, err := q.x.Sub(p.x)
	if err != nil {
		return nil, err
	}
	m, err := dy.Div(dx)
	if err != nil {
		return nil, err
	}

	x3, err := m.Pow(big.NewInt(2)).Sub(p.x)
	if err != nil {
		return nil, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return nil, err
	}
	xd, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	y3, err := m.Mul(xd)
	if err != nil {
		return nil, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return nil, err
	}

	return &Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// ScalarMult computes k * p via binary double-and-add, walking the bits of k
// from least to most significant. The coefficient must be non-negative;
// callers normalize negative or oversized scalars modulo the group order
// first. k = 0 yields infinity.
func (p *Point) ScalarMult(k *big.Int) *Point {
	if k.Sign() < 0 {
		panic("curves: negative scalar multiplication coefficient")
	}
	result := Infinity(p.a, p.b)
	current := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = mustAdd(result, current)
		}
		current = mustAdd(current, current)
	}
	return result
}

// mustAdd adds two points known to lie on the same curve. Addition of valid
// points on one curve cannot fail, so an error here is a broken internal
// invariant.
func mustAdd(p, q *Point) *Point {
	sum, err := p.Add(q)
	if err != nil {
		panic("curves: " + err.Error())
	}
	return sum
}

// constant wraps a small integer into the same field as the given element.
func constant(e *field.Element, n int64) (*field.Element, error) {
	return field.New(big.NewInt(n), e.Prime())
}

func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v",
		p.x.Number(), p.y.Number(), p.a.Number(), p.b.Number())
}
