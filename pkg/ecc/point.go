package ecc

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-secp256k1/internal/crypto/curves"
	"github.com/smallyu/go-secp256k1/internal/crypto/field"
)

// SEC encoding prefixes.
const (
	secPrefixEvenY        = 0x02
	secPrefixOddY         = 0x03
	secPrefixUncompressed = 0x04
)

// Point is a point on the secp256k1 curve y² = x³ + 7, including the point
// at infinity. Immutable.
type Point struct {
	inner *curves.Point
}

// NewPoint creates a secp256k1 point from affine coordinates. The
// coordinates must lie in [0, P) and satisfy the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	fx, err := NewFieldElement(x)
	if err != nil {
		return nil, err
	}
	fy, err := NewFieldElement(y)
	if err != nil {
		return nil, err
	}
	return newFromFields(fx, fy)
}

// newFromFields builds a point from pre-wrapped field elements.
func newFromFields(x, y *field.Element) (*Point, error) {
	inner, err := curves.NewPoint(x, y, curveA, curveB)
	if err != nil {
		return nil, err
	}
	return &Point{inner: inner}, nil
}

// Infinity returns the secp256k1 point at infinity.
func Infinity() *Point {
	return &Point{inner: curves.Infinity(curveA, curveB)}
}

// IsInfinity reports whether the point is the additive identity.
func (p *Point) IsInfinity() bool {
	return p.inner.IsInfinity()
}

// X returns the affine x coordinate, or nil for the point at infinity.
func (p *Point) X() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return p.inner.X().Number()
}

// Y returns the affine y coordinate, or nil for the point at infinity.
func (p *Point) Y() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return p.inner.Y().Number()
}

// Equal reports whether both points are the same point.
func (p *Point) Equal(q *Point) bool {
	return q != nil && p.inner.Equal(q.inner)
}

// Add computes the group sum p + q. Both points are always on secp256k1, so
// unlike the generic layer this cannot fail.
func (p *Point) Add(q *Point) *Point {
	sum, err := p.inner.Add(q.inner)
	if err != nil {
		panic("ecc: " + err.Error())
	}
	return &Point{inner: sum}
}

// ScalarMult computes k * p. The coefficient is reduced modulo N first:
// scalars beyond the group order are equivalent, and the reduction also
// normalizes negative inputs.
func (p *Point) ScalarMult(k *big.Int) *Point {
	reduced := new(big.Int).Mod(k, N)
	return &Point{inner: p.inner.ScalarMult(reduced)}
}

// Verify reports whether the signature is a valid ECDSA signature over the
// message hash z for the public key p.
func (p *Point) Verify(z *big.Int, sig *Signature) bool {
	// u*G + v*P must land on a point whose x coordinate is r, where
	// u = z/s and v = r/s modulo N.
	sInv := new(big.Int).Exp(sig.s, nMinus2, N)
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, N)
	v := new(big.Int).Mul(sig.r, sInv)
	v.Mod(v, N)

	total := G.ScalarMult(u).Add(p.ScalarMult(v))
	if total.IsInfinity() {
		return false
	}
	return total.X().Cmp(sig.r) == 0
}

// Sec encodes the point in SEC format: 65 bytes starting with 0x04 when
// uncompressed, 33 bytes starting with a parity prefix (0x02 for even y,
// 0x03 for odd) when compressed. The point at infinity has no encoding.
func (p *Point) Sec(compressed bool) ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrInfinityPoint
	}

	if compressed {
		out := make([]byte, 33)
		if p.inner.Y().Number().Bit(0) == 0 {
			out[0] = secPrefixEvenY
		} else {
			out[0] = secPrefixOddY
		}
		p.inner.X().Number().FillBytes(out[1:])
		return out, nil
	}

	out := make([]byte, 65)
	out[0] = secPrefixUncompressed
	p.inner.X().Number().FillBytes(out[1:33])
	p.inner.Y().Number().FillBytes(out[33:])
	return out, nil
}

// ParseSec decodes a SEC-encoded point. Compressed encodings recover y from
// x by taking the square root of x³ + 7 and picking the candidate whose
// parity matches the prefix byte.
func ParseSec(data []byte) (*Point, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidSecFormat)
	}

	switch data[0] {
	case secPrefixUncompressed:
		if len(data) != 65 {
			return nil, fmt.Errorf("%w: uncompressed encoding must be 65 bytes, got %d",
				ErrInvalidSecFormat, len(data))
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:])
		return NewPoint(x, y)

	case secPrefixEvenY, secPrefixOddY:
		if len(data) != 33 {
			return nil, fmt.Errorf("%w: compressed encoding must be 33 bytes, got %d",
				ErrInvalidSecFormat, len(data))
		}
		x, err := NewFieldElement(new(big.Int).SetBytes(data[1:]))
		if err != nil {
			return nil, err
		}

		// alpha = x³ + 7 is the right side of the curve equation.
		alpha, err := x.Pow(big.NewInt(3)).Add(curveB)
		if err != nil {
			return nil, err
		}
		y := Sqrt(alpha)

		wantEven := data[0] == secPrefixEvenY
		if (y.Number().Bit(0) == 0) != wantEven {
			// The other root is P - y.
			y, err = NewFieldElement(new(big.Int).Sub(P, y.Number()))
			if err != nil {
				return nil, err
			}
		}
		return newFromFields(x, y)

	default:
		return nil, fmt.Errorf("%w: unknown prefix byte 0x%02x", ErrInvalidSecFormat, data[0])
	}
}

func (p *Point) String() string {
	if p.IsInfinity() {
		return "S256Point(infinity)"
	}
	return fmt.Sprintf("S256Point(%s, %s)", FieldHex(p.inner.X()), FieldHex(p.inner.Y()))
}
