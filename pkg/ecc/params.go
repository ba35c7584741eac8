package ecc

import (
	"math/big"

	"github.com/smallyu/go-secp256k1/internal/crypto/field"
)

// Curve parameters for secp256k1 (https://www.secg.org/sec2-v2.pdf).
// These are initialized once and treated as immutable constants; callers
// must not modify them.
var (
	// P is the prime of the underlying field: 2^256 - 2^32 - 977.
	P = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// N is the order of the group generated by G, so N*G is the identity.
	N = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// Gx and Gy are the affine coordinates of the generator point.
	Gx = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

// G is the generator point of the secp256k1 group.
var G *Point

// Curve coefficients of y² = x³ + 7, wrapped into the field once.
var curveA, curveB *field.Element

// sqrtExp is (P+1)/4, the exponent used for square roots (valid because
// P ≡ 3 mod 4).
var sqrtExp *big.Int

// nMinus2 is N-2, the Fermat-inversion exponent modulo the group order.
var nMinus2 *big.Int

func init() {
	var err error
	curveA, err = field.New(big.NewInt(0), P)
	if err != nil {
		panic("ecc: " + err.Error())
	}
	curveB, err = field.New(big.NewInt(7), P)
	if err != nil {
		panic("ecc: " + err.Error())
	}

	sqrtExp = new(big.Int).Add(P, big.NewInt(1))
	sqrtExp.Rsh(sqrtExp, 2)
	nMinus2 = new(big.Int).Sub(N, big.NewInt(2))

	G, err = NewPoint(Gx, Gy)
	if err != nil {
		panic("ecc: generator is not on the curve: " + err.Error())
	}
}

// mustHex parses a hex constant. It only runs against the literals above.
func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid hex constant " + s)
	}
	return n
}
