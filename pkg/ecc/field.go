package ecc

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-secp256k1/internal/crypto/field"
)

// NewFieldElement wraps a number into the secp256k1 field Z_P.
func NewFieldElement(number *big.Int) (*field.Element, error) {
	return field.New(number, P)
}

// Sqrt returns a square root of e, computed as e^((P+1)/4). This shortcut is
// valid because P ≡ 3 mod 4. The input must be a quadratic residue; for a
// non-residue the returned value is not a root and fails the curve membership
// check downstream.
func Sqrt(e *field.Element) *field.Element {
	return e.Pow(sqrtExp)
}

// FieldHex renders a secp256k1 field value as 64 zero-padded hex characters.
func FieldHex(e *field.Element) string {
	return fmt.Sprintf("%064x", e.Number())
}
