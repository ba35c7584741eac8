package field

import (
	"errors"
	"fmt"
	"math/big"
)

// Common errors returned by the field package.
var (
	ErrValueOutOfRange = errors.New("field: value outside [0, prime)")
	ErrPrimeMismatch   = errors.New("field: elements belong to different fields")
)

var one = big.NewInt(1)

// Element is an element of the prime field Z_p. It is immutable: every
// operation returns a fresh element and never modifies its receiver or
// arguments. The prime must actually be prime; Pow and Div rely on Fermat's
// Little Theorem for inversion, which does not hold for composite moduli.
type Element struct {
	number *big.Int
	prime  *big.Int
}

// New creates a field element. The number must lie in [0, prime).
func New(number, prime *big.Int) (*Element, error) {
	if number.Sign() < 0 || number.Cmp(prime) >= 0 {
		return nil, fmt.Errorf("%w: %v not in [0, %v)", ErrValueOutOfRange, number, prime)
	}
	return &Element{
		number: new(big.Int).Set(number),
		prime:  new(big.Int).Set(prime),
	}, nil
}

// Number returns a copy of the element's value.
func (e *Element) Number() *big.Int {
	return new(big.Int).Set(e.number)
}

// Prime returns a copy of the field's prime modulus.
func (e *Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// SamePrime reports whether both elements belong to the same field.
func (e *Element) SamePrime(other *Element) bool {
	return e.prime.Cmp(other.prime) == 0
}

// Equal reports whether both elements belong to the same field and hold the
// same value. Elements of different fields are never equal.
func (e *Element) Equal(other *Element) bool {
	if other == nil {
		return false
	}
	return e.SamePrime(other) && e.number.Cmp(other.number) == 0
}

// Add returns e + other mod p.
func (e *Element) Add(other *Element) (*Element, error) {
	if !e.SamePrime(other) {
		return nil, fmt.Errorf("%w: cannot add", ErrPrimeMismatch)
	}
	sum := new(big.Int).Add(e.number, other.number)
	sum.Mod(sum, e.prime)
	return &Element{number: sum, prime: e.Prime()}, nil
}

// Sub returns e - other mod p.
func (e *Element) Sub(other *Element) (*Element, error) {
	if !e.SamePrime(other) {
		return nil, fmt.Errorf("%w: cannot subtract", ErrPrimeMismatch)
	}
	// big.Int.Mod is Euclidean: the result is always in [0, p) even when the
	// difference is negative.
	diff := new(big.Int).Sub(e.number, other.number)
	diff.Mod(diff, e.prime)
	return &Element{number: diff, prime: e.Prime()}, nil
}

// Mul returns e * other mod p.
func (e *Element) Mul(other *Element) (*Element, error) {
	if !e.SamePrime(other) {
		return nil, fmt.Errorf("%w: cannot multiply", ErrPrimeMismatch)
	}
	prod := new(big.Int).Mul(e.number, other.number)
	prod.Mod(prod, e.prime)
	return &Element{number: prod, prime: e.Prime()}, nil
}

// Pow returns e^exp mod p. The exponent may be negative: it is first
// normalized into [0, p-1) via exp mod (p-1), which by Fermat's Little
// Theorem leaves the result unchanged, so e.Pow(-1) is the multiplicative
// inverse of a nonzero element.
func (e *Element) Pow(exp *big.Int) *Element {
	pm1 := new(big.Int).Sub(e.prime, one)
	n := new(big.Int).Mod(exp, pm1)
	result := new(big.Int).Exp(e.number, n, e.prime)
	return &Element{number: result, prime: e.Prime()}
}

// Div returns e / other mod p, computed as e * other^(p-2) (Fermat inversion).
func (e *Element) Div(other *Element) (*Element, error) {
	if !e.SamePrime(other) {
		return nil, fmt.Errorf("%w: cannot divide", ErrPrimeMismatch)
	}
	pm2 := new(big.Int).Sub(e.prime, big.NewInt(2))
	return e.Mul(other.Pow(pm2))
}

func (e *Element) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", e.prime, e.number)
}
