package ecc

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// PrivateKey is a secret scalar in [1, N) together with its public point
// secret*G, derived once at construction. Immutable.
type PrivateKey struct {
	secret *big.Int
	point  *Point
}

// NewPrivateKey creates a private key from the secret scalar and derives the
// public point eagerly.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.Cmp(N) >= 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrSecretOutOfRange, secret.BitLen())
	}
	s := new(big.Int).Set(secret)
	return &PrivateKey{
		secret: s,
		point:  G.ScalarMult(s),
	}, nil
}

// PublicPoint returns the public key point secret*G.
func (k *PrivateKey) PublicPoint() *Point {
	return k.point
}

// Hex renders the secret as 64 zero-padded lowercase hex characters.
func (k *PrivateKey) Hex() string {
	return fmt.Sprintf("%064x", k.secret)
}

// Sign produces a canonical low-s ECDSA signature over the message hash z,
// using a deterministic nonce so that the same (secret, z) pair always yields
// the same signature.
func (k *PrivateKey) Sign(z *big.Int) *Signature {
	nonce := k.deterministicNonce(z)

	r := G.ScalarMult(nonce).X()
	nonceInv := new(big.Int).Exp(nonce, nMinus2, N)

	// s = (z + r*secret) / k mod N.
	s := new(big.Int).Mul(r, k.secret)
	s.Add(s, z)
	s.Mul(s, nonceInv)
	s.Mod(s, N)

	// Canonical low-s form: both s and N-s verify, so pick the smaller one to
	// rule out signature malleability. The comparison is exact integer
	// arithmetic (2s > N), never a real division of N.
	if new(big.Int).Lsh(s, 1).Cmp(N) > 0 {
		s.Sub(N, s)
	}

	return &Signature{r: r, s: s}
}

// deterministicNonce derives the signing nonce from the secret and the
// message hash with the HMAC-SHA256 construction of RFC 6979. One quirk is
// kept from the reference procedure on purpose: a hash above N is reduced by
// a single subtraction rather than a full mod, so outputs stay bit-for-bit
// compatible with it.
func (k *PrivateKey) deterministicNonce(z *big.Int) *big.Int {
	zr := new(big.Int).Set(z)
	if zr.Cmp(N) > 0 {
		zr.Sub(zr, N)
	}

	zBytes := make([]byte, 32)
	zr.FillBytes(zBytes)
	secretBytes := make([]byte, 32)
	k.secret.FillBytes(secretBytes)

	key := make([]byte, 32) // all zero
	v := bytes.Repeat([]byte{0x01}, 32)

	// Two seed rounds mix the secret and the hash into the HMAC state, each
	// tagged with a distinct domain byte.
	key = hmacSHA256(key, v, []byte{0x00}, secretBytes, zBytes)
	v = hmacSHA256(key, v)
	key = hmacSHA256(key, v, []byte{0x01}, secretBytes, zBytes)
	v = hmacSHA256(key, v)

	// Rejection-sample candidates until one lands in [1, N). A miss has
	// probability around 2^-128, so this loop effectively runs once; it must
	// stay unbounded, since capping it would change the output for the inputs
	// that do retry.
	for {
		v = hmacSHA256(key, v)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(N) < 0 {
			return candidate
		}
		key = hmacSHA256(key, v, []byte{0x00})
		v = hmacSHA256(key, v)
	}
}

// hmacSHA256 computes HMAC-SHA256 over the concatenation of the parts.
func hmacSHA256(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, part := range parts {
		mac.Write(part)
	}
	return mac.Sum(nil)
}
