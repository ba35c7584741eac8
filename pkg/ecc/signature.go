package ecc

import (
	"fmt"
	"math/big"
)

// DER marker bytes.
const (
	derSequenceID = 0x30
	derIntegerID  = 0x02
)

// Signature is an ECDSA signature: the x coordinate r of the nonce point and
// the proof scalar s, both in [0, N). Immutable.
type Signature struct {
	r, s *big.Int
}

// NewSignature creates a signature from the (r, s) scalar pair.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{
		r: new(big.Int).Set(r),
		s: new(big.Int).Set(s),
	}
}

// R returns a copy of the r scalar.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s scalar.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// Der encodes the signature in DER format:
//
//	0x30 <total-len> 0x02 <len-r> <r> 0x02 <len-s> <s>
//
// Each scalar is a big-endian integer with leading zero bytes stripped and a
// single 0x00 byte prepended when the high bit of the first remaining byte is
// set, so the value stays unambiguously non-negative.
func (sig *Signature) Der() []byte {
	payload := derInt(sig.r)
	payload = append(payload, derInt(sig.s)...)

	out := make([]byte, 0, 2+len(payload))
	out = append(out, derSequenceID, byte(len(payload)))
	return append(out, payload...)
}

// derInt renders one scalar as a DER integer: marker, length, value bytes.
func derInt(v *big.Int) []byte {
	buf := make([]byte, 32)
	v.FillBytes(buf)

	// Strip leading zero bytes, keeping at least one byte for zero itself.
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	buf = buf[i:]

	if buf[0]&0x80 != 0 {
		buf = append([]byte{0x00}, buf...)
	}
	return append([]byte{derIntegerID, byte(len(buf))}, buf...)
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(r=%x, s=%x)", sig.r, sig.s)
}
