// Package ecc implements ECDSA over the secp256k1 curve: key generation
// from a secret scalar, deterministic (RFC 6979 style) signing, signature
// verification, SEC point encoding and DER signature encoding.
//
// The arithmetic is plain affine math over math/big and makes no
// constant-time guarantees. Do not use it where side-channel resistance
// matters.
package ecc
