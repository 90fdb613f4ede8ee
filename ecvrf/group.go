package ecvrf

import (
	"github.com/gtank/ristretto255"
)

// groupOrder is the little-endian encoding of the Ristretto255/Curve25519 group order
// ℓ = 2^252 + 27742317777372353535851937790883648493.
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// basepoint returns the canonical Ristretto255 basepoint B.
func basepoint() *ristretto255.Element {
	return ristretto255.NewGeneratorElement()
}

// scalarFromWide reduces a uniform 64-byte sample modulo ℓ, as used to derive private keys
// and nonces from wide hash output.
func scalarFromWide(wide []byte) (*ristretto255.Scalar, error) {
	if len(wide) != 64 {
		return nil, Error("ecvrf: wide scalar input must be 64 bytes")
	}

	s, err := ristretto255.NewScalar().SetUniformBytes(wide)
	if err != nil {
		return nil, ErrInvalidScalar
	}

	return s, nil
}

// scalarFromCanonical parses a canonical 32-byte little-endian scalar, rejecting any
// representation that is not strictly less than ℓ.
func scalarFromCanonical(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != 32 {
		return nil, ErrInvalidScalar
	}

	s, err := ristretto255.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrInvalidScalar
	}

	return s, nil
}

// scalarFromLoose parses a 32-byte little-endian scalar representation, reducing it modulo ℓ
// rather than rejecting non-canonical input. Per spec.md §3's scalar invariant, values are
// accepted at a decode boundary and reduced on first use; proof.s is decoded this way because a
// prover's s = k + c·sk commonly exceeds ℓ before reduction.
func scalarFromLoose(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != 32 {
		return nil, ErrInvalidScalar
	}

	var wide [64]byte
	copy(wide[:32], b)

	return scalarFromWide(wide[:])
}

// scalarNegate returns ℓ − x mod ℓ, computed by byte-wise subtract-with-borrow against the
// little-endian encoding of the group order. This mirrors the original Rust negate_scalar
// routine rather than relying on the library's own Negate, per the GroupOps contract.
//
// x = 0 needs care: ℓ − 0 is the encoding of ℓ itself, which is not a canonical scalar
// (canonical means strictly less than ℓ), so the result bytes are masked to zero in that case.
// Neither the borrow nor the zero case takes a data-dependent branch.
func scalarNegate(x *ristretto255.Scalar) *ristretto255.Scalar {
	xBytes := x.Bytes()
	// mask is 0x00 when x = 0 and 0xff otherwise.
	mask := byte(x.Equal(ristretto255.NewScalar())) - 1

	var negated [32]byte
	var borrow int16
	for i := range 32 {
		diff := int16(groupOrder[i]) - int16(xBytes[i]) - borrow
		borrow = (diff >> 15) & 1
		negated[i] = byte(diff) & mask
	}

	neg, err := ristretto255.NewScalar().SetCanonicalBytes(negated[:])
	if err != nil {
		// groupOrder − x for any nonzero canonical x is always < groupOrder, and x = 0 is
		// masked to 0, so this cannot fail.
		panic("ecvrf: scalarNegate produced a non-canonical scalar: " + err.Error())
	}
	return neg
}

// decodePoint parses a 32-byte canonical Ristretto255 encoding without rejecting the
// identity element. Used for Γ, where the spec requires only a valid encoding.
func decodePoint(b []byte) (*ristretto255.Element, error) {
	if len(b) != 32 {
		return nil, ErrInvalidPoint
	}

	p, err := ristretto255.NewIdentityElement().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	return p, nil
}

// isValidPoint reports whether b is a canonical Ristretto255 encoding of a non-identity
// point, as required for public keys.
func isValidPoint(b []byte) bool {
	p, err := decodePoint(b)
	if err != nil {
		return false
	}

	return p.Equal(ristretto255.NewIdentityElement()) == 0
}

// pointMul computes scalar·point.
func pointMul(scalar *ristretto255.Scalar, point *ristretto255.Element) *ristretto255.Element {
	return ristretto255.NewIdentityElement().ScalarMult(scalar, point)
}

// multiScalarMul computes Σ scalars[i]·points[i]. Implementations may use any strategy that
// produces the same result as sequential pointMul and addition; this wraps the library's
// variable-time multiscalar multiplication, which is safe here because none of the scalars
// or points involved (s, c, U, V, Γ) are used in a way that depends on a third party's
// secret data.
func multiScalarMul(scalars []*ristretto255.Scalar, points []*ristretto255.Element) *ristretto255.Element {
	return ristretto255.NewIdentityElement().VarTimeMultiScalarMult(scalars, points)
}
