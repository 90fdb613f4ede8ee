package ecvrf

import (
	"crypto/subtle"

	"github.com/gtank/ristretto255"
)

// Verify checks proof against alpha and pk, following draft-irtf-cfrg-vrf-15 §5.3. It returns
// nil iff proof was produced under the secret key corresponding to pk for input alpha;
// otherwise it returns a typed [Error].
//
// Verify does not depend on any secret data and is safe to call concurrently. The challenge
// comparison is constant-time.
func Verify(pk *PublicKey, alpha []byte, proof *Proof) error {
	y, err := pk.point()
	if err != nil {
		return ErrInvalidPublicKey
	}

	h, err := encodeToCurve(pk.Bytes(), alpha)
	if err != nil {
		return err
	}

	cScalar, err := scalarFromCanonical(padChallenge(proof.c))
	if err != nil {
		return ErrInvalidProof
	}
	negC := scalarNegate(cScalar)

	u := multiScalarMul(
		[]*ristretto255.Scalar{proof.s, negC},
		[]*ristretto255.Element{basepoint(), y},
	)
	v := multiScalarMul(
		[]*ristretto255.Scalar{proof.s, negC},
		[]*ristretto255.Element{h, proof.gamma},
	)

	cPrime := challengeGeneration(y, h, proof.gamma, u, v)
	if !constantTimeEqual(cPrime, proof.c) {
		return ErrChallengeMismatch
	}

	return nil
}

// VerifyWithOutput checks proof as Verify does, and additionally requires that
// proof_to_hash(proof) equals expectedOutput.
func VerifyWithOutput(pk *PublicKey, alpha []byte, proof *Proof, expectedOutput [OutputSize]byte) error {
	if err := Verify(pk, alpha, proof); err != nil {
		return err
	}

	got := proof.ToHash()
	if subtle.ConstantTimeCompare(got[:], expectedOutput[:]) != 1 {
		return ErrOutputMismatch
	}

	return nil
}
