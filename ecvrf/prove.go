package ecvrf

import (
	"crypto/sha512"

	"github.com/gtank/ristretto255"
)

// Prove generates an ECVRF proof for alpha under kp's secret key, following
// draft-irtf-cfrg-vrf-15 §5.1, adapted to Ristretto255/SHA-512 with the sol_vrf ciphersuite.
//
// Prove is deterministic and pure: repeated calls with the same key pair and alpha return
// byte-identical proofs.
func (kp *KeyPair) Prove(alpha []byte) (*Proof, error) {
	y, err := kp.Public.point()
	if err != nil {
		return nil, err
	}

	h, err := encodeToCurve(kp.Public.Bytes(), alpha)
	if err != nil {
		return nil, err
	}

	gamma := pointMul(kp.Private.scalar, h)

	k, err := nonceGeneration(kp.Private.scalar, h)
	if err != nil {
		return nil, err
	}

	u := pointMul(k, basepoint())
	v := pointMul(k, h)

	c := challengeGeneration(y, h, gamma, u, v)

	cScalar, err := scalarFromCanonical(padChallenge(c))
	if err != nil {
		return nil, err
	}

	s := ristretto255.NewScalar().Multiply(cScalar, kp.Private.scalar)
	s = s.Add(s, k)

	return &Proof{gamma: gamma, c: c, s: s}, nil
}

// nonceGeneration derives the deterministic per-message nonce k from sk and H, per
// draft-irtf-cfrg-vrf-15 §5.4.2.2 as adapted by this ciphersuite:
// k = scalar_from_wide(SHA512(SHA512(sk)[32:64] ‖ encode(H))).
func nonceGeneration(sk *ristretto255.Scalar, h *ristretto255.Element) (*ristretto255.Scalar, error) {
	skHash := sha512.Sum512(sk.Bytes())

	hasher := sha512.New()
	hasher.Write(skHash[32:])
	hasher.Write(h.Bytes())
	kBytes := hasher.Sum(nil)

	return scalarFromWide(kBytes)
}
