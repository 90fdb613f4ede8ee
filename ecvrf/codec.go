package ecvrf

// This file implements the wire codec for keys and proofs: the boundary that the CLI, the
// coordinator contract (spec §4.7), and any other caller cross to move key/proof material in
// and out of this package. Every decoder here rejects malformed input with a typed [Error]
// instead of panicking.

// DecodePublicKey parses a 32-byte Ristretto255 encoding as a public key. It does not reject
// the identity element or other degenerate points at decode time; [Verify] and [PublicKey.point]
// do that lazily, so a key that fails validation can still be round-tripped and inspected.
func DecodePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrInvalidPublicKey
	}

	pk := &PublicKey{}
	copy(pk.raw[:], b)
	return pk, nil
}

// DecodePrivateKey parses a 32-byte canonical scalar encoding as a private key and derives the
// corresponding key pair.
func DecodePrivateKey(b []byte) (*KeyPair, error) {
	return KeyPairFromSecret(b)
}

// Bytes encodes proof as Γ ‖ c ‖ s, 80 bytes total: a 32-byte canonical Ristretto255 point,
// followed by a 16-byte challenge, followed by a 32-byte canonical scalar. This layout is the
// coordinator's on-chain contract (spec §4.7) and must not change.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, ProofSize)
	out = append(out, p.gamma.Bytes()...)
	out = append(out, p.c[:]...)
	out = append(out, p.s.Bytes()...)
	return out
}

// DecodeProof parses an 80-byte Γ ‖ c ‖ s encoding. It returns [ErrInvalidProof] if b is the
// wrong length or Γ is not a canonical Ristretto255 encoding. The embedded challenge c is
// accepted as-is, and s is reduced modulo ℓ rather than rejected when non-canonical — per
// spec.md §3, a proof's s commonly exceeds ℓ before reduction, so decode accepts it and lets
// [Verify] determine whether the proof itself is correct.
func DecodeProof(b []byte) (*Proof, error) {
	if len(b) != ProofSize {
		return nil, ErrInvalidProof
	}

	gammaBytes := b[0:32]
	cBytes := b[32:48]
	sBytes := b[48:80]

	gamma, err := decodePoint(gammaBytes)
	if err != nil {
		return nil, ErrInvalidProof
	}

	s, err := scalarFromLoose(sBytes)
	if err != nil {
		return nil, ErrInvalidProof
	}

	var c [ChallengeSize]byte
	copy(c[:], cBytes)

	return &Proof{gamma: gamma, c: c, s: s}, nil
}
