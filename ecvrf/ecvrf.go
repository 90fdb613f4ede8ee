// Package ecvrf implements ECVRF-RISTRETTO255-SHA512-SOL_VRF, an Elliptic Curve Verifiable
// Random Function instantiated over the Ristretto255 group using SHA-512, following
// draft-irtf-cfrg-vrf-15 with a custom ciphersuite tag.
//
// A VRF lets a key holder produce, for any input alpha, a pseudorandom output together with a
// proof that the named key produced it. Anyone holding the corresponding public key can verify
// the proof without learning the private key.
//
// # Protocol
//
//  1. A prover derives a key pair with [Generate] or [KeyPairFromSecret].
//  2. [KeyPair.Prove] computes a [Proof] for an arbitrary-length input.
//  3. [ProofToHash], or [KeyPair.Output], derives the 64-byte pseudorandom output from the
//     proof.
//  4. A verifier calls [Verify] or [VerifyWithOutput] with the public key, the same input, and
//     the proof.
//
// # Determinism and concurrency
//
// Every operation in this package is a pure function of its inputs: there is no shared mutable
// state, and all of them are safe to call concurrently without synchronization. [Verify]'s
// challenge comparison and [scalarNegate] are constant-time; no branch in [KeyPair.Prove] depends
// on secret-key bits beyond those in the underlying group arithmetic.
//
// # Ciphersuite
//
// Only ECVRF-RISTRETTO255-SHA512-SOL_VRF is implemented. [VRFKeyPair], [VRFProof],
// [VRFPublicKey], and [VRFPrivateKey] exist so that a second ciphersuite could be added later
// without changing call sites; no second suite is implemented here.
package ecvrf

import (
	"crypto/sha512"
	"crypto/subtle"
	"io"

	"github.com/gtank/ristretto255"
)

const (
	// OutputSize is the size, in bytes, of a VRF output.
	OutputSize = 64

	// ProofSize is the size, in bytes, of an encoded proof: Γ (32) ‖ c (16) ‖ s (32).
	ProofSize = 80

	// PublicKeySize is the size, in bytes, of an encoded public key.
	PublicKeySize = 32

	// PrivateKeySize is the size, in bytes, of an encoded private key.
	PrivateKeySize = 32

	// ChallengeSize is the size, in bytes, of the challenge embedded in a proof.
	ChallengeSize = 16
)

// SuiteString is the ciphersuite tag mixed into every hash to prevent cross-protocol proof
// reuse. draft-irtf-cfrg-vrf-15 reserves suite-strings 0x00-0x04 and notes future designs
// should pick their own; this repository uses "sol_vrf".
var SuiteString = []byte("sol_vrf")

// Domain separators for ECVRF_challenge_generation and ECVRF_proof_to_hash.
const (
	challengeDomainFront = 0x02
	challengeDomainBack  = 0x00
	proofToHashFront     = 0x03
	proofToHashBack      = 0x00
)

// VRFPublicKey is the capability set exposed by a public key: encoding. A second ciphersuite
// would implement this alongside [VRFPrivateKey], [VRFProof], and [VRFKeyPair].
type VRFPublicKey interface {
	Bytes() []byte
}

// VRFPrivateKey is the capability set exposed by a private key: encoding only, since signing
// capability lives on [VRFKeyPair].
type VRFPrivateKey interface {
	Bytes() []byte
}

// VRFProof is the capability set of a VRF proof: encoding, and deriving the VRF output.
type VRFProof interface {
	Bytes() []byte
	ToHash() [OutputSize]byte
}

// VRFKeyPair is the capability set of a key pair able to produce proofs. [KeyPair] does not
// implement it directly — Go has no covariant return types, and [KeyPair.Prove] returns the
// concrete *Proof its callers need — but a second ciphersuite's key pair type would.
type VRFKeyPair interface {
	Prove(alpha []byte) (VRFProof, error)
}

var (
	_ VRFPublicKey  = (*PublicKey)(nil)
	_ VRFPrivateKey = (*PrivateKey)(nil)
	_ VRFProof      = (*Proof)(nil)
)

// PrivateKey is a VRF secret scalar sk.
type PrivateKey struct {
	scalar *ristretto255.Scalar
}

// Bytes returns the canonical 32-byte little-endian encoding of the private scalar.
func (sk *PrivateKey) Bytes() []byte {
	return sk.scalar.Bytes()
}

// PublicKey is a VRF public key Y = sk·B, stored as its raw 32-byte encoding. Validity
// (canonical, non-identity) is checked lazily wherever the key is used, so that decoding
// malformed bytes never panics and the operations that use the key ([Verify],
// [KeyPair.Prove]) decide whether it is usable.
type PublicKey struct {
	raw [PublicKeySize]byte
}

// Bytes returns the 32-byte Ristretto255 encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	out := pk.raw
	return out[:]
}

// point decodes and validates the public key, returning [ErrInvalidPublicKey] if it is the
// identity element or not a canonical Ristretto255 encoding.
func (pk *PublicKey) point() (*ristretto255.Element, error) {
	if !isValidPoint(pk.raw[:]) {
		return nil, ErrInvalidPublicKey
	}
	return decodePoint(pk.raw[:])
}

// KeyPair is a VRF key pair satisfying pk = sk·B.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// Generate derives a new key pair from 64 bytes read from rand, reduced modulo the group
// order. Callers needing deterministic key generation for tests should pass a deterministic
// reader rather than [crypto/rand.Reader].
func Generate(rand io.Reader) (*KeyPair, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return nil, err
	}

	scalar, err := scalarFromWide(wide[:])
	if err != nil {
		return nil, err
	}

	return keyPairFromScalar(scalar), nil
}

// KeyPairFromSecret derives a key pair from a 32-byte canonical private key encoding.
func KeyPairFromSecret(skBytes []byte) (*KeyPair, error) {
	if len(skBytes) != PrivateKeySize {
		return nil, ErrInvalidPrivateKey
	}

	scalar, err := scalarFromCanonical(skBytes)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}

	return keyPairFromScalar(scalar), nil
}

func keyPairFromScalar(scalar *ristretto255.Scalar) *KeyPair {
	y := ristretto255.NewIdentityElement().ScalarBaseMult(scalar)

	pk := &PublicKey{}
	copy(pk.raw[:], y.Bytes())

	return &KeyPair{
		Public:  pk,
		Private: &PrivateKey{scalar: scalar},
	}
}

// Output computes both the VRF output and the proof for alpha in one call.
func (kp *KeyPair) Output(alpha []byte) ([OutputSize]byte, *Proof, error) {
	proof, err := kp.Prove(alpha)
	if err != nil {
		return [OutputSize]byte{}, nil, err
	}
	return proof.ToHash(), proof, nil
}

// Proof is an ECVRF proof (Γ, c, s).
type Proof struct {
	gamma *ristretto255.Element
	c     [ChallengeSize]byte
	s     *ristretto255.Scalar
}

// ToHash computes the VRF output for this proof. It is a pure function of Γ; c and s do not
// participate.
func (p *Proof) ToHash() [OutputSize]byte {
	h := sha512.New()
	h.Write(SuiteString)
	h.Write([]byte{proofToHashFront})
	h.Write(p.gamma.Bytes())
	h.Write([]byte{proofToHashBack})

	var out [OutputSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// ProofToHash computes the VRF output for proof. Equivalent to proof.ToHash().
func ProofToHash(proof *Proof) [OutputSize]byte {
	return proof.ToHash()
}

// padChallenge returns c left-aligned in a 32-byte little-endian buffer, which is always a
// canonical scalar representative since the group order's high bytes are nonzero.
func padChallenge(c [ChallengeSize]byte) []byte {
	var buf [32]byte
	copy(buf[:ChallengeSize], c[:])
	return buf[:]
}

// challengeGeneration implements ECVRF_challenge_generation over (Y, H, Γ, U, V), per
// draft-irtf-cfrg-vrf-15 §5.4.3.
func challengeGeneration(y, h, gamma, u, v *ristretto255.Element) [ChallengeSize]byte {
	hasher := sha512.New()
	hasher.Write(SuiteString)
	hasher.Write([]byte{challengeDomainFront})
	hasher.Write(y.Bytes())
	hasher.Write(h.Bytes())
	hasher.Write(gamma.Bytes())
	hasher.Write(u.Bytes())
	hasher.Write(v.Bytes())
	hasher.Write([]byte{challengeDomainBack})
	digest := hasher.Sum(nil)

	var c [ChallengeSize]byte
	copy(c[:], digest[:ChallengeSize])
	return c
}

// constantTimeEqual reports whether two challenges are equal, in constant time with respect to
// their contents.
func constantTimeEqual(a, b [ChallengeSize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
