package ecvrf

// Error is a typed error kind returned by the ECVRF core. The core never panics; every
// failure surfaces as one of these values.
type Error string

func (e Error) Error() string { return string(e) }

// Error kinds returned by the core, per the error handling design.
const (
	// ErrInvalidPublicKey is returned when a public key is the identity element or is not a
	// canonical Ristretto255 encoding.
	ErrInvalidPublicKey Error = "ecvrf: invalid public key"

	// ErrInvalidPrivateKey is returned when private key bytes are not exactly 32 bytes, or are
	// not a canonical scalar encoding (not strictly less than ℓ).
	ErrInvalidPrivateKey Error = "ecvrf: invalid private key"

	// ErrInvalidProof is returned when proof bytes are the wrong length or Γ is not a valid
	// Ristretto255 encoding. A non-canonical s is reduced modulo ℓ at decode time, not rejected.
	ErrInvalidProof Error = "ecvrf: invalid proof"

	// ErrInvalidScalar is returned when a scalar fails canonical parsing.
	ErrInvalidScalar Error = "ecvrf: invalid scalar"

	// ErrInvalidPoint is returned when a point fails canonical parsing.
	ErrInvalidPoint Error = "ecvrf: invalid point"

	// ErrInvalidInput is the error kind for ancillary parse failures, such as malformed hex. No
	// function of this package returns it, and the CLI reports malformed hex with the hex
	// decoder's own error rather than with this value.
	ErrInvalidInput Error = "ecvrf: invalid input"

	// ErrChallengeMismatch is returned by Verify when the recomputed challenge does not match
	// the challenge embedded in the proof.
	ErrChallengeMismatch Error = "ecvrf: challenge mismatch"

	// ErrOutputMismatch is returned by VerifyWithOutput when the proof is otherwise valid but
	// proof_to_hash(proof) does not match the caller's expected output.
	ErrOutputMismatch Error = "ecvrf: output mismatch"
)
