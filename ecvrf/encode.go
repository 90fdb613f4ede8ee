package ecvrf

import (
	"github.com/gtank/ristretto255"
)

// hashToCurveDST is the domain separation tag used by encodeToCurve: "ECVRF_" followed by the
// h2c suite identifier and the sol_vrf ciphersuite tag.
var hashToCurveDST = []byte("ECVRF_ristretto255_XMD:SHA-512_R255MAP_RO_sol_vrf")

// encodeToCurve maps (publicKeyBytes, alpha) deterministically to a curve point H, following
// draft-irtf-cfrg-vrf-15 §5.4.1.2 adapted to Ristretto255: the input is expanded to 64 uniform
// bytes via expand_message_xmd, then mapped onto the group with Ristretto's conformant
// from_uniform_bytes primitive. Any conformant implementation given the same inputs produces an
// identical H.
func encodeToCurve(publicKeyBytes, alpha []byte) (*ristretto255.Element, error) {
	msg := make([]byte, 0, len(publicKeyBytes)+len(alpha))
	msg = append(msg, publicKeyBytes...)
	msg = append(msg, alpha...)

	uniformBytes, err := expandMessageXMD(msg, hashToCurveDST, 64)
	if err != nil {
		return nil, err
	}

	h, err := ristretto255.NewIdentityElement().SetUniformBytes(uniformBytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	return h, nil
}
